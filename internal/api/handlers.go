// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

package api

import (
	"time"

	"github.com/tomtom215/poemclock/internal/config"
	"github.com/tomtom215/poemclock/internal/content"
	"github.com/tomtom215/poemclock/internal/metrics"
	"github.com/tomtom215/poemclock/internal/models"
	"github.com/tomtom215/poemclock/internal/schedule"
)

// Version reported by the health endpoint.
const Version = "1.0.0"

// Handler contains the dependencies of the API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_clock.go: Poem/1 device and convenience endpoints
//   - handlers_health.go: health endpoints
//   - auth.go: bearer token middleware
//   - helpers.go: shared response/decode helpers
type Handler struct {
	pool      *content.Pool
	config    *config.Config
	startTime time.Time

	// now is the single source of request time, injectable for tests.
	// One snapshot per request feeds both the date seed and the minute.
	now func() time.Time
}

// NewHandler creates the API handler over the loaded content pool.
func NewHandler(pool *content.Pool, cfg *config.Config) *Handler {
	return &Handler{
		pool:      pool,
		config:    cfg,
		startTime: time.Now(),
		now:       time.Now,
	}
}

// dailySchedule builds the schedule for the snapshot's calendar date.
// The build is recomputed per request from the immutable pool: a deliberate
// statelessness/throughput trade documented in the design notes.
func (h *Handler) dailySchedule(now time.Time) ([]models.ContentItem, error) {
	start := time.Now()
	day, err := schedule.Build(h.pool.Items(), schedule.DateSeed(now))
	if err != nil {
		return nil, err
	}
	metrics.ObserveScheduleBuild(time.Since(start))
	return day, nil
}
