// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/poemclock/internal/models"
)

// Health reports overall service health. The content pool is loaded once at
// startup and is immutable, so a running process with a non-empty pool is
// always healthy.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.HealthStatus{
		Status:    "healthy",
		Version:   Version,
		PoolItems: h.pool.Len(),
		Uptime:    time.Since(h.startTime).Seconds(),
	})
}

// HealthLive is the liveness probe: the process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// HealthReady is the readiness probe. Ready means the pool loaded.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.pool.Len() == 0 {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
