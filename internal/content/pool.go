// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

// Package content loads and holds the static content pool.
//
// The pool is read once at process start from a JSON dataset and is
// immutable afterwards, so it may be shared across concurrent request
// handlers without synchronization. The scheduling engine receives it as a
// plain slice and never writes to it.
package content

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/poemclock/internal/models"
	"github.com/tomtom215/poemclock/internal/schedule"
)

// itemsPerCard is how many content items each source card contributes,
// fixed by the dataset layout (four quarters per card).
const itemsPerCard = 4

// Pool is the fixed, ordered content pool for the process lifetime.
type Pool struct {
	items []models.ContentItem
}

// New builds a pool from an already-decoded item list.
// Returns an error for an empty list; the scheduler requires length > 0.
func New(items []models.ContentItem) (*Pool, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("content pool is empty")
	}
	return &Pool{items: items}, nil
}

// LoadFile reads the content dataset from a JSON file with the layout
// {"items": [{"content": "...", "card": ...}, ...]}.
//
// A missing or malformed file is a startup-fatal condition for the caller;
// the scheduling core itself never performs I/O.
func LoadFile(path string) (*Pool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}

	var cf models.ContentFile
	if err := json.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("parse content file %s: %w", path, err)
	}

	pool, err := New(cf.Items)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return pool, nil
}

// Items returns the ordered pool. Callers must treat the slice as read-only.
func (p *Pool) Items() []models.ContentItem {
	return p.items
}

// Len returns the number of items in the pool.
func (p *Pool) Len() int {
	return len(p.items)
}

// Stats reports pool statistics for the stats endpoint. Coverage is the
// share of the day's 1440 minutes the tripled pool can fill, formatted to
// one decimal place; it is informational only.
func (p *Pool) Stats() models.StatsResponse {
	n := len(p.items)
	coverage := float64(n*3) / float64(schedule.MinutesPerDay) * 100

	return models.StatsResponse{
		TotalItems:        n,
		TotalCards:        n / itemsPerCard,
		AppearancesPerDay: n * 3,
		MinutesPerDay:     schedule.MinutesPerDay,
		Coverage:          fmt.Sprintf("%.1f%%", coverage),
	}
}
