// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

package schedule

import (
	"fmt"
	"time"

	"github.com/tomtom215/poemclock/internal/models"
)

// MinutesPerDay is the number of minute slots in one calendar day.
const MinutesPerDay = 1440

// appearancesPerItem is how many times each pool item occurs in a daily
// schedule.
const appearancesPerItem = 3

// DateSeed derives the daily shuffle seed from a timestamp's calendar date:
// YYYY*10000 + MM*100 + DD. Callers must pass the same snapshot used for
// minute resolution so the seed date and the minute agree across midnight.
func DateSeed(t time.Time) int64 {
	year, month, day := t.Date()
	return int64(year)*10000 + int64(month)*100 + int64(day)
}

// Build produces the daily schedule for the given pool and seed: each item
// repeated exactly three times in pool order, then permuted by a
// Fisher-Yates shuffle driven by the seeded generator.
//
// The result is a pure function of (pool content, pool order, seed) and is
// byte-identical across repeated calls, processes and machines. The returned
// slice is freshly allocated; the pool is never modified.
//
// A pool of exactly MinutesPerDay/3 items yields one slot per minute of the
// day. Other pool sizes yield 3*len(pool) slots and it is the caller's job
// to stay in bounds via At.
//
// Returns ErrEmptyPool for a zero-length pool.
func Build(pool []models.ContentItem, seed int64) ([]models.ContentItem, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	day := make([]models.ContentItem, 0, len(pool)*appearancesPerItem)
	for _, item := range pool {
		day = append(day, item, item, item)
	}

	rng := NewSeededRand(seed)
	for i := len(day) - 1; i > 0; i-- {
		j := int(rng.Next() * float64(i+1))
		day[i], day[j] = day[j], day[i]
	}

	return day, nil
}

// At returns the schedule entry for a minute-of-day index.
//
// Out-of-range minutes fail with ErrMinuteOutOfRange. This is deliberate:
// when the pool does not triple out to 1440 slots the mismatch surfaces as
// an explicit error instead of silently wrapping.
func At(day []models.ContentItem, minute int) (models.ContentItem, error) {
	if minute < 0 || minute >= len(day) {
		return models.ContentItem{}, fmt.Errorf("%w: minute %d, schedule length %d", ErrMinuteOutOfRange, minute, len(day))
	}
	return day[minute], nil
}
