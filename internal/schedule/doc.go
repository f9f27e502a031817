// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

// Package schedule implements the deterministic daily scheduling engine:
// the seeded pseudo-random generator, the per-day permutation builder, the
// minute-of-day time resolver, and the content formatter.
//
// The engine is pure. All inputs (content pool, date seed, current time)
// arrive as explicit parameters, nothing blocks on I/O, and no state escapes
// a single call. Building a schedule twice with the same seed and pool
// yields byte-identical output across processes and machines.
//
// # Daily schedule
//
// A day's schedule is the content pool with every item repeated exactly
// three times, shuffled by a Fisher-Yates pass driven by a linear
// congruential generator seeded from the calendar date (YYYYMMDD). With the
// canonical 480-item pool this fills all 1440 minutes of a day; smaller or
// larger pools produce shorter or longer sequences, and minute lookups
// outside the built length fail with ErrMinuteOutOfRange rather than
// wrapping.
//
// # Typical use
//
//	now := time.Now()
//	resolved, err := schedule.Resolve(schedule.TimeRequest{Time24: "12:34"}, now)
//	day, err := schedule.Build(pool, schedule.DateSeed(now))
//	item, err := schedule.At(day, resolved.Minute)
//	resp := schedule.Compose(item, resolved.Time24)
//
// The same time snapshot must feed both Resolve and DateSeed so the seed
// date and the resolved minute cannot straddle midnight.
package schedule
