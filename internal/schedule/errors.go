// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

package schedule

import "errors"

// Sentinel errors for the scheduling engine. All are local, recoverable
// conditions surfaced to the caller; match with errors.Is.
var (
	// ErrInvalidTimeFormat indicates a time24 string that is not a valid
	// zero-padded "HH:MM" with H in [0,23] and M in [0,59].
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrInvalidTimestamp indicates an unparsable ISO-8601 instant.
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// ErrMinuteOutOfRange indicates a minute index outside the built
	// schedule's actual length. The engine never wraps or clamps.
	ErrMinuteOutOfRange = errors.New("minute out of range")

	// ErrEmptyPool indicates a schedule build against zero content items.
	ErrEmptyPool = errors.New("empty content pool")
)
