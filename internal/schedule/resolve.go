// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Time sources reported by Resolve, used for observability only.
const (
	SourceExplicit = "time24"
	SourceInstant  = "instant"
	SourceNow      = "now"
)

// instantLayouts are the accepted ISO-8601 shapes for the Geolocate field,
// tried in order. Offsets are parsed but not converted: the instant's own
// hour and minute fields are used verbatim, a documented simplification
// carried over from the original device API behavior.
var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// TimeRequest carries the optional time inputs of a compose request.
// Empty fields mean "not supplied".
type TimeRequest struct {
	// Time24 is an explicit "HH:MM" label. Takes priority over Instant.
	Time24 string

	// Instant is an ISO-8601 timestamp, optionally Z-suffixed.
	Instant string
}

// ResolvedTime is the outcome of time resolution: the canonical zero-padded
// label, the minute-of-day index in [0,1439], and which input won.
type ResolvedTime struct {
	Time24 string
	Minute int
	Source string
}

// Resolve converts a time request into a minute-of-day, first-match-wins:
// explicit Time24, then Instant, then the supplied now snapshot.
//
// Malformed explicit labels fail with ErrInvalidTimeFormat and unparsable
// instants with ErrInvalidTimestamp; neither silently falls back to now.
// The fallback is taken only when no time input was given at all.
func Resolve(req TimeRequest, now time.Time) (ResolvedTime, error) {
	switch {
	case req.Time24 != "":
		minute, err := parseTime24(req.Time24)
		if err != nil {
			return ResolvedTime{}, err
		}
		return ResolvedTime{Time24: formatMinute(minute), Minute: minute, Source: SourceExplicit}, nil

	case req.Instant != "":
		t, err := parseInstant(req.Instant)
		if err != nil {
			return ResolvedTime{}, err
		}
		minute := t.Hour()*60 + t.Minute()
		return ResolvedTime{Time24: formatMinute(minute), Minute: minute, Source: SourceInstant}, nil

	default:
		minute := now.Hour()*60 + now.Minute()
		return ResolvedTime{Time24: formatMinute(minute), Minute: minute, Source: SourceNow}, nil
	}
}

// FormatMinute renders a minute-of-day as a zero-padded "HH:MM" label.
func FormatMinute(minute int) string {
	return formatMinute(minute)
}

func formatMinute(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// parseTime24 parses a strict "HH:MM" label into a minute-of-day.
// Both components must be integers with H in [0,23] and M in [0,59];
// anything else is ErrInvalidTimeFormat. No wrapping.
func parseTime24(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidTimeFormat, s)
	}

	return hours*60 + mins, nil
}

// parseInstant parses an ISO-8601 instant using the accepted layouts.
func parseInstant(s string) (time.Time, error) {
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}
