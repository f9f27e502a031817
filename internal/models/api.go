// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

package models

// ComposeRequest is the body of POST /api/v1/clock/compose.
//
// Time selection is first-match-wins:
//  1. Time24 ("HH:MM") when present
//  2. Geolocate (ISO-8601 instant) when present
//  3. the server's current local time otherwise
//
// Validation tags bound field sizes only; time semantics (format, ranges)
// are enforced by the schedule resolver so its typed errors are the ones
// surfaced to the device.
type ComposeRequest struct {
	Time24    string `json:"time24,omitempty" validate:"omitempty,max=16"`
	Geolocate string `json:"geolocate,omitempty" validate:"omitempty,max=64"`
	ScreenID  string `json:"screenId,omitempty" validate:"omitempty,max=128"`
}

// ComposeResponse is the Poem/1 compose payload: the composed display string
// plus a short deterministic identifier derived from it.
type ComposeResponse struct {
	PoemID        string `json:"poemId"`
	Time24        string `json:"time24"`
	Poem          string `json:"poem"`
	PreferredFont string `json:"preferredFont"`
	Screensaver   bool   `json:"screensaver"`
}

// StatusRequest is the body of POST /api/v1/clock/status.
type StatusRequest struct {
	ScreenID string `json:"screenId,omitempty" validate:"omitempty,max=128"`
	BuildID  string `json:"buildId,omitempty" validate:"omitempty,max=128"`
}

// StatusResponse wraps the device record returned by the status endpoint.
type StatusResponse struct {
	Success bool       `json:"success"`
	Device  DeviceInfo `json:"device"`
}

// DeviceInfo describes the calling device as the status endpoint reports it.
// Poemclock keeps no device registry, so LastSeen/CreatedAt are the request
// time and Seen is always 1.
type DeviceInfo struct {
	ScreenID  string `json:"screenId"`
	BuildID   string `json:"buildId,omitempty"`
	LastSeen  string `json:"lastSeen"`
	Seen      int    `json:"seen"`
	CreatedAt string `json:"createdAt"`
	IsClaimed bool   `json:"isClaimed"`
}

// AckRequest is the body of the seen/like endpoints.
type AckRequest struct {
	ScreenID string `json:"screenId,omitempty" validate:"omitempty,max=128"`
}

// AckResponse acknowledges a seen/like request. These endpoints are
// deliberate no-ops: Poemclock persists no per-device state.
type AckResponse struct {
	Success bool `json:"success"`
}

// ClockResponse is the convenience GET payload: the raw content item for a
// minute together with its position in the day.
//
// Timestamp is populated only by the current-minute endpoint; the
// fixed-minute endpoint omits it.
type ClockResponse struct {
	Time         string `json:"time"`
	Content      string `json:"content"`
	Card         any    `json:"card"`
	Minute       int    `json:"minute"`
	TotalMinutes int    `json:"total_minutes"`
	Timestamp    string `json:"timestamp,omitempty"`
}

// StatsResponse reports content pool statistics. Coverage is the fraction of
// minute slots the pool can fill, formatted as a percentage; it is reporting
// only and never enforced by the scheduler.
type StatsResponse struct {
	TotalItems        int    `json:"total_items"`
	TotalCards        int    `json:"total_cards"`
	AppearancesPerDay int    `json:"appearances_per_day"`
	MinutesPerDay     int    `json:"minutes_per_day"`
	Coverage          string `json:"coverage"`
}

// HealthStatus is the health endpoint payload.
type HealthStatus struct {
	Status    string  `json:"status"`
	Version   string  `json:"version"`
	PoolItems int     `json:"pool_items"`
	Uptime    float64 `json:"uptime_seconds"`
}

// ErrorResponse is the error body shared by all endpoints, matching the
// original device API wire format.
type ErrorResponse struct {
	Error string `json:"error"`
}
