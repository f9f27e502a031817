// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

// Package api provides the HTTP layer of Poemclock: Chi routing, the Poem/1
// device endpoints, the convenience/testing endpoints, and health checks.
//
// The handlers are thin I/O plumbing around the pure scheduling engine in
// internal/schedule. Each request takes a single time snapshot and feeds it
// to both the date seed and the minute resolver, so a request can never
// straddle midnight with an inconsistent seed/minute pair.
//
// # Endpoints
//
// Poem/1 device API:
//
//	POST /api/v1/clock/status
//	POST /api/v1/clock/compose
//	POST /api/v1/clock/notes/{noteID}/seen
//	POST /api/v1/clock/likes/{poemID}/mark
//	POST /api/v1/clock/likes/{poemID}/unmark
//
// Convenience and operations:
//
//	GET /                        HTML documentation page
//	GET /api/v1/clock            current minute's content
//	GET /api/v1/clock/minute/{m} fixed-minute lookup
//	GET /api/v1/clock/stats      content pool statistics
//	GET /api/v1/health[/live|/ready]
//	GET /metrics                 Prometheus metrics
//
// Responses are device-compatible raw JSON bodies; errors are
// {"error": "..."} with an appropriate status code.
package api
