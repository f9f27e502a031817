// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

// Package models defines the data types shared across Poemclock packages:
// the immutable content pool entries and the request/response bodies of the
// Poem/1 device API.
//
// Response types are wire-compatible with the poem.town Device API. They are
// serialized as-is (no envelope) because Poem/1 firmware consumes the bodies
// verbatim.
package models
