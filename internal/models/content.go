// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

package models

// ContentItem is a single entry of the content pool: one piece of display
// text plus the card identifier it was sourced from.
//
// Items are loaded once at process start and never mutated afterwards, so
// they may be shared freely across concurrent request handlers. Identity is
// positional (index in the source pool) plus the Card field.
//
// Card is declared as any because the source dataset stores card identifiers
// as either numbers or strings; the value is passed through to API responses
// verbatim.
type ContentItem struct {
	Content string `json:"content"`
	Card    any    `json:"card"`
}

// ContentFile mirrors the on-disk layout of the content dataset:
// a single "items" key holding the ordered pool.
type ContentFile struct {
	Items []ContentItem `json:"items"`
}
