// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

package schedule

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/tomtom215/poemclock/internal/models"
)

// PreferredFont is the typeface hint sent to Poem/1 devices.
const PreferredFont = "INTER"

// poemIDLength is the number of hex characters kept from the content hash.
// The truncated hash is an identifier, not a security token; collisions at
// 8 hex chars are accepted as negligible.
const poemIDLength = 8

// Compose formats a schedule entry for display: the content with en-dashes
// replaced by plain hyphens (e-ink line wrapping breaks on en-dashes),
// prefixed with the time label and an em-dash separator.
//
// Identical (item, time24) inputs always produce an identical response,
// including the PoemID.
func Compose(item models.ContentItem, time24 string) models.ComposeResponse {
	content := strings.ReplaceAll(item.Content, "–", "-")
	poem := time24 + " — " + content

	return models.ComposeResponse{
		PoemID:        PoemID(time24, poem),
		Time24:        time24,
		Poem:          poem,
		PreferredFont: PreferredFont,
		Screensaver:   false,
	}
}

// PoemID derives the short deterministic identifier for a composed poem:
// the first 8 hex characters of SHA-256 over "{time24}-{poem}".
func PoemID(time24, poem string) string {
	sum := sha256.Sum256([]byte(time24 + "-" + poem))
	return hex.EncodeToString(sum[:])[:poemIDLength]
}
