// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

package api

import (
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/poemclock/internal/logging"
	"github.com/tomtom215/poemclock/internal/models"
)

// maxBodyBytes bounds request bodies; device requests are tiny.
const maxBodyBytes = 64 << 10

// respondJSON writes a device-compatible raw JSON body.
func respondJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("failed to write JSON response")
	}
}

// respondError writes the {"error": "..."} body the device API expects.
func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	logging.Ctx(r.Context()).Warn().
		Int("status", status).
		Str("path", r.URL.Path).
		Str("error", message).
		Msg("request failed")

	respondJSON(w, status, models.ErrorResponse{Error: message})
}

// decodeBody decodes a JSON request body into v. Malformed or absent bodies
// leave v at its zero value: Poem/1 firmware is loose about bodies, and the
// device API treats an unreadable body as an empty request rather than an
// error.
func decodeBody(r *http.Request, v any) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil || len(body) == 0 {
		return
	}
	if err := json.Unmarshal(body, v); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("ignoring malformed request body")
	}
}
