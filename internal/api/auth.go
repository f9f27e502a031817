// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/tomtom215/poemclock/internal/logging"
)

// RequireAuth enforces "Authorization: Bearer <api key>" when the security
// config demands it. Only the write-shaped device endpoints (compose, seen,
// like) sit behind it; status and the read-only convenience endpoints stay
// open so an unclaimed device can still check in.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.config.Security.RequireAuth {
			next.ServeHTTP(w, r)
			return
		}

		expected := "Bearer " + h.config.Security.APIKey
		got := r.Header.Get("Authorization")
		if subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
			logging.Ctx(r.Context()).Warn().
				Str("path", r.URL.Path).
				Str("remote_addr", r.RemoteAddr).
				Msg("rejected request with missing or invalid API key")
			respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			return
		}

		next.ServeHTTP(w, r)
	})
}
