// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

// Package middleware provides HTTP middleware shared by all routes:
// request-ID propagation and Prometheus instrumentation.
package middleware

import (
	"net/http"

	"github.com/tomtom215/poemclock/internal/logging"
)

// RequestIDHeader is the header carrying the request ID, honored from
// upstream proxies and echoed on every response.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns each request a unique ID and threads it through the
// response header and the logging context, so every log line of a request
// carries the same request_id field.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}

		w.Header().Set(RequestIDHeader, requestID)
		ctx := logging.ContextWithRequestID(r.Context(), requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
