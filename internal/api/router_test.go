// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tomtom215/poemclock/internal/config"
	"github.com/tomtom215/poemclock/internal/models"
)

func newTestRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	return NewRouter(newTestHandler(t, twoItemPool(), cfg), cfg).Setup()
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_ClockAtMinute(t *testing.T) {
	router := newTestRouter(t, testConfig())

	rec := doRequest(router, http.MethodGet, "/api/v1/clock/minute/2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	resp := decodeResponse[models.ClockResponse](t, rec)
	if resp.Minute != 2 {
		t.Errorf("minute = %d, want 2", resp.Minute)
	}
	if resp.Time != "00:02" {
		t.Errorf("time = %q, want 00:02", resp.Time)
	}
	if resp.Timestamp != "" {
		t.Errorf("timestamp = %q, fixed-minute endpoint must omit it", resp.Timestamp)
	}
}

func TestRouter_ClockAtMinute_OutOfRange(t *testing.T) {
	router := newTestRouter(t, testConfig())

	for _, path := range []string{
		"/api/v1/clock/minute/1440",
		"/api/v1/clock/minute/-1",
		"/api/v1/clock/minute/abc",
	} {
		rec := doRequest(router, http.MethodGet, path, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, rec.Code)
			continue
		}
		resp := decodeResponse[models.ErrorResponse](t, rec)
		if !strings.Contains(resp.Error, "between 0 and 1439") {
			t.Errorf("%s: error = %q", path, resp.Error)
		}
	}
}

func TestRouter_ClockAtMinute_BeyondSchedule(t *testing.T) {
	// Minute 720 is addressable but the two-item pool only fills six
	// slots, so the lookup is a server-side failure, not a bad request.
	router := newTestRouter(t, testConfig())

	rec := doRequest(router, http.MethodGet, "/api/v1/clock/minute/720", "")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestRouter_AckEndpoints(t *testing.T) {
	router := newTestRouter(t, testConfig())

	for _, path := range []string{
		"/api/v1/clock/notes/note-7/seen",
		"/api/v1/clock/likes/abcd1234/mark",
		"/api/v1/clock/likes/abcd1234/unmark",
	} {
		rec := doRequest(router, http.MethodPost, path, `{"screenId": "screen-1"}`)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, body = %s", path, rec.Code, rec.Body.String())
			continue
		}
		resp := decodeResponse[models.AckResponse](t, rec)
		if !resp.Success {
			t.Errorf("%s: success = false, want true", path)
		}
	}
}

func TestRouter_Index(t *testing.T) {
	router := newTestRouter(t, testConfig())

	rec := doRequest(router, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("content-type = %q, want text/html", ct)
	}
	if !strings.Contains(rec.Body.String(), "Poem/1") {
		t.Error("index page missing Poem/1 reference")
	}
}

func TestRouter_Metrics(t *testing.T) {
	router := newTestRouter(t, testConfig())

	rec := doRequest(router, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "go_goroutines") {
		t.Error("metrics output missing standard collectors")
	}
}

func TestRouter_RequestIDHeader(t *testing.T) {
	router := newTestRouter(t, testConfig())

	rec := doRequest(router, http.MethodGet, "/api/v1/health", "")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID response header")
	}
}

func TestRouter_UnknownPath(t *testing.T) {
	router := newTestRouter(t, testConfig())

	rec := doRequest(router, http.MethodGet, "/api/v1/nonsense", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestRouter_AuthRequired(t *testing.T) {
	cfg := testConfig()
	cfg.Security.RequireAuth = true
	cfg.Security.APIKey = "secret-key"
	router := newTestRouter(t, cfg)

	// Compose without a key is rejected.
	rec := doRequest(router, http.MethodPost, "/api/v1/clock/compose", `{"time24": "00:02"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no key: status = %d, want 401", rec.Code)
	}

	// Wrong key is rejected.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/clock/compose",
		strings.NewReader(`{"time24": "00:02"}`))
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong key: status = %d, want 401", rec.Code)
	}

	// Correct key passes through to the handler.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/clock/compose",
		strings.NewReader(`{"time24": "00:02"}`))
	req.Header.Set("Authorization", "Bearer secret-key")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("right key: status = %d, body = %s", rec.Code, rec.Body.String())
	}

	// Status check-in never requires the key.
	rec = doRequest(router, http.MethodPost, "/api/v1/clock/status", `{"screenId": "s"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("status endpoint: status = %d, want 200 without key", rec.Code)
	}

	// Read-only convenience endpoints stay open too.
	rec = doRequest(router, http.MethodGet, "/api/v1/clock/stats", "")
	if rec.Code != http.StatusOK {
		t.Errorf("stats endpoint: status = %d, want 200 without key", rec.Code)
	}
}

func TestRouter_AuthDisabledByDefault(t *testing.T) {
	router := newTestRouter(t, testConfig())

	rec := doRequest(router, http.MethodPost, "/api/v1/clock/compose", `{"time24": "00:02"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 with auth disabled", rec.Code)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/clock/compose", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK && rec.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("missing Access-Control-Allow-Origin header")
	}
}
