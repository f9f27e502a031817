// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/poemclock/internal/config"
	"github.com/tomtom215/poemclock/internal/middleware"
)

// Router wires the handlers into a Chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates the router for the given handler and security config.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	mwConfig := DefaultChiMiddlewareConfig()
	if len(cfg.Security.CORSOrigins) > 0 {
		mwConfig.CORSAllowedOrigins = cfg.Security.CORSOrigins
	}
	if cfg.Security.RateLimitReqs > 0 {
		mwConfig.RateLimitRequests = cfg.Security.RateLimitReqs
	}
	if cfg.Security.RateLimitWindow > 0 {
		mwConfig.RateLimitWindow = cfg.Security.RateLimitWindow
	}
	mwConfig.RateLimitDisabled = cfg.Security.RateLimitDisabled

	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
}

// Setup builds the full route tree.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	// CORS is global so OPTIONS preflights are handled everywhere.
	r.Use(router.chiMiddleware.CORS())

	r.Get("/", router.handler.Index)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1/clock", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)

		// Read-only convenience endpoints and the device check-in stay
		// open; only the write-shaped device endpoints require the key.
		r.Get("/", router.handler.ClockNow)
		r.Get("/minute/{minute}", router.handler.ClockAtMinute)
		r.Get("/stats", router.handler.Stats)
		r.Post("/status", router.handler.Status)

		r.Group(func(r chi.Router) {
			r.Use(router.handler.RequireAuth)

			r.Post("/compose", router.handler.Compose)
			r.Post("/notes/{noteID}/seen", router.handler.NoteSeen)
			r.Post("/likes/{poemID}/mark", router.handler.LikeMark)
			r.Post("/likes/{poemID}/unmark", router.handler.LikeUnmark)
		})
	})

	return r
}
