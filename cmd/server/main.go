// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

// Package main is the entry point for the Poemclock server.
//
// Poemclock serves a Poem/1 compatible device API backed by a deterministic
// daily schedule: every content item appears three times per day at
// pseudo-random minutes, reshuffled each midnight from a date-derived seed.
// Any number of instances with the same content file serve identical
// schedules with no shared state.
//
// The server initializes components in the following order:
//
//  1. Configuration: Koanf v2 layered sources (defaults, YAML, environment)
//  2. Logging: global zerolog logger
//  3. Content pool: content file loaded once, immutable afterwards
//  4. HTTP server: Chi router with the device and convenience endpoints
//  5. Supervision: suture tree restarts a crashed server with backoff
//
// Shutdown is graceful on SIGINT and SIGTERM: in-flight requests drain
// within the configured timeout before the process exits.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/poemclock/internal/api"
	"github.com/tomtom215/poemclock/internal/config"
	"github.com/tomtom215/poemclock/internal/content"
	"github.com/tomtom215/poemclock/internal/logging"
	"github.com/tomtom215/poemclock/internal/metrics"
	"github.com/tomtom215/poemclock/internal/supervisor"
)

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Int("port", cfg.Server.Port).
		Str("content_path", cfg.Content.Path).
		Msg("starting poemclock")

	pool, err := content.LoadFile(cfg.Content.Path)
	if err != nil {
		return fmt.Errorf("load content pool: %w", err)
	}
	metrics.SetContentPoolItems(pool.Len())

	stats := pool.Stats()
	logging.Info().
		Int("items", stats.TotalItems).
		Str("coverage", stats.Coverage).
		Msg("content pool loaded")
	if cfg.Security.RequireAuth {
		logging.Info().Msg("API key authentication enabled for device write endpoints")
	}

	handler := api.NewHandler(pool, cfg)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(supervisor.NewHTTPService(server, cfg.Server.Timeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("listening")

	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	logging.Info().Msg("shutdown signal received, draining connections")

	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor: %w", err)
	}

	if report, rerr := tree.UnstoppedServiceReport(); rerr == nil && len(report) > 0 {
		logging.Warn().Int("count", len(report)).Msg("services did not stop within timeout")
	}

	logging.Info().Msg("shutdown complete")
	return nil
}
