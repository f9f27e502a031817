// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

// Package config loads and validates the Poemclock configuration.
//
// Configuration is loaded via Koanf v2 with layered sources, highest
// priority last:
//
//  1. Built-in defaults
//  2. Optional YAML config file (config.yaml, or CONFIG_PATH)
//  3. Environment variables (SERVER_PORT, CONTENT_PATH, API_KEY, ...)
//
// The resulting Config is immutable after Load and safe for concurrent
// reads. The scheduling core never touches configuration; all of its inputs
// are explicit parameters.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Content  ContentConfig  `koanf:"content"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment variables: SERVER_HOST, SERVER_PORT, SERVER_TIMEOUT.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// ContentConfig locates the static content dataset loaded at startup.
//
// Environment variable: CONTENT_PATH.
type ContentConfig struct {
	Path string `koanf:"path"`
}

// SecurityConfig holds the device API key check, rate limiting and CORS
// settings.
//
// When RequireAuth is true the compose/seen/like endpoints demand
// "Authorization: Bearer <APIKey>"; the status endpoint and the read-only
// convenience endpoints never require it, matching the device API contract.
//
// Environment variables: API_KEY, REQUIRE_AUTH, RATE_LIMIT_REQS,
// RATE_LIMIT_WINDOW, RATE_LIMIT_DISABLED, CORS_ORIGINS (comma-separated).
type SecurityConfig struct {
	APIKey            string        `koanf:"api_key"`
	RequireAuth       bool          `koanf:"require_auth"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds log output settings.
//
// Environment variables: LOG_LEVEL, LOG_FORMAT, LOG_CALLER.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for values that would only fail later
// at request time. It returns the first problem found.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d outside [1,65535]", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.Content.Path == "" {
		return fmt.Errorf("content.path is required")
	}
	if c.Security.RequireAuth && c.Security.APIKey == "" {
		return fmt.Errorf("security.require_auth is set but security.api_key is empty")
	}
	if !c.Security.RateLimitDisabled && c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("security.rate_limit_reqs must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	return nil
}
