// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

package config

import (
	"strings"
	"testing"
	"time"
)

// chdirTemp moves the test into an empty directory so no stray config.yaml
// in the working tree leaks into the layering tests.
func chdirTemp(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 1440 {
		t.Errorf("Server.Port = %d, want 1440", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("Server.Timeout = %s, want 30s", cfg.Server.Timeout)
	}
	if cfg.Content.Path != "random_clock_content.json" {
		t.Errorf("Content.Path = %q, want default dataset name", cfg.Content.Path)
	}
	if cfg.Security.RequireAuth {
		t.Error("Security.RequireAuth = true, want false by default")
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("CONTENT_PATH", "/data/pool.json")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_WINDOW", "5m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Content.Path != "/data/pool.json" {
		t.Errorf("Content.Path = %q, want /data/pool.json", cfg.Content.Path)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Security.RateLimitWindow != 5*time.Minute {
		t.Errorf("Security.RateLimitWindow = %s, want 5m", cfg.Security.RateLimitWindow)
	}
}

func TestLoad_CORSOriginsCommaSeparated(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(cfg.Security.CORSOrigins) != 2 {
		t.Fatalf("CORSOrigins = %v, want 2 entries", cfg.Security.CORSOrigins)
	}
	if cfg.Security.CORSOrigins[0] != "https://a.example" || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("CORSOrigins = %v, want trimmed origins", cfg.Security.CORSOrigins)
	}
}

func TestLoad_RequireAuthWithoutKey(t *testing.T) {
	chdirTemp(t)
	t.Setenv("REQUIRE_AUTH", "true")

	_, err := Load()
	if err == nil {
		t.Fatal("Load: expected validation error for require_auth without api_key")
	}
	if !strings.Contains(err.Error(), "api_key") {
		t.Errorf("error = %v, want mention of api_key", err)
	}
}

func TestLoad_RequireAuthWithKey(t *testing.T) {
	chdirTemp(t)
	t.Setenv("REQUIRE_AUTH", "true")
	t.Setenv("API_KEY", "poem.randombook")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Security.RequireAuth || cfg.Security.APIKey != "poem.randombook" {
		t.Errorf("auth config = %+v, want require_auth with key", cfg.Security)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, "server.timeout"},
		{"empty content path", func(c *Config) { c.Content.Path = "" }, "content.path"},
		{"zero rate limit", func(c *Config) { c.Security.RateLimitReqs = 0 }, "rate_limit_reqs"},
		{
			"zero rate limit but disabled",
			func(c *Config) {
				c.Security.RateLimitReqs = 0
				c.Security.RateLimitDisabled = true
			},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate: %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SERVER_PORT", "server.port"},
		{"API_KEY", "security.api_key"},
		{"LOG_LEVEL", "logging.level"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.in); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
