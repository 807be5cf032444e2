package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Port:         "3000",
		APIBaseURL:   "http://localhost:8000",
		HTTPTimeout:  10 * time.Second,
		APIPort:      "8000",
		DataBackend:  "memory",
		SQLiteDBPath: "./fintrack.db",
		LogLevel:     "info",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:   "valid memory backend config",
			mutate: func(c *Config) {},
		},
		{
			name:   "valid sqlite backend config",
			mutate: func(c *Config) { c.DataBackend = "sqlite" },
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid PORT 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range",
			mutate:      func(c *Config) { c.APIPort = "70000" },
			wantErr:     true,
			errorString: "invalid API_PORT 70000: must be between 1 and 65535",
		},
		{
			name:        "invalid base URL scheme",
			mutate:      func(c *Config) { c.APIBaseURL = "ftp://localhost:8000" },
			wantErr:     true,
			errorString: "must be 'http' or 'https'",
		},
		{
			name:        "invalid data backend",
			mutate:      func(c *Config) { c.DataBackend = "postgres" },
			wantErr:     true,
			errorString: "invalid data backend 'postgres'",
		},
		{
			name: "sqlite backend missing database path",
			mutate: func(c *Config) {
				c.DataBackend = "sqlite"
				c.SQLiteDBPath = ""
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty",
		},
		{
			name:        "timeout too small",
			mutate:      func(c *Config) { c.HTTPTimeout = 50 * time.Millisecond },
			wantErr:     true,
			errorString: "must be at least 1 second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("expected error containing %q, got %q", tt.errorString, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("expected ok, got %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.APIBaseURL != "http://localhost:8000" {
		t.Fatalf("default base URL: %s", cfg.APIBaseURL)
	}
	if cfg.Port != "3000" || cfg.APIPort != "8000" {
		t.Fatalf("default ports: %s / %s", cfg.Port, cfg.APIPort)
	}
	if cfg.DataBackend != "sqlite" {
		t.Fatalf("default backend: %s", cfg.DataBackend)
	}
	// Validate with the memory backend so the test never creates the default
	// sqlite data directory.
	cfg.DataBackend = "memory"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}
