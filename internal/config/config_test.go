package config

import (
	"strings"
	"testing"
	"time"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.BaseURL != "https://pokeapi.co/api/v2" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.BatchLimit != 151 {
		t.Errorf("BatchLimit = %d, want 151", cfg.BatchLimit)
	}
	if cfg.RequestDelay != 100*time.Millisecond {
		t.Errorf("RequestDelay = %v, want 100ms", cfg.RequestDelay)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %v, want 30s", cfg.HTTPTimeout)
	}
	if cfg.DefaultIdentifier != "pikachu" {
		t.Errorf("DefaultIdentifier = %q", cfg.DefaultIdentifier)
	}
	if cfg.RedisURL != "" || cfg.MetricsAddr != "" {
		t.Error("optional integrations should be disabled by default")
	}
}

func TestParse_Environment(t *testing.T) {
	t.Setenv("POKESTATS_BASE_URL", "http://localhost:8000/api/v2")
	t.Setenv("POKESTATS_BATCH_LIMIT", "20")
	t.Setenv("POKESTATS_REQUEST_DELAY", "0s")
	t.Setenv("POKESTATS_HTTP_TIMEOUT", "5s")
	t.Setenv("POKESTATS_REDIS_URL", "redis://localhost:6379/2")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.BaseURL != "http://localhost:8000/api/v2" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.BatchLimit != 20 {
		t.Errorf("BatchLimit = %d, want 20", cfg.BatchLimit)
	}
	if cfg.RequestDelay != 0 {
		t.Errorf("RequestDelay = %v, want 0", cfg.RequestDelay)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("HTTPTimeout = %v, want 5s", cfg.HTTPTimeout)
	}
	if cfg.RedisURL != "redis://localhost:6379/2" {
		t.Errorf("RedisURL = %q", cfg.RedisURL)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"unparsable limit", "POKESTATS_BATCH_LIMIT", "many", "failed to parse configuration"},
		{"zero limit", "POKESTATS_BATCH_LIMIT", "0", "batch limit must be > 0"},
		{"negative delay", "POKESTATS_REQUEST_DELAY", "-1s", "request delay must be >= 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Parse()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}
