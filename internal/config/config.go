// Package config loads runtime settings from the environment. Every setting
// has a default, so the CLI runs with no environment at all.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix, e.g. POKESTATS_BASE_URL.
const Prefix = "pokestats"

type Config struct {
	// BaseURL is the catalog root the client talks to.
	BaseURL string `split_words:"true" default:"https://pokeapi.co/api/v2"`

	// BatchLimit is the number of catalog entries the statistics run on.
	BatchLimit int `split_words:"true" default:"151"`

	// RequestDelay is the fixed pause between consecutive catalog requests.
	RequestDelay time.Duration `split_words:"true" default:"100ms"`

	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	UserAgent string `split_words:"true" default:"pokestats/1.0 (+https://github.com/AmitShokeen001/pokestats)"`

	// DefaultIdentifier is shown by the first menu option and used when the
	// lookup prompt is left blank.
	DefaultIdentifier string `split_words:"true" default:"pikachu"`

	LogLevel  string `split_words:"true" default:"info"`
	LogPretty bool   `split_words:"true" default:"true"`

	// RedisURL enables the response cache when set. See
	// https://pkg.go.dev/github.com/redis/go-redis/v9#ParseURL for the format.
	RedisURL string `split_words:"true"`

	// CacheTTL is the cache lifetime for responses without freshness headers.
	CacheTTL time.Duration `split_words:"true" default:"24h"`

	// MetricsAddr enables a Prometheus /metrics listener when set, e.g. ":9090".
	MetricsAddr string `split_words:"true"`
}

// Parse reads the configuration from POKESTATS_* environment variables.
func Parse() (*Config, error) {
	var config Config
	if err := envconfig.Process(Prefix, &config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks value ranges envconfig cannot express.
func (c *Config) Validate() error {
	if c.BatchLimit <= 0 {
		return fmt.Errorf("invalid configuration: batch limit must be > 0 (got %d)", c.BatchLimit)
	}
	if c.RequestDelay < 0 {
		return fmt.Errorf("invalid configuration: request delay must be >= 0 (got %s)", c.RequestDelay)
	}
	if c.DefaultIdentifier == "" {
		return fmt.Errorf("invalid configuration: default identifier must not be empty")
	}
	return nil
}
