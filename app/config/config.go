// Package config loads the application settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Store drivers understood by the application.
const (
	StoreSQLite = "sqlite"
	StoreBadger = "badger"
)

// Config holds everything the application needs at startup.
type Config struct {
	Addr         string `env:"TECHTRENDS_ADDR" envDefault:"0.0.0.0:3111"`
	Store        string `env:"TECHTRENDS_STORE" envDefault:"sqlite"`
	DatabasePath string `env:"TECHTRENDS_DATABASE" envDefault:"database.db"`
	BadgerDir    string `env:"TECHTRENDS_BADGER_DIR" envDefault:"data/badger"`
	MaxIdleConns int    `env:"TECHTRENDS_DB_MAX_IDLE_CONNS" envDefault:"0"`
	SecretKey    string `env:"TECHTRENDS_SECRET_KEY" envDefault:"your secret key"`
	OTelEndpoint string `env:"TECHTRENDS_OTEL_ENDPOINT"`
	LogDebug     bool   `env:"TECHTRENDS_LOG_DEBUG" envDefault:"true"`
}

// Load parses the configuration from environment variables and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	switch c.Store {
	case StoreSQLite:
		if strings.TrimSpace(c.DatabasePath) == "" {
			return fmt.Errorf("database path is required for the %s store", StoreSQLite)
		}
	case StoreBadger:
		if strings.TrimSpace(c.BadgerDir) == "" {
			return fmt.Errorf("badger directory is required for the %s store", StoreBadger)
		}
	default:
		return fmt.Errorf("unknown store %q (want %s or %s)", c.Store, StoreSQLite, StoreBadger)
	}
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("max idle connections cannot be negative")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("secret key is required")
	}
	return nil
}
