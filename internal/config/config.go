// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the server needs to start.
type Config struct {
	Addr            string        // listen address, e.g. ":8080"
	DatabaseURL     string        // Postgres DSN
	SessionSecret   string        // HS256 secret shared with the identity provider
	ShutdownTimeout time.Duration // grace period for in-flight requests
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI).
	_ = godotenv.Load()

	cfg := &Config{
		Addr:            os.Getenv("ADDR"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SessionSecret:   os.Getenv("SESSION_JWT_SECRET"),
		ShutdownTimeout: 5 * time.Second,
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("config: SHUTDOWN_TIMEOUT invalid (%q): %w", v, err)
		}
		cfg.ShutdownTimeout = d
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate applies all rules on the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		c.Addr = ":8080"
	}

	if strings.TrimSpace(c.SessionSecret) == "" {
		return fmt.Errorf("config: SESSION_JWT_SECRET is required")
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("config: DATABASE_URL is required")
	}
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalid (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalid (%q): missing scheme or host", c.DatabaseURL)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}
