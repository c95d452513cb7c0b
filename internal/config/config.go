// Package config provides environment-based configuration for the service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds runtime configuration. All values come from the environment;
// a .env file, when present, is loaded by the CLI before FromEnv runs.
type Config struct {
	Port           int           `validate:"min=1,max=65535"`
	GeminiAPIKey   string        // empty disables AI grading, fallback scoring is used
	GeminiModel    string        `validate:"required"`
	RequestTimeout time.Duration `validate:"min=1s"`
}

// Defaults returns the configuration used when no environment overrides are set.
func Defaults() Config {
	return Config{
		Port:           8000,
		GeminiModel:    "gemini-2.5-flash",
		RequestTimeout: 120 * time.Second,
	}
}

// FromEnv builds a Config from environment variables, falling back to
// Defaults for anything unset.
func FromEnv() (Config, error) {
	cfg := Defaults()

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.GeminiModel = v
	}

	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", v, err)
		}
		cfg.RequestTimeout = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
