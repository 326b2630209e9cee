// Package config loads runtime settings from an optional coldfront.yaml file
// and the environment. A local .env file is honored so the API key never has
// to live in the shell profile.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultMaxTurns bounds a campaign when no limit is configured.
const DefaultMaxTurns = 20

// Config holds the application configuration.
type Config struct {
	// Seed fixes the simulation RNG; zero means seed from the clock.
	Seed int64 `yaml:"seed"`
	// MaxTurns is the survival horizon in days.
	MaxTurns int `yaml:"max_turns"`
	// TypeDelayMS is the per-character terminal typewriter delay.
	TypeDelayMS int `yaml:"type_delay_ms"`
	// NoColor disables terminal styling.
	NoColor bool `yaml:"no_color"`
	// GeminiAPIKey enables the after-action narrator when set.
	GeminiAPIKey string `yaml:"-"`
}

// LoadConfig reads coldfront.yaml when present, then applies environment
// overrides. Both the yaml file and the .env file are optional.
func LoadConfig() (*Config, error) {
	// Missing .env is the common case and not an error.
	_ = godotenv.Load()

	cfg := &Config{
		MaxTurns:    DefaultMaxTurns,
		TypeDelayMS: 12,
	}

	data, err := os.ReadFile("coldfront.yaml")
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing coldfront.yaml: %w", err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("reading coldfront.yaml: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = DefaultMaxTurns
	}
	if cfg.TypeDelayMS < 0 {
		cfg.TypeDelayMS = 0
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("COLDFRONT_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("COLDFRONT_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v := os.Getenv("COLDFRONT_MAX_TURNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("COLDFRONT_MAX_TURNS: %w", err)
		}
		c.MaxTurns = n
	}
	if v := os.Getenv("COLDFRONT_NO_COLOR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("COLDFRONT_NO_COLOR: %w", err)
		}
		c.NoColor = b
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiAPIKey = v
	}
	return nil
}
