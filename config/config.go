// SPDX-License-Identifier: MIT
// Package config loads mapcheck settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ErrInvalidConfig reports a setting outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds batch analysis settings.
type Config struct {
	// OpenRADir is the OpenRA install root containing mods/<mod>/.
	OpenRADir string `env:"OPENRA_DIR"`
	// Workers bounds the number of archives analysed concurrently.
	Workers int `env:"MAPCHECK_WORKERS" envDefault:"4"`
	// DBPath, when set, records results in a sqlite database.
	DBPath string `env:"MAPCHECK_DB"`
	// ReportPath, when set, streams results as zstd-compressed JSONL.
	ReportPath string `env:"MAPCHECK_REPORT"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses Config from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges. OpenRADir is checked by the caller that needs it.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: MAPCHECK_WORKERS=%d, want >= 1", ErrInvalidConfig, c.Workers)
	}
	return nil
}
