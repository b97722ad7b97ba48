package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/ericogr/ringside/internal/constants"
)

// Settings are the process-level knobs read from the environment.
type Settings struct {
	Addr        string `env:"RINGSIDE_ADDR" envDefault:":8080"`
	CatalogPath string `env:"RINGSIDE_CONFIG"`
	// Empty DSN means storage.DefaultDSN.
	DSN     string        `env:"RINGSIDE_DB"`
	IdleTTL time.Duration `env:"RINGSIDE_MATCH_IDLE_TTL" envDefault:"30m"`
	// Seed 0 means a fresh seed on every start.
	Seed     int64  `env:"RINGSIDE_SEED" envDefault:"0"`
	LogLevel string `env:"RINGSIDE_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadSettings parses Settings and rejects values the server cannot run
// with.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	if s.IdleTTL <= 0 {
		return Settings{}, fmt.Errorf("%s must be positive, got %s", constants.EnvIdleTTL, s.IdleTTL)
	}
	return s, nil
}
