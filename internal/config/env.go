package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/robalobadob/passtrain/internal/drill"
)

// Config is the process configuration, read from PASSTRAIN_* variables.
type Config struct {
	MaxAttempts           int     `env:"PASSTRAIN_MAX_ATTEMPTS" envDefault:"5"`
	StartingAttempts      int     `env:"PASSTRAIN_STARTING_ATTEMPTS" envDefault:"2"`
	StartingDifficulty    float64 `env:"PASSTRAIN_STARTING_DIFFICULTY" envDefault:"0.2"`
	MaxDifficultyIncrease float64 `env:"PASSTRAIN_MAX_DIFFICULTY_INCREASE" envDefault:"0.2"`

	LogLevel string `env:"PASSTRAIN_LOG_LEVEL" envDefault:"warn"`
	Locale   string `env:"PASSTRAIN_LOCALE" envDefault:"en-US"`

	HideSecretEntry bool `env:"PASSTRAIN_HIDE_SECRET_ENTRY" envDefault:"false"`
	ClearScreen     bool `env:"PASSTRAIN_CLEAR_SCREEN" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses a Config and validates its drill settings.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Drill().Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Drill returns the difficulty controller settings.
func (c Config) Drill() drill.Config {
	return drill.Config{
		MaxAttempts:           c.MaxAttempts,
		StartingAttempts:      c.StartingAttempts,
		StartingDifficulty:    c.StartingDifficulty,
		MaxDifficultyIncrease: c.MaxDifficultyIncrease,
	}
}
