package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ApplyEnv overrides cfg with any TRAPFALL_* variables that are set.
func ApplyEnv(cfg *TrapfallConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// LoadApp reads host settings from the environment.
func LoadApp() (AppConfig, error) {
	cfg, err := env.ParseAs[AppConfig]()
	if err != nil {
		return cfg, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv loads variables from a .env file into the process environment.
// A missing file is not an error. Variables already set are left alone.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}
