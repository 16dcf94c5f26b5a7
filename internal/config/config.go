// Package config provides YAML/TOML configuration loading with environment
// overrides for Trap Fall and its host.
package config

import (
	"errors"
	"fmt"
)

// TrapfallConfig contains the tunable, non-physics settings of Trap Fall.
type TrapfallConfig struct {
	BaseSeed int64         `yaml:"base_seed" toml:"base_seed" env:"TRAPFALL_BASE_SEED"`
	World    TrapfallWorld `yaml:"world" toml:"world" envPrefix:"TRAPFALL_"`
	Input    TrapfallInput `yaml:"input" toml:"input" envPrefix:"TRAPFALL_"`
}

// TrapfallWorld maps world units onto the terminal.
type TrapfallWorld struct {
	Width      float64 `yaml:"width" toml:"width" env:"WORLD_WIDTH"`
	CellAspect float64 `yaml:"cell_aspect" toml:"cell_aspect" env:"CELL_ASPECT"` // Cell height / cell width
}

// TrapfallInput tunes keyboard handling.
type TrapfallInput struct {
	HoldTicks int `yaml:"hold_ticks" toml:"hold_ticks" env:"HOLD_TICKS"`
}

// Validate reports settings the game cannot run with.
func (c TrapfallConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 {
		errs = append(errs, fmt.Errorf("world.width must be positive, got %v", c.World.Width))
	}
	if c.World.CellAspect <= 0 {
		errs = append(errs, fmt.Errorf("world.cell_aspect must be positive, got %v", c.World.CellAspect))
	}
	if c.Input.HoldTicks < 1 {
		errs = append(errs, fmt.Errorf("input.hold_ticks must be at least 1, got %d", c.Input.HoldTicks))
	}
	return errors.Join(errs...)
}

// WorldHeight returns the world height that fills a screen of the given
// size without distorting the aspect ratio.
func (c TrapfallConfig) WorldHeight(screenW, screenH int) float64 {
	if screenW <= 0 || screenH <= 0 {
		return c.World.Width
	}
	return c.World.Width * float64(screenH) * c.World.CellAspect / float64(screenW)
}

// AppConfig holds host settings that can come from the environment.
// Command-line flags take precedence; these only supply their defaults.
type AppConfig struct {
	DBPath      string `env:"TRAPFALL_DB" envDefault:":memory:"`
	FPS         int    `env:"TRAPFALL_FPS" envDefault:"60"`
	LogFile     string `env:"TRAPFALL_LOG_FILE"`
	SSHAddr     string `env:"TRAPFALL_SSH_ADDR" envDefault:":23234"`
	HostKeyPath string `env:"TRAPFALL_HOST_KEY"`
}
