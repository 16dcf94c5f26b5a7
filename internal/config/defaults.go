package config

import (
	_ "embed"
)

//go:embed defaults/trapfall.yaml
var defaultTrapfallYAML []byte

// DefaultTrapfallConfig returns the built-in Trap Fall configuration.
// It matches defaults/trapfall.yaml.
func DefaultTrapfallConfig() TrapfallConfig {
	return TrapfallConfig{
		BaseSeed: 41,
		World: TrapfallWorld{
			Width:      1080,
			CellAspect: 2.0,
		},
		Input: TrapfallInput{
			HoldTicks: 8,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTrapfallYAML
}
