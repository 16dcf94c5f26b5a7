package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const trapfallFile = "trapfall.yaml"

// LoadTrapfall loads Trap Fall configuration and applies environment overrides.
// Search order: customPath -> ~/.trapfall/configs/trapfall.yaml ->
// ./configs/trapfall.yaml -> embedded default.
// Only a custom path reports read and parse errors; the other locations are
// skipped when missing or broken. Keys absent from a file keep their defaults.
func LoadTrapfall(customPath string) (TrapfallConfig, error) {
	cfg, err := loadTrapfallFile(customPath)
	if err != nil {
		return cfg, err
	}

	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid trapfall config: %w", err)
	}
	return cfg, nil
}

func loadTrapfallFile(customPath string) (TrapfallConfig, error) {
	if customPath != "" {
		cfg := DefaultTrapfallConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", trapfallFile)}
	if userPath := userConfigPath(trapfallFile); userPath != "" {
		candidates = append([]string{userPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := DefaultTrapfallConfig()
		if err := decode(path, data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := DefaultTrapfallConfig()
	if err := yaml.Unmarshal(defaultTrapfallYAML, &cfg); err != nil {
		return DefaultTrapfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode picks the format from the file extension. YAML is the default.
func decode(path string, data []byte, cfg *TrapfallConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".trapfall", "configs", filename)
}
