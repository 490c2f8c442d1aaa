package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTurtle loads Turtle Adventure configuration.
// Search order: customPath -> ~/.turtle/configs/turtle.yaml -> ./configs/turtle.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
// The result is validated before it is returned.
func LoadTurtle(customPath string) (TurtleConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TurtleConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseTurtle(data)
		if err != nil {
			return TurtleConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("turtle.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseTurtle(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/turtle.yaml"); err == nil {
		if cfg, err := ParseTurtle(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseTurtle(defaultTurtleYAML)
	if err != nil {
		return DefaultTurtleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseTurtle decodes YAML over the default configuration and validates the result.
func ParseTurtle(data []byte) (TurtleConfig, error) {
	cfg := DefaultTurtleConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TurtleConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return TurtleConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".turtle", "configs", filename)
}

// ApplyTurtlePreset modifies the config based on a difficulty preset.
func ApplyTurtlePreset(cfg *TurtleConfig, preset DifficultyPreset) {
	cfg.Level = LevelForPreset(preset, cfg.Level)
}
