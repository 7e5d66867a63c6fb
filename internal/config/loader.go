package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.relicrun/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	var cfg PlatformerConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("platformer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/platformer.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".relicrun", "configs", filename)
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.TimerBase = 75
		cfg.Enemies.BaseSpeed = 0.8
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.TimerBase = 50
		cfg.Enemies.BaseSpeed = 1.4
	}
}
