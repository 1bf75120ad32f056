package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSpace loads the game configuration.
// Search order: customPath -> ~/.spacegarbage/configs/space.yaml -> ./configs/space.yaml -> embedded default
//
// A custom path that cannot be read or parsed is an error. Unreadable files at
// the implicit locations are skipped.
func LoadSpace(customPath string) (SpaceConfig, error) {
	var cfg SpaceConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("space.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
			cfg = SpaceConfig{}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "space.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
		cfg = SpaceConfig{}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSpaceYAML, &cfg); err != nil {
		return DefaultSpaceConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spacegarbage", "configs", filename)
}

// ApplySpacePreset modifies the config based on a difficulty preset.
// Spawn delays are scaled for easy and hard; fixed stops the year clock.
func ApplySpacePreset(cfg *SpaceConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		scaleSpawnDelays(cfg, 1.5)
	case DifficultyHard:
		scaleSpawnDelays(cfg, 0.6)
	case DifficultyFixed:
		cfg.Timeline.TicksPerYear = 0
	}
}

// scaleSpawnDelays multiplies every active delay, keeping it at least one tick.
func scaleSpawnDelays(cfg *SpaceConfig, factor float64) {
	steps := make([]SpawnStep, len(cfg.Timeline.SpawnDelays))
	for i, step := range cfg.Timeline.SpawnDelays {
		if step.Ticks > 0 {
			step.Ticks = max(int(math.Round(float64(step.Ticks)*factor)), 1)
		}
		steps[i] = step
	}
	cfg.Timeline.SpawnDelays = steps
}
