package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// userConfigPath returns the path to a config file in the user's config directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockjam", "configs", filename)
}

// LoadBlockJam loads Block Jam configuration.
// Search order: customPath -> ~/.blockjam/configs/blockjam.yaml ->
// ./configs/blockjam.yaml -> embedded default.
func LoadBlockJam(customPath string) (BlockJamConfig, error) {
	cfg := DefaultBlockJamConfig()

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

	if userCfgPath := userConfigPath("blockjam.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	if c, ok := tryLoad(filepath.Join("configs", "blockjam.yaml")); ok {
		return c, nil
	}

	if err := yaml.Unmarshal(defaultBlockJamYAML, &cfg); err != nil {
		return DefaultBlockJamConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads a config file layered over the hardcoded defaults.
// Missing or malformed files are skipped.
func tryLoad(path string) (BlockJamConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BlockJamConfig{}, false
	}
	cfg := DefaultBlockJamConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BlockJamConfig{}, false
	}
	return cfg, true
}

// ApplyBlockJamPreset modifies the generation ranges based on a difficulty preset.
// Normal keeps the configured ranges.
func ApplyBlockJamPreset(cfg *BlockJamConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Generation.MinShapes = 2
		cfg.Generation.MaxShapes = 4
		cfg.Generation.MinColors = 2
		cfg.Generation.MaxColors = 3
	case DifficultyHard:
		cfg.Generation.MinShapes = 6
		cfg.Generation.MaxShapes = 10
		cfg.Generation.MinColors = 4
		cfg.Generation.MaxColors = 6
		cfg.Generation.PlacementAttempts = max(cfg.Generation.PlacementAttempts, 100)
	}
}
