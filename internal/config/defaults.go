package config

import (
	_ "embed"
)

//go:embed defaults/blockjam.yaml
var defaultBlockJamYAML []byte

// DefaultBlockJamConfig returns the default Block Jam configuration.
func DefaultBlockJamConfig() BlockJamConfig {
	return BlockJamConfig{
		Generation: GenerationConfig{
			GridSize:          8,
			MinShapes:         3,
			MaxShapes:         7,
			MinColors:         3,
			MaxColors:         6,
			Palette:           []string{"red", "green", "blue", "yellow", "purple", "orange", "pink", "cyan"},
			PlacementAttempts: 50,
			GateAttempts:      20,
		},
		Theme: ThemeConfig{Name: "classic"},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBlockJamYAML
}
