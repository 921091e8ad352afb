// Package config provides YAML-based configuration loading and difficulty
// presets for Block Jam.
package config

import (
	"fmt"

	"github.com/vovakirdan/blockjam/internal/games/blockjam/core"
)

// BlockJamConfig contains all configuration for Block Jam.
type BlockJamConfig struct {
	Generation GenerationConfig `yaml:"generation"`
	Theme      ThemeConfig      `yaml:"theme"`
}

// GenerationConfig defines level generation parameters.
type GenerationConfig struct {
	GridSize          int      `yaml:"grid_size"`
	MinShapes         int      `yaml:"min_shapes"`
	MaxShapes         int      `yaml:"max_shapes"`
	MinColors         int      `yaml:"min_colors"`
	MaxColors         int      `yaml:"max_colors"`
	Palette           []string `yaml:"palette"` // Color names, e.g. "red"
	PlacementAttempts int      `yaml:"placement_attempts"`
	GateAttempts      int      `yaml:"gate_attempts"`
}

// ThemeConfig selects the terminal color theme.
type ThemeConfig struct {
	Name string `yaml:"name"`
}

// ToGenParams converts the generation section into engine parameters.
// Zero values fall back to the engine defaults.
func (c BlockJamConfig) ToGenParams() (core.GenParams, error) {
	p := core.DefaultGenParams()
	g := c.Generation
	if g.GridSize > 0 {
		p.GridSize = g.GridSize
	}
	if g.MaxShapes > 0 {
		p.MinShapes, p.MaxShapes = g.MinShapes, g.MaxShapes
	}
	if g.MaxColors > 0 {
		p.MinColors, p.MaxColors = g.MinColors, g.MaxColors
	}
	if g.PlacementAttempts > 0 {
		p.PlacementAttempts = g.PlacementAttempts
	}
	if g.GateAttempts > 0 {
		p.GateAttempts = g.GateAttempts
	}
	if len(g.Palette) > 0 {
		palette := make([]core.Color, 0, len(g.Palette))
		for _, name := range g.Palette {
			col, ok := core.ParseColor(name)
			if !ok {
				return p, fmt.Errorf("config: unknown palette color %q", name)
			}
			palette = append(palette, col)
		}
		p.Palette = palette
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("config: generation: %w", err)
	}
	return p, nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value to a preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}
