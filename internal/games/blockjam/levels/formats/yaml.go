// Package formats provides level file format parsers and writers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blockjam/internal/games/blockjam/core"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     int               `yaml:"size,omitempty"`
	Shapes   []YAMLShape       `yaml:"shapes"`
	Gates    []YAMLGate        `yaml:"gates"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLShape represents a placed shape in YAML format.
type YAMLShape struct {
	Type        string `yaml:"type"`
	Orientation int    `yaml:"orientation"`
	Color       string `yaml:"color"`
	Row         int    `yaml:"row"`
	Col         int    `yaml:"col"`
}

// YAMLGate represents a border gate in YAML format.
type YAMLGate struct {
	Side   string `yaml:"side"`
	Offset int    `yaml:"offset"`
	Length int    `yaml:"length"`
	Color  string `yaml:"color"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Layout   core.Layout
	Metadata map[string]string
}

// ParseYAML parses a YAML level file. Unknown shape types, colors and
// sides are errors since dropping a shape or gate changes the puzzle.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	size := yl.Size
	if size <= 0 {
		size = core.DefaultGridSize
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Layout:   core.Layout{Size: size},
		Metadata: yl.Metadata,
	}

	for i, s := range yl.Shapes {
		t, ok := core.ParseShapeType(s.Type)
		if !ok {
			return Level{}, fmt.Errorf("shape %d: unknown type %q", i, s.Type)
		}
		color, ok := core.ParseColor(s.Color)
		if !ok {
			return Level{}, fmt.Errorf("shape %d: unknown color %q", i, s.Color)
		}
		level.Layout.Shapes = append(level.Layout.Shapes, core.Shape{
			ID:          i,
			Type:        t,
			Orientation: s.Orientation,
			Color:       color,
			Anchor:      core.A(s.Row, s.Col),
		})
	}

	for i, g := range yl.Gates {
		side, ok := core.ParseSide(g.Side)
		if !ok {
			return Level{}, fmt.Errorf("gate %d: unknown side %q", i, g.Side)
		}
		color, ok := core.ParseColor(g.Color)
		if !ok {
			return Level{}, fmt.Errorf("gate %d: unknown color %q", i, g.Color)
		}
		level.Layout.Gates = append(level.Layout.Gates, core.Gate{
			Side:   side,
			Offset: g.Offset,
			Length: g.Length,
			Color:  color,
		})
	}

	return level, nil
}

// MarshalYAML encodes a level in the file format. Removed shapes are
// skipped so an exported level starts from its current position.
func MarshalYAML(l Level) ([]byte, error) {
	yl := YAMLLevel{
		ID:       l.ID,
		Name:     l.Name,
		Size:     l.Layout.Size,
		Shapes:   []YAMLShape{},
		Gates:    []YAMLGate{},
		Metadata: l.Metadata,
	}

	for _, s := range l.Layout.Shapes {
		if s.Removed {
			continue
		}
		yl.Shapes = append(yl.Shapes, YAMLShape{
			Type:        s.Type.String(),
			Orientation: s.Orientation,
			Color:       s.Color.String(),
			Row:         s.Anchor.Row,
			Col:         s.Anchor.Col,
		})
	}
	for _, g := range l.Layout.Gates {
		yl.Gates = append(yl.Gates, YAMLGate{
			Side:   g.Side.String(),
			Offset: g.Offset,
			Length: g.Length,
			Color:  g.Color.String(),
		})
	}

	data, err := yaml.Marshal(&yl)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
