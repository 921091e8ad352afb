package core

import (
	"fmt"
	"strings"
)

// ShapeType identifies a shape family in the catalog.
type ShapeType uint8

const (
	ShapeUnit ShapeType = iota
	ShapeDomino
	ShapeTromino
	ShapeSquare
	ShapeShortL
	ShapeLongL
	ShapeTee
	ShapeTypeCount // Sentinel value for iteration
)

// String returns the identifier used in level files and logs.
func (t ShapeType) String() string {
	if t < ShapeTypeCount {
		return catalog[t].id
	}
	return "unknown"
}

// Name returns the display name of the shape family.
func (t ShapeType) Name() string {
	if t < ShapeTypeCount {
		return catalog[t].name
	}
	return "Unknown"
}

// ParseShapeType converts an identifier to a ShapeType.
func ParseShapeType(s string) (ShapeType, bool) {
	for t := ShapeUnit; t < ShapeTypeCount; t++ {
		if strings.EqualFold(s, catalog[t].id) {
			return t, true
		}
	}
	return ShapeUnit, false
}

// ShapeTemplate is an immutable catalog entry.
type ShapeTemplate struct {
	Type         ShapeType
	Name         string
	Orientations []Matrix
}

type templateDef struct {
	id       string
	name     string
	variants []string // rows separated by '/', 'X' is filled
	parsed   []Matrix
}

// Orientations are listed as rotations first, then mirrored rotations.
// Symmetric shapes list only the variants that are visually distinct.
var catalog = [ShapeTypeCount]templateDef{
	ShapeUnit:    {id: "unit", name: "Unit", variants: []string{"X"}},
	ShapeDomino:  {id: "domino", name: "Long 1x2", variants: []string{"XX", "X/X"}},
	ShapeTromino: {id: "tromino", name: "Long 1x3", variants: []string{"XXX", "X/X/X"}},
	ShapeSquare:  {id: "square", name: "Square", variants: []string{"XX/XX"}},
	ShapeShortL: {id: "short-l", name: "Short L", variants: []string{
		"XX/X.", "X./XX", ".X/XX", "XX/.X",
	}},
	ShapeLongL: {id: "long-l", name: "Long L", variants: []string{
		"X../XXX", "XX/X./X.", "XXX/..X", ".X/.X/XX",
		"..X/XXX", "X./X./XX", "XXX/X..", "XX/.X/.X",
	}},
	ShapeTee: {id: "tee", name: "T Shape", variants: []string{
		".X./XXX", "X./XX/X.", "XXX/.X.", ".X/XX/.X",
	}},
}

func init() {
	for t := range catalog {
		def := &catalog[t]
		def.parsed = make([]Matrix, 0, len(def.variants))
		for _, v := range def.variants {
			m, err := ParseMatrix(v)
			if err != nil {
				panic(fmt.Sprintf("catalog: shape %q: %v", def.id, err))
			}
			def.parsed = append(def.parsed, m)
		}
	}
}

// ListShapeTypes returns every shape type in catalog order.
func ListShapeTypes() []ShapeType {
	types := make([]ShapeType, 0, ShapeTypeCount)
	for t := ShapeUnit; t < ShapeTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// Orientations returns the orientation matrices of a shape type.
// The returned slice is shared and must not be modified.
func Orientations(t ShapeType) []Matrix {
	if t >= ShapeTypeCount {
		return nil
	}
	return catalog[t].parsed
}

// Template returns the full catalog entry for a shape type.
func Template(t ShapeType) ShapeTemplate {
	return ShapeTemplate{
		Type:         t,
		Name:         t.Name(),
		Orientations: Orientations(t),
	}
}
