package core

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// GenParams configures level generation.
type GenParams struct {
	GridSize int // Board width and height

	MinShapes int // Inclusive lower bound of the shape count
	MaxShapes int // Inclusive upper bound of the shape count
	MinColors int // Inclusive lower bound of the color count
	MaxColors int // Inclusive upper bound, capped by palette and shape count

	Palette []Color // Colors a level may draw from

	PlacementAttempts int // Random tries per shape before it is omitted
	GateAttempts      int // Random offsets tried per side before moving on
}

// DefaultGenParams returns the standard 8x8 generation settings.
func DefaultGenParams() GenParams {
	return GenParams{
		GridSize:          DefaultGridSize,
		MinShapes:         3,
		MaxShapes:         7,
		MinColors:         3,
		MaxColors:         6,
		Palette:           Palette(),
		PlacementAttempts: 50,
		GateAttempts:      20,
	}
}

// Validate checks that the parameters can drive generation.
func (p GenParams) Validate() error {
	switch {
	case p.GridSize < 1 || p.GridSize > MaxBoardSize:
		return fmt.Errorf("grid size %d must be in [1, %d]", p.GridSize, MaxBoardSize)
	case p.MinShapes < 0 || p.MaxShapes < p.MinShapes:
		return fmt.Errorf("invalid shape range [%d, %d]", p.MinShapes, p.MaxShapes)
	case p.MinColors < 0 || p.MaxColors < p.MinColors:
		return fmt.Errorf("invalid color range [%d, %d]", p.MinColors, p.MaxColors)
	case p.MaxShapes > 0 && (len(p.Palette) == 0 || p.MaxColors == 0):
		return errors.New("shapes require at least one palette color")
	case p.PlacementAttempts < 1 || p.GateAttempts < 1:
		return errors.New("attempt budgets must be positive")
	}
	return nil
}

// GenReport lists what generation had to give up on.
type GenReport struct {
	Requested      int     // Shape count drawn for the level
	Colors         []Color // Colors drawn for the level, in cycling order
	Omitted        []ShapeType
	GatelessColors []Color
}

// Layout is a complete level description: board size, shapes and gates.
type Layout struct {
	Size   int
	Shapes []Shape
	Gates  []Gate
}

func (l Layout) clone() Layout {
	return Layout{
		Size:   l.Size,
		Shapes: append([]Shape(nil), l.Shapes...),
		Gates:  append([]Gate(nil), l.Gates...),
	}
}

// Generator builds random levels.
type Generator struct {
	Params GenParams
	Logger *log.Logger
}

// NewGenerator creates a generator. A nil logger discards diagnostics.
func NewGenerator(p GenParams, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Generator{Params: p, Logger: logger}
}

// NewGame generates a level and wraps it in a fresh State.
func (g *Generator) NewGame(rng Rand) (*State, GenReport, error) {
	if err := g.Params.Validate(); err != nil {
		return nil, GenReport{}, fmt.Errorf("generator: %w", err)
	}
	layout, report := g.Generate(rng)
	state, err := NewState(layout)
	if err != nil {
		return nil, report, fmt.Errorf("generator: %w", err)
	}
	state.gen = g
	if seeded, ok := rng.(interface{ Seed() uint64 }); ok {
		state.Seed = seeded.Seed()
	}
	return state, report, nil
}

// Generate places random shapes and then derives gates for their colors.
// Failures are absorbed: shapes that do not fit are omitted and colors
// that cannot get a gate ship without one. Both are logged and reported.
func (g *Generator) Generate(rng Rand) (Layout, GenReport) {
	p := g.Params
	board := NewBoard(p.GridSize)
	layout := Layout{Size: p.GridSize}

	numShapes := rangeInt(rng, p.MinShapes, p.MaxShapes)
	numColors := min(rangeInt(rng, p.MinColors, p.MaxColors), len(p.Palette), numShapes)
	if numShapes > 0 && numColors < 1 {
		numColors = 1
	}

	colors := append([]Color(nil), p.Palette...)
	shuffleColors(rng, colors)
	colors = colors[:numColors]

	report := GenReport{Requested: numShapes, Colors: colors}
	g.Logger.Debug("generating level", "shapes", numShapes, "colors", numColors)

	types := ListShapeTypes()
	for i := 0; i < numShapes; i++ {
		t := types[rng.Intn(len(types))]
		color := colors[i%numColors]

		shape, ok := g.placeShape(board, rng, t, color, len(layout.Shapes))
		if !ok {
			g.Logger.Warn("shape omitted", "type", t, "color", color, "attempts", p.PlacementAttempts)
			report.Omitted = append(report.Omitted, t)
			continue
		}
		layout.Shapes = append(layout.Shapes, shape)
	}

	layout.Gates, report.GatelessColors = g.placeGates(rng, layout.Shapes)
	for _, c := range report.GatelessColors {
		g.Logger.Warn("no gate for color", "color", c)
	}
	return layout, report
}

// placeShape tries random orientations and in-bounds anchors.
func (g *Generator) placeShape(board *Board, rng Rand, t ShapeType, color Color, id int) (Shape, bool) {
	orients := Orientations(t)
	size := board.Size()

	for attempt := 0; attempt < g.Params.PlacementAttempts; attempt++ {
		oi := rng.Intn(len(orients))
		m := orients[oi]

		maxRow := size - m.Rows()
		maxCol := size - m.Cols()
		if maxRow < 0 || maxCol < 0 {
			continue // Orientation too big
		}

		a := A(rng.Intn(maxRow+1), rng.Intn(maxCol+1))
		if !board.CanPlaceStrict(m, a) {
			continue
		}

		board.Place(m, a, id)
		return Shape{ID: id, Type: t, Orientation: oi, Color: color, Anchor: a}, true
	}
	return Shape{}, false
}

// colorNeed is the gate size a color needs to let its largest shape out.
type colorNeed struct {
	color     Color
	maxWidth  int // Drives top/bottom gate length
	maxHeight int // Drives left/right gate length
}

// length returns the gate length needed on side.
func (n colorNeed) length(side Side) int {
	if side.Horizontal() {
		return n.maxWidth
	}
	return n.maxHeight
}

// analyzeColors groups shapes by color in first-appearance order.
func analyzeColors(shapes []Shape) []colorNeed {
	var needs []colorNeed
	index := make(map[Color]int)
	for _, s := range shapes {
		if s.Removed {
			continue
		}
		w, h := s.Matrix().BoundingBox()
		i, ok := index[s.Color]
		if !ok {
			i = len(needs)
			index[s.Color] = i
			needs = append(needs, colorNeed{color: s.Color})
		}
		needs[i].maxWidth = max(needs[i].maxWidth, w)
		needs[i].maxHeight = max(needs[i].maxHeight, h)
	}
	return needs
}

// borderReservations tracks which border cells already hold a gate.
type borderReservations struct {
	size int
	used map[Side][]bool
}

func newBorderReservations(size int) *borderReservations {
	r := &borderReservations{size: size, used: make(map[Side][]bool, 4)}
	for _, s := range Sides() {
		r.used[s] = make([]bool, size)
	}
	return r
}

// free returns true if [offset, offset+length) is on the border and unreserved.
func (r *borderReservations) free(side Side, offset, length int) bool {
	if offset < 0 || offset+length > r.size {
		return false
	}
	for i := offset; i < offset+length; i++ {
		if r.used[side][i] {
			return false
		}
	}
	return true
}

func (r *borderReservations) reserve(side Side, offset, length int) {
	for i := offset; i < offset+length; i++ {
		r.used[side][i] = true
	}
}

// placeGates gives every color one gate. The first pass avoids sides that
// another color already claimed; the second pass accepts any side. Spans
// never overlap on a side in either pass.
func (g *Generator) placeGates(rng Rand, shapes []Shape) ([]Gate, []Color) {
	var gates []Gate
	var gateless []Color
	reserved := newBorderReservations(g.Params.GridSize)
	claimed := make(map[Side]bool, 4)

	for _, need := range analyzeColors(shapes) {
		placed := false
		for _, side := range Sides() {
			if claimed[side] {
				continue
			}
			if gate, ok := g.placeGate(rng, reserved, side, need); ok {
				gates = append(gates, gate)
				claimed[side] = true
				placed = true
				break
			}
		}

		if !placed {
			for _, side := range Sides() {
				if gate, ok := g.placeGate(rng, reserved, side, need); ok {
					gates = append(gates, gate)
					g.Logger.Debug("gate placed on shared side", "color", need.color, "side", side)
					placed = true
					break
				}
			}
		}

		if !placed {
			gateless = append(gateless, need.color)
		}
	}
	return gates, gateless
}

// placeGate tries random offsets on one side.
func (g *Generator) placeGate(rng Rand, reserved *borderReservations, side Side, need colorNeed) (Gate, bool) {
	length := need.length(side)
	maxOffset := g.Params.GridSize - length
	if length < 1 || maxOffset < 0 {
		return Gate{}, false // Gate too big for this side
	}

	for attempt := 0; attempt < g.Params.GateAttempts; attempt++ {
		offset := rng.Intn(maxOffset + 1)
		if !reserved.free(side, offset, length) {
			continue
		}
		reserved.reserve(side, offset, length)
		return Gate{Side: side, Offset: offset, Length: length, Color: need.color}, true
	}
	return Gate{}, false
}
