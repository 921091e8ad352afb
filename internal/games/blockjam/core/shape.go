package core

// Shape is a shape instance placed on the board.
// Removed shapes are kept as tombstones so ids stay dense and stable.
type Shape struct {
	ID          int       // Index into the shape arena, never reused
	Type        ShapeType // Catalog family
	Orientation int       // Index into Orientations(Type)
	Color       Color     // Must match a gate color to exit
	Anchor      Anchor    // Top-left of the matrix on the board
	Removed     bool      // Set once the shape has passed through a gate
}

// Matrix returns the oriented occupancy matrix of the shape.
func (s Shape) Matrix() Matrix {
	return Orientations(s.Type)[s.Orientation]
}

// Cells returns the absolute board positions covered by the shape.
func (s Shape) Cells() []Anchor {
	offsets := s.Matrix().Offsets()
	for i, off := range offsets {
		offsets[i] = s.Anchor.Add(off.Row, off.Col)
	}
	return offsets
}

// Covers reports whether the shape's bounding rectangle contains p.
func (s Shape) Covers(p Anchor) bool {
	m := s.Matrix()
	return p.Row >= s.Anchor.Row && p.Row < s.Anchor.Row+m.Rows() &&
		p.Col >= s.Anchor.Col && p.Col < s.Anchor.Col+m.Cols()
}

// Gate is a colored exit window on one side of the board.
type Gate struct {
	Side   Side  // Board border the gate sits on
	Offset int   // First border cell covered (column for top/bottom, row for left/right)
	Length int   // Number of consecutive border cells covered
	Color  Color // Only shapes of this color may pass
}

// End returns the last border cell covered by the gate.
func (g Gate) End() int {
	return g.Offset + g.Length - 1
}

// Overlaps returns true if both gates share a side and at least one border cell.
func (g Gate) Overlaps(other Gate) bool {
	return g.Side == other.Side && g.Offset <= other.End() && other.Offset <= g.End()
}
