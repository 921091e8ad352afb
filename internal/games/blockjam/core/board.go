package core

// NoShape is the owner id of an empty cell.
const NoShape = -1

// Cell represents a single cell on the board.
type Cell struct {
	Occupied bool // Whether a shape covers the cell
	Owner    int  // Shape id, valid only when Occupied is true
}

// EmptyCell returns an unoccupied cell.
func EmptyCell() Cell {
	return Cell{Owner: NoShape}
}

// Board is the square grid of cell ownership.
// Cells are stored in row-major order: index = row*Size + col.
type Board struct {
	size  int
	cells []Cell
}

// NewBoard creates an empty board with the given width and height.
func NewBoard(size int) *Board {
	b := &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
	b.Reset()
	return b
}

// Size returns the width and height of the board.
func (b *Board) Size() int {
	return b.size
}

// Reset empties every cell.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = EmptyCell()
	}
}

// InBounds returns true if the position lies on the board.
func (b *Board) InBounds(p Anchor) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// withinOvershoot returns true if p is at most one cell outside the board.
func (b *Board) withinOvershoot(p Anchor) bool {
	return p.Row >= -1 && p.Row <= b.size && p.Col >= -1 && p.Col <= b.size
}

// Get returns the cell at p. Off-board positions read as empty.
func (b *Board) Get(p Anchor) Cell {
	if !b.InBounds(p) {
		return EmptyCell()
	}
	return b.cells[p.Row*b.size+p.Col]
}

// Owner returns the id of the shape covering p, or NoShape.
func (b *Board) Owner(p Anchor) int {
	return b.Get(p).Owner
}

// CanPlace reports whether m anchored at a is a legal placement while
// ignoring cells owned by exclude. Filled cells may overshoot the board by
// one row or column so that a shape can be evaluated mid-transit through a
// gate; any further overshoot is illegal.
func (b *Board) CanPlace(m Matrix, a Anchor, exclude int) bool {
	for _, off := range m.Offsets() {
		p := a.Add(off.Row, off.Col)
		if !b.withinOvershoot(p) {
			return false
		}
		if !b.InBounds(p) {
			continue
		}
		cell := b.cells[p.Row*b.size+p.Col]
		if cell.Occupied && cell.Owner != exclude {
			return false
		}
	}
	return true
}

// CanPlaceStrict reports whether m anchored at a lies fully on the board
// over empty cells. Used for initial placement.
func (b *Board) CanPlaceStrict(m Matrix, a Anchor) bool {
	if a.Row < 0 || a.Col < 0 || a.Row+m.Rows() > b.size || a.Col+m.Cols() > b.size {
		return false
	}
	return b.CanPlace(m, a, NoShape)
}

// Place marks the on-board cells of m anchored at a as owned by id.
// The caller must have checked CanPlace.
func (b *Board) Place(m Matrix, a Anchor, id int) {
	for _, off := range m.Offsets() {
		p := a.Add(off.Row, off.Col)
		if b.InBounds(p) {
			b.cells[p.Row*b.size+p.Col] = Cell{Occupied: true, Owner: id}
		}
	}
}

// Clear unmarks the cells of m anchored at a that are owned by id.
// Cells owned by another shape are left untouched.
func (b *Board) Clear(m Matrix, a Anchor, id int) {
	for _, off := range m.Offsets() {
		p := a.Add(off.Row, off.Col)
		if !b.InBounds(p) {
			continue
		}
		i := p.Row*b.size + p.Col
		if b.cells[i].Occupied && b.cells[i].Owner == id {
			b.cells[i] = EmptyCell()
		}
	}
}

// ClearShape unmarks every cell owned by id.
func (b *Board) ClearShape(id int) {
	for i, cell := range b.cells {
		if cell.Occupied && cell.Owner == id {
			b.cells[i] = EmptyCell()
		}
	}
}

// FilledCount returns the number of occupied cells.
func (b *Board) FilledCount() int {
	count := 0
	for _, cell := range b.cells {
		if cell.Occupied {
			count++
		}
	}
	return count
}

// Snapshot returns a copy of cell ownership as rows of shape ids
// (NoShape for empty cells).
func (b *Board) Snapshot() [][]int {
	out := make([][]int, b.size)
	for r := range out {
		out[r] = make([]int, b.size)
		for c := range out[r] {
			out[r][c] = b.cells[r*b.size+c].Owner
		}
	}
	return out
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}
