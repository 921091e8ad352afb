package core

import (
	"errors"
	"fmt"
	"strings"
)

// Matrix is a rectangular boolean occupancy matrix.
// Cells are stored in row-major order: index = row*cols + col.
type Matrix struct {
	rows  int
	cols  int
	cells []bool
}

// NewMatrix builds a matrix from rows of 0/1 values.
func NewMatrix(rows [][]int) (Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Matrix{}, errors.New("matrix is empty")
	}
	m := Matrix{rows: len(rows), cols: len(rows[0])}
	m.cells = make([]bool, m.rows*m.cols)
	for r, row := range rows {
		if len(row) != m.cols {
			return Matrix{}, fmt.Errorf("row %d has %d columns, want %d", r, len(row), m.cols)
		}
		for c, v := range row {
			m.cells[r*m.cols+c] = v != 0
		}
	}
	return m, nil
}

// ParseMatrix parses a compact visual form such as "XX/X.".
// Rows are separated by '/', 'X' marks a filled cell and '.' an empty one.
func ParseMatrix(s string) (Matrix, error) {
	lines := strings.Split(s, "/")
	rows := make([][]int, len(lines))
	for r, line := range lines {
		rows[r] = make([]int, len(line))
		for c, ch := range line {
			switch ch {
			case 'X', 'x', '1':
				rows[r][c] = 1
			case '.', '0':
			default:
				return Matrix{}, fmt.Errorf("invalid cell %q at row %d", ch, r)
			}
		}
	}
	m, err := NewMatrix(rows)
	if err != nil {
		return Matrix{}, err
	}
	if m.FilledCount() == 0 {
		return Matrix{}, errors.New("matrix has no filled cells")
	}
	return m, nil
}

// Rows returns the number of matrix rows.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of matrix columns.
func (m Matrix) Cols() int { return m.cols }

// Filled reports whether the cell at (row, col) is filled.
// Out-of-range cells are empty.
func (m Matrix) Filled(row, col int) bool {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return false
	}
	return m.cells[row*m.cols+col]
}

// FilledCount returns the number of filled cells.
func (m Matrix) FilledCount() int {
	n := 0
	for _, f := range m.cells {
		if f {
			n++
		}
	}
	return n
}

// Offsets returns the (row, col) offsets of all filled cells, row by row.
func (m Matrix) Offsets() []Anchor {
	out := make([]Anchor, 0, len(m.cells))
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if m.cells[r*m.cols+c] {
				out = append(out, A(r, c))
			}
		}
	}
	return out
}

// BoundingBox returns the width and height spanned by the filled cells.
func (m Matrix) BoundingBox() (width, height int) {
	minR, maxR := m.rows, -1
	minC, maxC := m.cols, -1
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if !m.cells[r*m.cols+c] {
				continue
			}
			minR, maxR = min(minR, r), max(maxR, r)
			minC, maxC = min(minC, c), max(maxC, c)
		}
	}
	if maxR < 0 {
		return 0, 0
	}
	return maxC - minC + 1, maxR - minR + 1
}

// edgeCells returns the matrix offsets along the outer row or column facing side.
func (m Matrix) edgeCells(side Side) []Anchor {
	var out []Anchor
	switch side {
	case SideTop, SideBottom:
		r := 0
		if side == SideBottom {
			r = m.rows - 1
		}
		for c := 0; c < m.cols; c++ {
			if m.Filled(r, c) {
				out = append(out, A(r, c))
			}
		}
	case SideLeft, SideRight:
		c := 0
		if side == SideRight {
			c = m.cols - 1
		}
		for r := 0; r < m.rows; r++ {
			if m.Filled(r, c) {
				out = append(out, A(r, c))
			}
		}
	}
	return out
}

// EdgeLength counts the filled cells on the outer row or column facing side.
// A notched shape has an edge shorter than its bounding box.
func (m Matrix) EdgeLength(side Side) int {
	return len(m.edgeCells(side))
}

// EdgeSpan returns the absolute board span [start, end] of the filled cells
// on the edge facing side when the matrix is anchored at a. The span runs
// along columns for top/bottom and along rows for left/right.
func (m Matrix) EdgeSpan(side Side, a Anchor) (start, end int) {
	cells := m.edgeCells(side)
	if len(cells) == 0 {
		return 0, 0
	}
	start, end = 1<<31-1, -1<<31
	for _, off := range cells {
		pos := a.Col + off.Col
		if !side.Horizontal() {
			pos = a.Row + off.Row
		}
		start, end = min(start, pos), max(end, pos)
	}
	return start, end
}

// String renders the matrix in the compact visual form.
func (m Matrix) String() string {
	var b strings.Builder
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			b.WriteByte('/')
		}
		for c := 0; c < m.cols; c++ {
			if m.Filled(r, c) {
				b.WriteByte('X')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Equal returns true if both matrices have the same shape and cells.
func (m Matrix) Equal(other Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
