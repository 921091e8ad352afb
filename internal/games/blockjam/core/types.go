// Package core provides the puzzle engine for the Block Jam game.
// This package is UI-agnostic and deterministic for a given random source.
package core

import (
	"fmt"
	"strings"
)

// DefaultGridSize is the width and height of a standard board.
const DefaultGridSize = 8

// Side identifies one border of the board.
type Side uint8

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

// Sides returns all sides in the fixed order used by gate placement.
func Sides() []Side {
	return []Side{SideTop, SideBottom, SideLeft, SideRight}
}

// String returns the string representation of a side.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Horizontal returns true for sides that run along a row (top and bottom).
func (s Side) Horizontal() bool {
	return s == SideTop || s == SideBottom
}

// ParseSide converts a string to a Side.
func ParseSide(str string) (Side, bool) {
	switch strings.ToLower(str) {
	case "top", "t":
		return SideTop, true
	case "bottom", "b":
		return SideBottom, true
	case "left", "l":
		return SideLeft, true
	case "right", "r":
		return SideRight, true
	default:
		return SideTop, false
	}
}

// Anchor is a (row, col) board position. Shapes are anchored by the
// top-left cell of their matrix. Anchors may lie outside the board.
type Anchor struct {
	Row int
	Col int
}

// A is a convenience constructor for Anchor.
func A(row, col int) Anchor {
	return Anchor{Row: row, Col: col}
}

// String returns a string representation of the anchor.
func (a Anchor) String() string {
	return fmt.Sprintf("(%d,%d)", a.Row, a.Col)
}

// Add returns a new Anchor offset by (dRow, dCol).
func (a Anchor) Add(dRow, dCol int) Anchor {
	return Anchor{Row: a.Row + dRow, Col: a.Col + dCol}
}

// Sub returns the displacement from other to a.
func (a Anchor) Sub(other Anchor) (dRow, dCol int) {
	return a.Row - other.Row, a.Col - other.Col
}

// neighbours lists the four axis-adjacent steps: up, down, left, right.
var neighbours = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
