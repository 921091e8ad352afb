package core

import (
	"fmt"
	"sort"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ValidateState checks the board and gate invariants of a state.
// Checks:
//   - Active shapes stay on the board (the dragged shape is exempt)
//   - Every active shape cell is owned by that shape
//   - Every occupied cell belongs to an active shape
//   - Gates fit their side and do not overlap
func ValidateState(s *State) error {
	dragged, dragging := s.Dragging()
	owned := make(map[Anchor]int)

	for _, sh := range s.Shapes {
		if sh.Removed || (dragging && sh.ID == dragged) {
			continue
		}
		for _, p := range sh.Cells() {
			if !s.Board.InBounds(p) {
				return ValidationError{
					Code:    "OUT_OF_BOUNDS",
					Message: fmt.Sprintf("shape %d cell %s is off the board", sh.ID, p),
				}
			}
			if other, ok := owned[p]; ok {
				return ValidationError{
					Code:    "OVERLAP",
					Message: fmt.Sprintf("shapes %d and %d both cover %s", other, sh.ID, p),
				}
			}
			owned[p] = sh.ID
			if got := s.Board.Owner(p); got != sh.ID {
				return ValidationError{
					Code:    "OWNERSHIP",
					Message: fmt.Sprintf("cell %s owned by %d, want shape %d", p, got, sh.ID),
				}
			}
		}
	}

	size := s.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			p := A(row, col)
			if id := s.Board.Owner(p); id != NoShape {
				if _, ok := owned[p]; !ok {
					return ValidationError{
						Code:    "OWNERSHIP",
						Message: fmt.Sprintf("cell %s owned by %d which does not cover it", p, id),
					}
				}
			}
		}
	}

	return validateGates(s.gates, size)
}

// validateGates checks gate bounds and per-side overlap.
func validateGates(gates []Gate, size int) error {
	for i, g := range gates {
		if g.Length < 1 || g.Offset < 0 || g.End() >= size {
			return ValidationError{
				Code:    "GATE_BOUNDS",
				Message: fmt.Sprintf("gate %d (%s, offset %d, length %d) does not fit a %d board", i, g.Side, g.Offset, g.Length, size),
			}
		}
		for j := 0; j < i; j++ {
			if g.Overlaps(gates[j]) {
				return ValidationError{
					Code:    "GATE_OVERLAP",
					Message: fmt.Sprintf("gates %d and %d overlap on side %s", j, i, g.Side),
				}
			}
		}
	}
	return nil
}

// LevelStats returns statistics about a level.
type LevelStats struct {
	Size           int
	Shapes         int
	ActiveShapes   int
	Gates          int
	Colors         int
	ShapesByColor  map[Color]int
	GatelessColors []Color
	FilledCells    int
	FillRatio      float64
}

// ComputeLevelStats analyzes a state and returns statistics.
func ComputeLevelStats(s *State) LevelStats {
	size := s.Size()
	stats := LevelStats{
		Size:          size,
		Shapes:        len(s.Shapes),
		Gates:         len(s.gates),
		ShapesByColor: make(map[Color]int),
		FilledCells:   s.Board.FilledCount(),
	}

	for _, sh := range s.Shapes {
		stats.ShapesByColor[sh.Color]++
		if !sh.Removed {
			stats.ActiveShapes++
		}
	}
	stats.Colors = len(stats.ShapesByColor)

	gated := make(map[Color]bool)
	for _, g := range s.gates {
		gated[g.Color] = true
	}
	for c := range stats.ShapesByColor {
		if !gated[c] {
			stats.GatelessColors = append(stats.GatelessColors, c)
		}
	}
	sort.Slice(stats.GatelessColors, func(i, j int) bool {
		return stats.GatelessColors[i] < stats.GatelessColors[j]
	})

	if size > 0 {
		stats.FillRatio = float64(stats.FilledCells) / float64(size*size)
	}
	return stats
}
