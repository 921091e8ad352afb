package core

import (
	"fmt"
	"strings"
)

// RenderASCII creates an ASCII representation of the current game state.
// This is used for debugging, tests and `gen --print`.
//
// Format:
//   - Board cells: empty='.', shapes by color letter (R/G/B/Y/P/O/K/C)
//   - Gates drawn on the border frame by color letter in lowercase
//   - Corners '+', free border '-' and '|'
//   - The dragged shape is drawn at its preview anchor
func RenderASCII(s *State) string {
	var sb strings.Builder
	size := s.Size()

	sb.WriteString(fmt.Sprintf("Shapes: %d/%d | Gates: %d | Moves: %d | Solved: %t\n",
		len(s.ActiveShapes()), len(s.Shapes), len(s.gates), s.Moves, s.IsSolved()))

	frame := make([][]byte, size+2)
	for r := range frame {
		frame[r] = make([]byte, size+2)
		for c := range frame[r] {
			switch {
			case (r == 0 || r == size+1) && (c == 0 || c == size+1):
				frame[r][c] = '+'
			case r == 0 || r == size+1:
				frame[r][c] = '-'
			case c == 0 || c == size+1:
				frame[r][c] = '|'
			default:
				frame[r][c] = '.'
			}
		}
	}

	for _, g := range s.gates {
		ch := byte(g.Color.LowerChar())
		for i := g.Offset; i <= g.End(); i++ {
			switch g.Side {
			case SideTop:
				frame[0][i+1] = ch
			case SideBottom:
				frame[size+1][i+1] = ch
			case SideLeft:
				frame[i+1][0] = ch
			case SideRight:
				frame[i+1][size+1] = ch
			}
		}
	}

	for _, sh := range s.Shapes {
		if sh.Removed {
			continue
		}
		if p, ok := s.Preview(); ok && s.drag.id == sh.ID {
			sh.Anchor = p
		}
		for _, c := range sh.Cells() {
			if c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size {
				frame[c.Row+1][c.Col+1] = byte(sh.Color.Char())
			}
		}
	}

	for _, row := range frame {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
