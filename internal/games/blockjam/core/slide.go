package core

// IntendedAnchor converts a pointer cell into the anchor the player is
// aiming for: the pointer is taken as the middle of the shape and the
// result is clamped so the shape stays on the board.
func IntendedAnchor(m Matrix, pointer Anchor, gridSize int) Anchor {
	return Anchor{
		Row: clamp(pointer.Row-m.Rows()/2, 0, max(gridSize-m.Rows(), 0)),
		Col: clamp(pointer.Col-m.Cols()/2, 0, max(gridSize-m.Cols(), 0)),
	}
}

// SlideStep moves one cell from cur toward target through reach. The axis
// with the larger distance is tried first (rows on ties), then the other
// axis. If neither step is reachable cur is returned.
func SlideStep(reach *ReachableSet, cur, target Anchor) Anchor {
	dRow, dCol := target.Sub(cur)
	if dRow == 0 && dCol == 0 {
		return cur
	}

	rowStep := cur.Add(sign(dRow), 0)
	colStep := cur.Add(0, sign(dCol))

	first, second := colStep, rowStep
	firstOK, secondOK := dCol != 0, dRow != 0
	if abs(dRow) >= abs(dCol) {
		first, second = rowStep, colStep
		firstOK, secondOK = secondOK, firstOK
	}

	if firstOK && reach.Contains(first) {
		return first
	}
	if secondOK && reach.Contains(second) {
		return second
	}
	return cur
}
