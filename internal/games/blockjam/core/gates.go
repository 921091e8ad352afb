package core

// Contact describes a shape touching a gate's side of the board.
type Contact struct {
	Side       Side
	EdgeLength int // Filled cells on the shape edge facing the side
	EdgeStart  int // Absolute span of that edge along the side
	EdgeEnd    int
}

// DetectContact reports whether the shape with matrix m anchored at a is
// touching gate g. A shape touches a side when its bounding box reaches (or
// overshoots) the outermost row or column on that side and overlaps the
// gate's span along it.
func DetectContact(m Matrix, a Anchor, g Gate, gridSize int) (Contact, bool) {
	w, h := m.BoundingBox()
	if w == 0 {
		return Contact{}, false
	}
	startRow, endRow := a.Row, a.Row+h-1
	startCol, endCol := a.Col, a.Col+w-1

	var atEdge bool
	var lo, hi int
	switch g.Side {
	case SideTop:
		atEdge, lo, hi = startRow <= 0, startCol, endCol
	case SideBottom:
		atEdge, lo, hi = endRow >= gridSize-1, startCol, endCol
	case SideLeft:
		atEdge, lo, hi = startCol <= 0, startRow, endRow
	case SideRight:
		atEdge, lo, hi = endCol >= gridSize-1, startRow, endRow
	}
	if !atEdge || hi < g.Offset || lo > g.End() {
		return Contact{}, false
	}

	start, end := m.EdgeSpan(g.Side, a)
	return Contact{
		Side:       g.Side,
		EdgeLength: m.EdgeLength(g.Side),
		EdgeStart:  start,
		EdgeEnd:    end,
	}, true
}

// GatePriority ranks a touched side by the movement that led there.
// The side in the primary direction of motion gets 3, the side in the
// secondary direction gets 2 and every other side gets 1. Without motion
// all sides get 1. Equal row and column motion makes both sides primary.
func GatePriority(side Side, dRow, dCol int) int {
	if dRow == 0 && dCol == 0 {
		return 1
	}

	var vertical, horizontal Side
	vMoving, hMoving := dRow != 0, dCol != 0
	if dRow < 0 {
		vertical = SideTop
	} else {
		vertical = SideBottom
	}
	if dCol < 0 {
		horizontal = SideLeft
	} else {
		horizontal = SideRight
	}

	ar, ac := abs(dRow), abs(dCol)
	switch {
	case vMoving && side == vertical:
		if ar >= ac {
			return 3
		}
		return 2
	case hMoving && side == horizontal:
		if ac >= ar {
			return 3
		}
		return 2
	}
	return 1
}

// CanShapePassThroughGate applies the pass-through rule: the shape's
// facing edge must lie within the gate span, be no longer than the gate
// and the colors must match.
func CanShapePassThroughGate(c Contact, g Gate, color Color) bool {
	return blockReason(c, g, color) == PassOK
}

// BlockReason explains why a touching shape could not pass a gate.
type BlockReason uint8

const (
	PassOK BlockReason = iota
	BlockEdgeOutside
	BlockEdgeTooLong
	BlockColorMismatch
)

// String returns a short description of the reason.
func (r BlockReason) String() string {
	switch r {
	case PassOK:
		return "ok"
	case BlockEdgeOutside:
		return "edge outside gate"
	case BlockEdgeTooLong:
		return "edge longer than gate"
	case BlockColorMismatch:
		return "color mismatch"
	default:
		return "unknown"
	}
}

func blockReason(c Contact, g Gate, color Color) BlockReason {
	switch {
	case c.EdgeStart < g.Offset || c.EdgeEnd > g.End():
		return BlockEdgeOutside
	case c.EdgeLength > g.Length:
		return BlockEdgeTooLong
	case color != g.Color:
		return BlockColorMismatch
	}
	return PassOK
}

// GateResult is the outcome of resolving gates for a candidate move.
type GateResult struct {
	Touching bool        // At least one gate was touched
	Gate     int         // Index of the chosen gate, -1 if none
	Contact  Contact     // Contact with the chosen gate
	Pass     bool        // The shape passes the chosen gate
	Reason   BlockReason // Why the chosen gate blocked the shape
}

// ResolveGates decides which gate, if any, governs a move of shape from
// anchor from to anchor to. Among touched gates the one with the highest
// movement priority wins; ties go to the first gate in order.
func ResolveGates(shape Shape, from, to Anchor, gates []Gate, gridSize int) GateResult {
	res := GateResult{Gate: -1}
	m := shape.Matrix()
	dRow, dCol := to.Sub(from)

	best := 0
	for i, g := range gates {
		c, ok := DetectContact(m, to, g, gridSize)
		if !ok {
			continue
		}
		if p := GatePriority(g.Side, dRow, dCol); p > best {
			best = p
			res.Touching = true
			res.Gate = i
			res.Contact = c
		}
	}
	if !res.Touching {
		return res
	}

	res.Reason = blockReason(res.Contact, gates[res.Gate], shape.Color)
	res.Pass = res.Reason == PassOK
	return res
}
