package core

import (
	"errors"
	"fmt"
)

var (
	ErrDragInProgress = errors.New("a drag is already in progress")
	ErrUnknownShape   = errors.New("unknown shape")
	ErrShapeRemoved   = errors.New("shape already removed")
)

// Outcome is what a committed move did to the shape.
type Outcome uint8

const (
	OutcomeNone     Outcome = iota // Nothing was committed
	OutcomeMoved                   // Shape relocated on the board
	OutcomeExited                  // Shape passed through a gate
	OutcomeReverted                // Shape returned to its origin
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeExited:
		return "exited"
	case OutcomeReverted:
		return "reverted"
	default:
		return "none"
	}
}

// MoveResult reports the effect of committing a move.
type MoveResult struct {
	Outcome Outcome
	ShapeID int
	Anchor  Anchor     // Where the shape ended up (last anchor if exited)
	Gate    GateResult // Resolver result for the destination
	Solved  bool       // True only on the call that first signals solved
}

// dragState is the transient state of one drag gesture.
type dragState struct {
	id      int
	origin  Anchor
	pointer Anchor
	reach   *ReachableSet
	preview Anchor
}

// State is the complete state of one puzzle. It is owned by a single
// caller and is not safe for concurrent use.
type State struct {
	Board  *Board
	Shapes []Shape // Arena indexed by shape id; removed shapes stay
	gates  []Gate

	Seed  uint64 // Seed the level was generated from, informational
	Moves int    // Committed moves that changed the board

	initial Layout     // Layout the state was built from
	gen     *Generator // Set for generated levels

	drag           *dragState
	solved         bool
	solvedSignaled bool
}

// NewState builds a state from a layout. Shape ids are reassigned to
// their index. Every shape must lie fully on the board without overlap and
// every gate must fit its side without overlapping another.
func NewState(l Layout) (*State, error) {
	if l.Size < 1 || l.Size > MaxBoardSize {
		return nil, ValidationError{Code: "OUT_OF_BOUNDS", Message: fmt.Sprintf("board size %d must be in [1, %d]", l.Size, MaxBoardSize)}
	}
	s := &State{
		Board:   NewBoard(l.Size),
		Shapes:  make([]Shape, len(l.Shapes)),
		gates:   append([]Gate(nil), l.Gates...),
		initial: l.clone(),
	}

	for i, sh := range l.Shapes {
		orients := Orientations(sh.Type)
		if sh.Orientation < 0 || sh.Orientation >= len(orients) {
			return nil, ValidationError{
				Code:    "OUT_OF_BOUNDS",
				Message: fmt.Sprintf("shape %d: orientation %d out of range for %s", i, sh.Orientation, sh.Type),
			}
		}
		sh.ID = i
		s.Shapes[i] = sh
		if sh.Removed {
			continue
		}
		m := sh.Matrix()
		if !s.Board.CanPlaceStrict(m, sh.Anchor) {
			code := "OVERLAP"
			if a := sh.Anchor; a.Row < 0 || a.Col < 0 || a.Row+m.Rows() > l.Size || a.Col+m.Cols() > l.Size {
				code = "OUT_OF_BOUNDS"
			}
			return nil, ValidationError{
				Code:    code,
				Message: fmt.Sprintf("shape %d (%s) cannot be placed at %s", i, sh.Type, sh.Anchor),
			}
		}
		s.Board.Place(m, sh.Anchor, i)
	}

	if err := validateGates(s.gates, l.Size); err != nil {
		return nil, err
	}

	s.solved = s.allRemoved()
	return s, nil
}

// Layout returns the current layout, including removed shapes.
func (s *State) Layout() Layout {
	l := Layout{Size: s.Size(), Shapes: s.Shapes, Gates: s.gates}
	return l.clone()
}

// ResetLevel starts over. Generated levels are replaced by a new level
// drawn from rng with the same parameters; other levels are restored to
// their initial layout.
func (s *State) ResetLevel(rng Rand) (GenReport, error) {
	if s.gen != nil && rng != nil {
		next, report, err := s.gen.NewGame(rng)
		if err != nil {
			return report, err
		}
		*s = *next
		return report, nil
	}

	next, err := NewState(s.initial)
	if err != nil {
		return GenReport{}, err
	}
	next.Seed = s.Seed
	*s = *next
	return GenReport{}, nil
}

// Size returns the board size.
func (s *State) Size() int { return s.Board.Size() }

// Gates returns a copy of the level's gates.
func (s *State) Gates() []Gate {
	return append([]Gate(nil), s.gates...)
}

// Shape returns the shape with the given id.
func (s *State) Shape(id int) (Shape, bool) {
	if id < 0 || id >= len(s.Shapes) {
		return Shape{}, false
	}
	return s.Shapes[id], true
}

// ActiveShapes returns the shapes that have not exited yet.
func (s *State) ActiveShapes() []Shape {
	var out []Shape
	for _, sh := range s.Shapes {
		if !sh.Removed {
			out = append(out, sh)
		}
	}
	return out
}

// Occupancy returns the owner id of every cell, NoShape for empty cells.
func (s *State) Occupancy() [][]int {
	return s.Board.Snapshot()
}

// ShapeAt returns the id of the active shape covering p, or NoShape.
// The dragged shape is reported at its preview position.
func (s *State) ShapeAt(p Anchor) int {
	if id := s.Board.Owner(p); id != NoShape {
		return id
	}
	if s.drag != nil {
		sh := s.Shapes[s.drag.id]
		sh.Anchor = s.drag.preview
		for _, c := range sh.Cells() {
			if c == p {
				return sh.ID
			}
		}
	}
	return NoShape
}

// Dragging returns the id of the shape being dragged.
func (s *State) Dragging() (int, bool) {
	if s.drag == nil {
		return NoShape, false
	}
	return s.drag.id, true
}

// Preview returns the current preview anchor of the dragged shape.
func (s *State) Preview() (Anchor, bool) {
	if s.drag == nil {
		return Anchor{}, false
	}
	return s.drag.preview, true
}

// Reachable returns the reachable set of the current drag, or nil.
func (s *State) Reachable() *ReachableSet {
	if s.drag == nil {
		return nil
	}
	return s.drag.reach
}

// PreviewGate resolves gates for the current preview position so a host
// can highlight the gate the shape would hit.
func (s *State) PreviewGate() GateResult {
	if s.drag == nil {
		return GateResult{Gate: -1}
	}
	return ResolveGates(s.Shapes[s.drag.id], s.drag.origin, s.drag.preview, s.gates, s.Size())
}

// IsSolved returns true once every shape has exited.
func (s *State) IsSolved() bool { return s.solved }

// CheckWin evaluates the win condition. It returns true only on the first
// call that observes the solved state.
func (s *State) CheckWin() bool {
	if !s.solved && s.allRemoved() {
		s.solved = true
	}
	if s.solved && !s.solvedSignaled {
		s.solvedSignaled = true
		return true
	}
	return false
}

func (s *State) allRemoved() bool {
	for _, sh := range s.Shapes {
		if !sh.Removed {
			return false
		}
	}
	return true
}

// DragStart lifts shape id off the board and computes where it can go.
func (s *State) DragStart(id int, pointer Anchor) error {
	if s.drag != nil {
		return ErrDragInProgress
	}
	sh, ok := s.Shape(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownShape, id)
	}
	if sh.Removed {
		return fmt.Errorf("%w: %d", ErrShapeRemoved, id)
	}

	m := sh.Matrix()
	s.Board.Clear(m, sh.Anchor, id)
	s.drag = &dragState{
		id:      id,
		origin:  sh.Anchor,
		pointer: pointer,
		reach:   ComputeReachable(s.Board, m, id, sh.Anchor),
		preview: sh.Anchor,
	}
	return nil
}

// DragMove updates the preview from a pointer sample. The preview takes
// at most one step toward the anchor under the pointer and never leaves
// the reachable set.
func (s *State) DragMove(pointer Anchor) (Anchor, bool) {
	if s.drag == nil {
		return Anchor{}, false
	}
	d := s.drag
	d.pointer = pointer
	target := IntendedAnchor(s.Shapes[d.id].Matrix(), pointer, s.Size())
	d.preview = SlideStep(d.reach, d.preview, target)
	return d.preview, true
}

// DragEnd applies a last pointer sample and commits the preview anchor.
// Drag state is reset whatever the outcome.
func (s *State) DragEnd(pointer Anchor) MoveResult {
	if s.drag == nil {
		return MoveResult{Outcome: OutcomeNone, ShapeID: NoShape, Gate: GateResult{Gate: -1}}
	}
	s.DragMove(pointer)
	return s.Commit(s.drag.id, s.drag.preview)
}

// CancelDrag puts the dragged shape back at its origin.
func (s *State) CancelDrag() {
	if s.drag == nil {
		return
	}
	sh := s.Shapes[s.drag.id]
	s.Board.Place(sh.Matrix(), s.drag.origin, sh.ID)
	s.drag = nil
}

// Commit moves shape id to dest. If dest touches a gate the shape can pass,
// the shape exits; otherwise it is placed at dest when legal and returned
// to its origin when not. When the shape is being dragged its origin is the
// pre-drag anchor and the drag ends here. While another shape is being
// dragged nothing moves.
func (s *State) Commit(id int, dest Anchor) MoveResult {
	sh, ok := s.Shape(id)
	if !ok || sh.Removed || (s.drag != nil && s.drag.id != id) {
		return MoveResult{Outcome: OutcomeNone, ShapeID: id, Gate: GateResult{Gate: -1}}
	}

	m := sh.Matrix()
	origin := sh.Anchor
	if s.drag != nil && s.drag.id == id {
		origin = s.drag.origin
		defer func() { s.drag = nil }()
	} else {
		s.Board.Clear(m, origin, id)
	}

	res := MoveResult{ShapeID: id, Anchor: origin}
	res.Gate = ResolveGates(sh, origin, dest, s.gates, s.Size())

	switch {
	case res.Gate.Pass:
		s.Board.ClearShape(id)
		s.Shapes[id].Removed = true
		s.Shapes[id].Anchor = dest
		s.Moves++
		res.Outcome = OutcomeExited
		res.Anchor = dest
		res.Solved = s.CheckWin()

	case s.fitsOnBoard(m, dest) && s.Board.CanPlace(m, dest, id):
		s.Board.Place(m, dest, id)
		s.Shapes[id].Anchor = dest
		if dest != origin {
			s.Moves++
		}
		res.Outcome = OutcomeMoved
		res.Anchor = dest

	default:
		s.Board.Place(m, origin, id)
		res.Outcome = OutcomeReverted
	}
	return res
}

// fitsOnBoard reports whether every filled cell of m at a is on the board.
// Overshoot is only legal in transit through a gate.
func (s *State) fitsOnBoard(m Matrix, a Anchor) bool {
	for _, off := range m.Offsets() {
		if !s.Board.InBounds(a.Add(off.Row, off.Col)) {
			return false
		}
	}
	return true
}
