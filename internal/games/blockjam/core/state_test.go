package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockjam/internal/games/blockjam/core"
)

// twoShapeLevel has a red unit at (0,0), a blue square at (0,2) and
// gates for both colors.
func twoShapeLevel(t *testing.T) *core.State {
	t.Helper()
	s, err := core.NewState(core.Layout{
		Size: 8,
		Shapes: []core.Shape{
			{Type: core.ShapeUnit, Color: core.ColorRed, Anchor: core.A(0, 0)},
			{Type: core.ShapeSquare, Color: core.ColorBlue, Anchor: core.A(0, 2)},
		},
		Gates: []core.Gate{
			{Side: core.SideLeft, Offset: 7, Length: 1, Color: core.ColorRed},
			{Side: core.SideBottom, Offset: 2, Length: 2, Color: core.ColorBlue},
		},
	})
	require.NoError(t, err)
	return s
}

func TestDragStartErrors(t *testing.T) {
	s := twoShapeLevel(t)

	assert.ErrorIs(t, s.DragStart(9, core.A(0, 0)), core.ErrUnknownShape)
	assert.ErrorIs(t, s.DragStart(-1, core.A(0, 0)), core.ErrUnknownShape)

	require.NoError(t, s.DragStart(0, core.A(0, 0)))
	assert.ErrorIs(t, s.DragStart(1, core.A(0, 2)), core.ErrDragInProgress)
	s.CancelDrag()

	s.Commit(1, core.A(6, 2))
	sh, _ := s.Shape(1)
	require.True(t, sh.Removed)
	assert.ErrorIs(t, s.DragStart(1, core.A(6, 2)), core.ErrShapeRemoved)
}

func TestDragMoveSlidesOneStep(t *testing.T) {
	s := twoShapeLevel(t)
	require.NoError(t, s.DragStart(0, core.A(0, 0)))
	assert.Equal(t, core.NoShape, s.Board.Owner(core.A(0, 0)), "dragged shape is lifted")

	p, ok := s.DragMove(core.A(4, 0))
	require.True(t, ok)
	assert.Equal(t, core.A(1, 0), p)

	p, _ = s.DragMove(core.A(4, 0))
	assert.Equal(t, core.A(2, 0), p)

	for i := 0; i < 5; i++ {
		p, _ = s.DragMove(core.A(4, 0))
	}
	assert.Equal(t, core.A(4, 0), p, "reaches the target and stays")

	res := s.DragEnd(core.A(4, 0))
	assert.Equal(t, core.OutcomeMoved, res.Outcome)
	assert.Equal(t, core.A(4, 0), res.Anchor)
	assert.Equal(t, 1, s.Moves)

	_, dragging := s.Dragging()
	assert.False(t, dragging)
	assert.Equal(t, 0, s.Board.Owner(core.A(4, 0)))
	assert.NoError(t, core.ValidateState(s))
}

func TestDragMoveBlockedByShape(t *testing.T) {
	s := twoShapeLevel(t)
	require.NoError(t, s.DragStart(0, core.A(0, 0)))

	p, _ := s.DragMove(core.A(0, 6))
	assert.Equal(t, core.A(0, 1), p)

	// The square at (0,2) blocks the row and there is no vertical delta.
	p, _ = s.DragMove(core.A(0, 6))
	assert.Equal(t, core.A(0, 1), p)
	assert.True(t, s.Reachable().Contains(p))

	// Aiming below the square opens the secondary axis.
	p, _ = s.DragMove(core.A(2, 6))
	assert.Equal(t, core.A(1, 1), p)
}

func TestDragPreviewStaysReachable(t *testing.T) {
	s := twoShapeLevel(t)
	require.NoError(t, s.DragStart(1, core.A(0, 2)))

	pointers := []core.Anchor{
		core.A(7, 7), core.A(0, 0), core.A(3, 1), core.A(7, 0), core.A(-3, 9), core.A(5, 5),
	}
	for _, ptr := range pointers {
		for i := 0; i < 10; i++ {
			p, _ := s.DragMove(ptr)
			require.True(t, s.Reachable().Contains(p), "preview %v left the reachable set", p)
		}
	}
}

func TestDragLifecycleResets(t *testing.T) {
	t.Run("cancel", func(t *testing.T) {
		s := twoShapeLevel(t)
		require.NoError(t, s.DragStart(1, core.A(0, 2)))
		s.DragMove(core.A(5, 5))
		s.CancelDrag()

		_, dragging := s.Dragging()
		assert.False(t, dragging)
		assert.Nil(t, s.Reachable())
		assert.Equal(t, 1, s.Board.Owner(core.A(1, 3)))
		assert.Equal(t, 0, s.Moves)
		assert.NoError(t, core.ValidateState(s))
	})

	t.Run("exit", func(t *testing.T) {
		s := twoShapeLevel(t)
		require.NoError(t, s.DragStart(1, core.A(0, 2)))
		var res core.MoveResult
		// The pointer is the middle of the square, so (7,3) aims at (6,2).
		for i := 0; i < 8; i++ {
			s.DragMove(core.A(7, 3))
		}
		res = s.DragEnd(core.A(7, 3))
		assert.Equal(t, core.OutcomeExited, res.Outcome)
		assert.False(t, res.Solved)

		_, dragging := s.Dragging()
		assert.False(t, dragging)
		_, ok := s.Preview()
		assert.False(t, ok)
	})

	t.Run("end without drag", func(t *testing.T) {
		s := twoShapeLevel(t)
		res := s.DragEnd(core.A(3, 3))
		assert.Equal(t, core.OutcomeNone, res.Outcome)
	})
}

func TestCommitRevertsIllegalDestination(t *testing.T) {
	s := twoShapeLevel(t)

	res := s.Commit(0, core.A(0, 2))
	assert.Equal(t, core.OutcomeReverted, res.Outcome)
	assert.Equal(t, core.A(0, 0), res.Anchor)
	assert.Equal(t, 0, s.Moves)

	res = s.Commit(0, core.A(-1, 0))
	assert.Equal(t, core.OutcomeReverted, res.Outcome, "no gate on that edge")
	assert.NoError(t, core.ValidateState(s))
}

func TestCommitIgnoredDuringOtherDrag(t *testing.T) {
	s := twoShapeLevel(t)
	require.NoError(t, s.DragStart(0, core.A(0, 0)))
	s.DragMove(core.A(4, 0))

	res := s.Commit(1, core.A(6, 2))
	assert.Equal(t, core.OutcomeNone, res.Outcome)
	sh, _ := s.Shape(1)
	assert.False(t, sh.Removed)
	assert.Equal(t, core.A(0, 2), sh.Anchor)
	assert.Equal(t, 1, s.Board.Owner(core.A(0, 2)))
	assert.Equal(t, 0, s.Moves)

	id, dragging := s.Dragging()
	require.True(t, dragging)
	assert.Equal(t, 0, id)

	res = s.DragEnd(core.A(4, 0))
	assert.Equal(t, core.OutcomeMoved, res.Outcome)
	assert.NoError(t, core.ValidateState(s))
}

func TestWinSignalledOnce(t *testing.T) {
	s := twoShapeLevel(t)

	res := s.Commit(1, core.A(6, 2))
	require.Equal(t, core.OutcomeExited, res.Outcome)
	assert.False(t, res.Solved)

	res = s.Commit(0, core.A(7, 0))
	require.Equal(t, core.OutcomeExited, res.Outcome)
	assert.True(t, res.Solved)
	assert.True(t, s.IsSolved())
	assert.False(t, s.CheckWin())

	// Tombstones keep their ids.
	require.Len(t, s.Shapes, 2)
	for i, sh := range s.Shapes {
		assert.Equal(t, i, sh.ID)
		assert.True(t, sh.Removed)
	}
	assert.Empty(t, s.ActiveShapes())

	res = s.Commit(0, core.A(3, 3))
	assert.Equal(t, core.OutcomeNone, res.Outcome)
}

func TestResetLevelRestoresLayout(t *testing.T) {
	s := twoShapeLevel(t)
	s.Commit(1, core.A(6, 2))
	s.Commit(0, core.A(3, 3))

	_, err := s.ResetLevel(nil)
	require.NoError(t, err)

	assert.Equal(t, 0, s.Moves)
	assert.Len(t, s.ActiveShapes(), 2)
	assert.Equal(t, 0, s.Board.Owner(core.A(0, 0)))
	assert.Equal(t, 1, s.Board.Owner(core.A(1, 3)))
}

func TestNewStateRejectsBadLayouts(t *testing.T) {
	testCases := []struct {
		name   string
		layout core.Layout
		code   string
	}{
		{"overlap", core.Layout{Size: 4, Shapes: []core.Shape{
			{Type: core.ShapeSquare, Anchor: core.A(0, 0)},
			{Type: core.ShapeUnit, Anchor: core.A(1, 1)},
		}}, "OVERLAP"},
		{"off board", core.Layout{Size: 4, Shapes: []core.Shape{
			{Type: core.ShapeTromino, Anchor: core.A(0, 2)},
		}}, "OUT_OF_BOUNDS"},
		{"bad orientation", core.Layout{Size: 4, Shapes: []core.Shape{
			{Type: core.ShapeSquare, Orientation: 3},
		}}, "OUT_OF_BOUNDS"},
		{"gate overlap", core.Layout{Size: 4, Gates: []core.Gate{
			{Side: core.SideTop, Offset: 0, Length: 2},
			{Side: core.SideTop, Offset: 1, Length: 2},
		}}, "GATE_OVERLAP"},
		{"gate too long", core.Layout{Size: 4, Gates: []core.Gate{
			{Side: core.SideRight, Offset: 2, Length: 3},
		}}, "GATE_BOUNDS"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewState(tc.layout)
			var verr core.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tc.code, verr.Code)
		})
	}
}

func TestShapeAtFollowsPreview(t *testing.T) {
	s := twoShapeLevel(t)
	assert.Equal(t, 1, s.ShapeAt(core.A(1, 2)))
	assert.Equal(t, core.NoShape, s.ShapeAt(core.A(5, 5)))

	require.NoError(t, s.DragStart(0, core.A(0, 0)))
	s.DragMove(core.A(1, 0))
	assert.Equal(t, 0, s.ShapeAt(core.A(1, 0)))
	assert.Equal(t, core.NoShape, s.ShapeAt(core.A(0, 0)))
}
