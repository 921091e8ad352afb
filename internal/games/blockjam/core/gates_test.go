package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockjam/internal/games/blockjam/core"
)

func TestGatePriority(t *testing.T) {
	testCases := []struct {
		name       string
		dRow, dCol int
		want       map[core.Side]int
	}{
		{"no movement", 0, 0, map[core.Side]int{
			core.SideTop: 1, core.SideBottom: 1, core.SideLeft: 1, core.SideRight: 1,
		}},
		{"straight up", -2, 0, map[core.Side]int{
			core.SideTop: 3, core.SideBottom: 1, core.SideLeft: 1, core.SideRight: 1,
		}},
		{"mostly up, a bit right", -3, 1, map[core.Side]int{
			core.SideTop: 3, core.SideBottom: 1, core.SideLeft: 1, core.SideRight: 2,
		}},
		{"mostly left, a bit down", 1, -4, map[core.Side]int{
			core.SideTop: 1, core.SideBottom: 2, core.SideLeft: 3, core.SideRight: 1,
		}},
		{"diagonal", 2, 2, map[core.Side]int{
			core.SideTop: 1, core.SideBottom: 3, core.SideLeft: 1, core.SideRight: 3,
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for side, want := range tc.want {
				assert.Equal(t, want, core.GatePriority(side, tc.dRow, tc.dCol), "side %s", side)
			}
		})
	}
}

func TestDetectContact(t *testing.T) {
	gate := core.Gate{Side: core.SideTop, Offset: 2, Length: 2, Color: core.ColorRed}

	_, ok := core.DetectContact(unit(), core.A(1, 2), gate, 8)
	assert.False(t, ok, "not on the top row")

	_, ok = core.DetectContact(unit(), core.A(0, 5), gate, 8)
	assert.False(t, ok, "outside the gate span")

	c, ok := core.DetectContact(unit(), core.A(0, 3), gate, 8)
	require.True(t, ok)
	assert.Equal(t, core.SideTop, c.Side)
	assert.Equal(t, 1, c.EdgeLength)
	assert.Equal(t, 3, c.EdgeStart)

	_, ok = core.DetectContact(unit(), core.A(-1, 2), gate, 8)
	assert.True(t, ok, "overshoot still touches")

	right := core.Gate{Side: core.SideRight, Offset: 4, Length: 1, Color: core.ColorRed}
	square := core.Orientations(core.ShapeSquare)[0]
	c, ok = core.DetectContact(square, core.A(3, 6), right, 8)
	require.True(t, ok)
	assert.Equal(t, 2, c.EdgeLength)
	assert.Equal(t, 3, c.EdgeStart)
	assert.Equal(t, 4, c.EdgeEnd)
}

func TestCanShapePassThroughGate(t *testing.T) {
	gate := core.Gate{Side: core.SideTop, Offset: 2, Length: 2, Color: core.ColorGreen}

	testCases := []struct {
		name    string
		contact core.Contact
		color   core.Color
		pass    bool
	}{
		{"fits", core.Contact{Side: core.SideTop, EdgeLength: 2, EdgeStart: 2, EdgeEnd: 3}, core.ColorGreen, true},
		{"narrower", core.Contact{Side: core.SideTop, EdgeLength: 1, EdgeStart: 3, EdgeEnd: 3}, core.ColorGreen, true},
		{"sticks out left", core.Contact{Side: core.SideTop, EdgeLength: 2, EdgeStart: 1, EdgeEnd: 2}, core.ColorGreen, false},
		{"too long", core.Contact{Side: core.SideTop, EdgeLength: 3, EdgeStart: 2, EdgeEnd: 3}, core.ColorGreen, false},
		{"wrong color", core.Contact{Side: core.SideTop, EdgeLength: 2, EdgeStart: 2, EdgeEnd: 3}, core.ColorBlue, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.pass, core.CanShapePassThroughGate(tc.contact, gate, tc.color))
			// Pure: same inputs, same answer.
			assert.Equal(t, tc.pass, core.CanShapePassThroughGate(tc.contact, gate, tc.color))
		})
	}
}

func TestResolveGatesPrefersMovementDirection(t *testing.T) {
	gates := []core.Gate{
		{Side: core.SideTop, Offset: 0, Length: 1, Color: core.ColorBlue},
		{Side: core.SideLeft, Offset: 0, Length: 1, Color: core.ColorRed},
	}
	shape := core.Shape{Type: core.ShapeUnit, Color: core.ColorRed}

	// Moving left into the corner picks the left gate.
	res := core.ResolveGates(shape, core.A(0, 3), core.A(0, 0), gates, 8)
	require.True(t, res.Touching)
	assert.Equal(t, 1, res.Gate)
	assert.True(t, res.Pass)

	// Moving up into the corner picks the top gate, which has the wrong color.
	res = core.ResolveGates(shape, core.A(3, 0), core.A(0, 0), gates, 8)
	require.True(t, res.Touching)
	assert.Equal(t, 0, res.Gate)
	assert.False(t, res.Pass)
	assert.Equal(t, core.BlockColorMismatch, res.Reason)

	// No movement: every gate ranks 1 and the first one wins.
	res = core.ResolveGates(shape, core.A(0, 0), core.A(0, 0), gates, 8)
	assert.Equal(t, 0, res.Gate)

	res = core.ResolveGates(shape, core.A(4, 4), core.A(4, 5), gates, 8)
	assert.False(t, res.Touching)
	assert.Equal(t, -1, res.Gate)
}

func TestNotchedShapePassesNarrowGate(t *testing.T) {
	// X.
	// XX  top edge is a single cell
	layout := core.Layout{
		Size: 8,
		Shapes: []core.Shape{
			{Type: core.ShapeShortL, Orientation: 1, Color: core.ColorOrange, Anchor: core.A(2, 3)},
		},
		Gates: []core.Gate{{Side: core.SideTop, Offset: 3, Length: 1, Color: core.ColorOrange}},
	}
	s, err := core.NewState(layout)
	require.NoError(t, err)

	res := s.Commit(0, core.A(0, 3))
	assert.Equal(t, core.OutcomeExited, res.Outcome)
	assert.True(t, res.Solved)
}
