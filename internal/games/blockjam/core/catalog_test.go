package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockjam/internal/games/blockjam/core"
)

func TestCatalogOrientations(t *testing.T) {
	testCases := []struct {
		shape        core.ShapeType
		orientations int
		cells        int
	}{
		{core.ShapeUnit, 1, 1},
		{core.ShapeDomino, 2, 2},
		{core.ShapeTromino, 2, 3},
		{core.ShapeSquare, 1, 4},
		{core.ShapeShortL, 4, 3},
		{core.ShapeLongL, 8, 4},
		{core.ShapeTee, 4, 4},
	}

	require.Len(t, core.ListShapeTypes(), len(testCases))

	for _, tc := range testCases {
		t.Run(tc.shape.String(), func(t *testing.T) {
			orients := core.Orientations(tc.shape)
			require.Len(t, orients, tc.orientations)

			for i, m := range orients {
				assert.Equal(t, tc.cells, m.FilledCount(), "orientation %d", i)
				assert.LessOrEqual(t, m.Rows(), 3)
				assert.LessOrEqual(t, m.Cols(), 3)

				w, h := m.BoundingBox()
				assert.Equal(t, m.Cols(), w, "orientation %d is not trimmed", i)
				assert.Equal(t, m.Rows(), h, "orientation %d is not trimmed", i)

				for j := 0; j < i; j++ {
					assert.False(t, m.Equal(orients[j]), "orientations %d and %d are equal", j, i)
				}
			}
		})
	}
}

func TestParseShapeType(t *testing.T) {
	for _, st := range core.ListShapeTypes() {
		got, ok := core.ParseShapeType(st.String())
		require.True(t, ok, st.String())
		assert.Equal(t, st, got)
	}

	_, ok := core.ParseShapeType("pentomino")
	assert.False(t, ok)
}

func TestParseMatrix(t *testing.T) {
	m, err := core.ParseMatrix("X./XX")
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.True(t, m.Filled(0, 0))
	assert.False(t, m.Filled(0, 1))
	assert.False(t, m.Filled(5, 5))
	assert.Equal(t, "X./XX", m.String())

	_, err = core.ParseMatrix("../..")
	assert.Error(t, err)
}

func TestMatrixEdges(t *testing.T) {
	m, err := core.ParseMatrix("X./XX")
	require.NoError(t, err)

	assert.Equal(t, 1, m.EdgeLength(core.SideTop))
	assert.Equal(t, 2, m.EdgeLength(core.SideBottom))
	assert.Equal(t, 2, m.EdgeLength(core.SideLeft))
	assert.Equal(t, 1, m.EdgeLength(core.SideRight))

	start, end := m.EdgeSpan(core.SideTop, core.A(0, 3))
	assert.Equal(t, 3, start)
	assert.Equal(t, 3, end)

	start, end = m.EdgeSpan(core.SideBottom, core.A(0, 3))
	assert.Equal(t, 3, start)
	assert.Equal(t, 4, end)

	start, end = m.EdgeSpan(core.SideRight, core.A(5, 0))
	assert.Equal(t, 6, start)
	assert.Equal(t, 6, end)
}
