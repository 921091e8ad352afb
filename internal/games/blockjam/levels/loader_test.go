package levels_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockjam/internal/games/blockjam/core"
	"github.com/vovakirdan/blockjam/internal/games/blockjam/levels"
)

// getTestdataPath returns path to testdata/levels.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	return filepath.Join(dir, "..", "testdata", "levels")
}

func TestLoaderLoadAll(t *testing.T) {
	lvls, err := levels.NewLoader(getTestdataPath()).LoadAll()
	require.NoError(t, err)

	// broken.yaml is skipped, README.txt is ignored.
	ids := make([]string, len(lvls))
	for i, l := range lvls {
		ids[i] = l.ID
	}
	assert.Equal(t, []string{"lvl01", "lvl02"}, ids)
}

func TestLoaderLoadByID(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvl, err := loader.LoadByID("lvl02")
	require.NoError(t, err)

	assert.Equal(t, "Two ways out", lvl.Name)
	assert.Equal(t, 6, lvl.Layout.Size)
	require.Len(t, lvl.Layout.Shapes, 3)
	require.Len(t, lvl.Layout.Gates, 2)
	assert.Equal(t, "tests", lvl.Metadata["author"])

	sq := lvl.Layout.Shapes[0]
	assert.Equal(t, core.ShapeSquare, sq.Type)
	assert.Equal(t, core.ColorGreen, sq.Color)
	assert.Equal(t, core.A(2, 2), sq.Anchor)

	g := lvl.Layout.Gates[1]
	assert.Equal(t, core.SideLeft, g.Side)
	assert.Equal(t, 4, g.Offset)
	assert.Equal(t, core.ColorPink, g.Color)

	s, err := lvl.NewState()
	require.NoError(t, err)
	assert.NoError(t, core.ValidateState(s))

	_, err = loader.LoadByID("missing")
	assert.Error(t, err)
}

func TestLoadFileRejectsUnknownColor(t *testing.T) {
	_, err := levels.LoadFile(filepath.Join(getTestdataPath(), "broken.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "magenta")
}

func TestBuiltinLevelsAreValid(t *testing.T) {
	lvls, err := levels.Builtin().LoadAll()
	require.NoError(t, err)
	require.NotEmpty(t, lvls)

	for _, lvl := range lvls {
		s, err := lvl.NewState()
		require.NoError(t, err, lvl.ID)
		assert.NoError(t, core.ValidateState(s), lvl.ID)

		stats := core.ComputeLevelStats(s)
		assert.Empty(t, stats.GatelessColors, "%s has colors without a gate", lvl.ID)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	gen := core.NewGenerator(core.DefaultGenParams(), nil)
	s, _, err := gen.NewGame(core.NewRNG(99))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "gen-99.yaml")
	require.NoError(t, levels.Save(path, levels.FromState("gen-99", "Generated", s)))

	lvl, err := levels.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "gen-99", lvl.ID)
	assert.Equal(t, "99", lvl.Metadata["seed"])

	loaded, err := lvl.NewState()
	require.NoError(t, err)
	assert.Equal(t, s.Gates(), loaded.Gates())
	assert.Equal(t, s.Shapes, loaded.Shapes)
	assert.Equal(t, core.RenderASCII(s), core.RenderASCII(loaded))
}

func TestSaveSkipsRemovedShapes(t *testing.T) {
	lvl, err := levels.Builtin().LoadByID("01-corner")
	require.NoError(t, err)
	s, err := lvl.NewState()
	require.NoError(t, err)

	res := s.Commit(0, core.A(-1, 0))
	require.Equal(t, core.OutcomeExited, res.Outcome)

	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, levels.Save(path, levels.FromState("partial", "Partial", s)))

	again, err := levels.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, again.Layout.Shapes, 1)
	assert.Equal(t, core.ShapeDomino, again.Layout.Shapes[0].Type)
}
