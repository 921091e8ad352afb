package levels_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockjam/internal/games/blockjam/core"
	"github.com/vovakirdan/blockjam/internal/games/blockjam/levels"
)

func TestBatchSeedsDeterministic(t *testing.T) {
	a := levels.BatchSeeds(7, 5)
	b := levels.BatchSeeds(7, 5)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, levels.BatchSeeds(8, 5))
	assert.Len(t, levels.BatchSeeds(7, 0), 0)
}

func TestGenerateBatchIndependentOfWorkers(t *testing.T) {
	gen := core.NewGenerator(core.DefaultGenParams(), nil)

	serial, err := levels.GenerateBatch(context.Background(), gen, 99, 6, 1)
	require.NoError(t, err)
	parallel, err := levels.GenerateBatch(context.Background(), gen, 99, 6, 4)
	require.NoError(t, err)

	require.Len(t, serial, 6)
	require.Len(t, parallel, 6)
	for i := range serial {
		assert.Equal(t, serial[i].Level.ID, parallel[i].Level.ID)
		assert.Equal(t, serial[i].Level.Layout, parallel[i].Level.Layout)
		assert.Equal(t, serial[i].Report, parallel[i].Report)
	}
	assert.Equal(t, "gen-001", serial[0].Level.ID)
}

func TestGenerateBatchLevelsAreValid(t *testing.T) {
	gen := core.NewGenerator(core.DefaultGenParams(), nil)

	batch, err := levels.GenerateBatch(context.Background(), gen, 1, 4, 2)
	require.NoError(t, err)
	for _, g := range batch {
		state, err := g.Level.NewState()
		require.NoError(t, err, g.Level.ID)
		assert.NoError(t, core.ValidateState(state), g.Level.ID)
		assert.NotEmpty(t, g.Level.Metadata["seed"])
	}
}

func TestGenerateBatchErrors(t *testing.T) {
	bad := core.DefaultGenParams()
	bad.GridSize = 0
	_, err := levels.GenerateBatch(context.Background(), core.NewGenerator(bad, nil), 1, 2, 1)
	assert.Error(t, err)

	_, err = levels.GenerateBatch(context.Background(), core.NewGenerator(core.DefaultGenParams(), nil), 1, -1, 1)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = levels.GenerateBatch(ctx, core.NewGenerator(core.DefaultGenParams(), nil), 1, 3, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
