package levels

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/blockjam/internal/games/blockjam/core"
)

// Generated is one level produced by GenerateBatch.
type Generated struct {
	Level  Level
	Report core.GenReport
}

// BatchSeeds derives count level seeds from a base seed. The same base
// always yields the same seeds.
func BatchSeeds(base uint64, count int) []uint64 {
	rng := core.NewRNG(base)
	seeds := make([]uint64, count)
	for i := range seeds {
		seeds[i] = rng.Next()
	}
	return seeds
}

// GenerateBatch generates count levels on at most workers goroutines.
// Level i is generated from BatchSeeds(base, count)[i] and named gen-NNN,
// so output does not depend on scheduling.
func GenerateBatch(ctx context.Context, gen *core.Generator, base uint64, count, workers int) ([]Generated, error) {
	if count < 0 {
		return nil, fmt.Errorf("levels: negative batch size %d", count)
	}
	if err := gen.Params.Validate(); err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}

	seeds := BatchSeeds(base, count)
	out := make([]Generated, count)

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			state, report, err := gen.NewGame(core.NewRNG(seed))
			if err != nil {
				return fmt.Errorf("levels: seed %d: %w", seed, err)
			}
			id := fmt.Sprintf("gen-%03d", i+1)
			out[i] = Generated{
				Level:  FromState(id, fmt.Sprintf("Generated %d", i+1), state),
				Report: report,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
