package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second (default 30)
	Seed     int64 // Level seed; 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState reports the status of the current puzzle to the platform.
type GameState struct {
	LevelID string        // Level file id, empty for generated puzzles
	Seed    uint64        // Seed the puzzle was generated from
	Shapes  int           // Shapes in the puzzle
	Gates   int           // Gates in the puzzle
	Moves   int           // Committed moves
	Elapsed time.Duration // Play time so far
	Solved  bool          // Every shape has exited
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
	// JustSolved is true only on the tick the puzzle became solved.
	JustSolved bool
}
