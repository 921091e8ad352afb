package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockjam/internal/core"
	"github.com/vovakirdan/blockjam/internal/games/blockjam"
	"github.com/vovakirdan/blockjam/internal/games/blockjam/levels"
	"github.com/vovakirdan/blockjam/internal/platform/tui"
	"github.com/vovakirdan/blockjam/internal/storage"
)

var (
	flagLevel   string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Block Jam",
	Long: `Start playing generated puzzles, or a single level.

Controls:
  Mouse           - Drag a shape; release to drop it
  Tab/Shift+Tab   - Select shape
  Space/Enter     - Grab or drop the selected shape
  Arrows/WASD     - Move the grabbed shape one cell
  Esc             - Cancel the drag
  R               - New puzzle (restart a level)
  ?               - Toggle help
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - 2-4 shapes in 2-3 colors
  normal - the configured ranges (3-7 shapes by default)
  hard   - 6-10 shapes in 4-6 colors

Examples:
  blockjam play
  blockjam play --seed 42
  blockjam play --difficulty easy
  blockjam play --level 01-corner
  blockjam play --level ./my-level.yaml
  blockjam play --config ./my-blockjam.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level file or built-in level id")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
}

func runPlay(_ *cobra.Command, _ []string) error {
	params, theme, err := loadSettings()
	if err != nil {
		return err
	}

	logger, closeLog, err := playLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	var level *levels.Level
	if flagLevel != "" {
		lvl, err := resolveLevel(flagLevel)
		if err != nil {
			return err
		}
		level = &lvl
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := tui.Options{
		Session: uuid.NewString(),
		Theme:   theme,
		Logger:  logger,
	}

	// Records are optional; the game runs without them.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: records disabled: %v\n", err)
	} else {
		defer store.Close()
		opts.Store = store
	}

	game := blockjam.New(blockjam.Options{
		Params: params,
		Level:  level,
		Logger: logger,
	})

	if err := tui.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}

// resolveLevel loads a level from disk, falling back to a built-in id.
func resolveLevel(ref string) (levels.Level, error) {
	lvl, err := levels.LoadFile(ref)
	if err == nil {
		return lvl, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return levels.Level{}, err
	}
	lvl, builtinErr := levels.Builtin().LoadByID(ref)
	if builtinErr != nil {
		return levels.Level{}, fmt.Errorf("level %q is neither a file nor a built-in level", ref)
	}
	return lvl, nil
}

// playLogger logs to --log-file when given. The terminal belongs to the game
// otherwise, so logs are discarded.
func playLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockjam",
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger, func() { f.Close() }, nil
}
