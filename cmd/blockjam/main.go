// blockjam is a sliding-block puzzle for the terminal.
//
// Usage:
//
//	blockjam play            - Play generated puzzles (or a level file)
//	blockjam serve           - Start SSH server for remote play
//	blockjam gen             - Generate a batch of levels
//	blockjam shapes          - Print the shape catalog
//	blockjam records         - Show recent and best solves
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible puzzles
//	--db <path>           - Set database path (default: ~/.blockjam/blockjam.db)
//	--config <path>       - Use a specific config file
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockjam/internal/config"
	"github.com/vovakirdan/blockjam/internal/games/blockjam/core"
	"github.com/vovakirdan/blockjam/internal/platform/tui"
	"github.com/vovakirdan/blockjam/internal/storage"
)

// Environment variables that override flag defaults.
const (
	envDB      = "BLOCKJAM_DB"
	envSSHAddr = "BLOCKJAM_SSH_ADDR"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockjam",
	Short: "Block Jam - slide colored blocks out through matching gates",
	Long: `Block Jam is a sliding-block puzzle for the terminal.

Drag each shape out of the board through a gate of its own color.
Shapes slide one cell at a time and never pass through each other.

Available commands:
  play     - Play generated puzzles or a level file
  serve    - Start SSH server for remote play
  gen      - Generate a batch of levels
  shapes   - Print the shape catalog
  records  - View recent and best solves

Examples:
  blockjam play
  blockjam play --seed 42 --difficulty hard
  blockjam play --level 01-corner
  blockjam serve --ssh :2222
  blockjam gen --count 20 --out ./levels`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyEnv,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to records database (env "+envDB+")")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(recordsCmd)
}

// applyEnv loads .env when present and lets the environment override
// flags the user did not set explicitly.
func applyEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	overrides := map[string]string{
		"db":  envDB,
		"ssh": envSSHAddr,
	}
	for name, env := range overrides {
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if v, ok := os.LookupEnv(env); ok && v != "" {
			if err := f.Value.Set(v); err != nil {
				return fmt.Errorf("invalid %s: %w", env, err)
			}
		}
	}
	return nil
}

// newLogger creates the CLI logger writing to stderr.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(strings.ToLower(flagLogLevel)); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// loadSettings resolves the config file, difficulty preset and theme.
func loadSettings() (core.GenParams, tui.Theme, error) {
	cfg, err := config.LoadBlockJam(flagConfig)
	if err != nil {
		return core.GenParams{}, tui.Theme{}, err
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return core.GenParams{}, tui.Theme{}, err
	}
	config.ApplyBlockJamPreset(&cfg, preset)

	params, err := cfg.ToGenParams()
	if err != nil {
		return core.GenParams{}, tui.Theme{}, err
	}

	theme, ok := tui.ThemeByName(cfg.Theme.Name)
	if !ok && cfg.Theme.Name != "" {
		return params, theme, fmt.Errorf("unknown theme %q (available: %s)",
			cfg.Theme.Name, strings.Join(tui.ThemeNames(), ", "))
	}
	return params, theme, nil
}
