package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockjam/internal/platform/tui"
	"github.com/vovakirdan/blockjam/internal/storage"
)

var (
	flagRecordsLimit int
	flagRecordsPlain bool
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show recent and best solves",
	Long: `Display solved puzzles from the records database.

In a terminal this opens an interactive table (tab switches between
recent and best). Use --plain or pipe the output for a text listing.

Examples:
  blockjam records
  blockjam records --limit 20 --plain`,
	Args: cobra.NoArgs,
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().IntVar(&flagRecordsLimit, "limit", 10, "Number of solves per list")
	recordsCmd.Flags().BoolVar(&flagRecordsPlain, "plain", false, "Print plain text instead of the interactive table")
}

func runRecords(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open records database: %w", err)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagRecordsPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunRecords(store, flagRecordsLimit, width, height)
	}

	out := cmd.OutOrStdout()
	recent, err := store.RecentSolves(flagRecordsLimit)
	if err != nil {
		return err
	}
	best, err := store.BestSolves(flagRecordsLimit)
	if err != nil {
		return err
	}

	if len(recent) == 0 {
		fmt.Fprintln(out, "No puzzles solved yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'blockjam play' to set the first record!")
		return nil
	}

	printSolves(out, "Recent solves", recent)
	fmt.Fprintln(out)
	printSolves(out, "Best solves", best)

	if stats, err := store.GetStats(); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Total: %d solves in %d sessions, best %d moves, avg %.1f moves\n",
			stats.Solves, stats.Sessions, stats.BestMoves, stats.AvgMoves)
	}
	return nil
}

func printSolves(out io.Writer, title string, solves []storage.Solve) {
	fmt.Fprintln(out, title)
	cols := tui.RecordColumns()
	for _, c := range cols {
		fmt.Fprintf(out, "  %-*s", c.Width, c.Title)
	}
	fmt.Fprintln(out)
	for _, row := range tui.RecordRows(solves) {
		for i, cell := range row {
			fmt.Fprintf(out, "  %-*s", cols[i].Width, cell)
		}
		fmt.Fprintln(out)
	}
}
