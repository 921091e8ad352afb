package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockjam/internal/games/blockjam/core"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Print the shape catalog",
	Args:  cobra.NoArgs,
	Run:   runShapes,
}

func runShapes(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Shape catalog:")
	fmt.Fprintln(out)

	for _, t := range core.ListShapeTypes() {
		tmpl := core.Template(t)
		fmt.Fprintf(out, "  %-8s %-10s %d orientation(s), %d cells\n",
			t, tmpl.Name, len(tmpl.Orientations), tmpl.Orientations[0].FilledCount())
		fmt.Fprint(out, drawOrientations(tmpl.Orientations))
		fmt.Fprintln(out)
	}
}

// drawOrientations lays the orientation matrices out side by side.
func drawOrientations(ms []core.Matrix) string {
	height := 0
	for _, m := range ms {
		height = max(height, m.Rows())
	}

	var b strings.Builder
	for r := 0; r < height; r++ {
		b.WriteString("    ")
		for _, m := range ms {
			for c := 0; c < m.Cols(); c++ {
				switch {
				case r >= m.Rows():
					b.WriteString("  ")
				case m.Filled(r, c):
					b.WriteString("██")
				default:
					b.WriteString("··")
				}
			}
			b.WriteString("   ")
		}
		b.WriteString("\n")
	}
	return b.String()
}
