package blockjam

import (
	"fmt"
	"time"

	platformcore "github.com/vovakirdan/blockjam/internal/core"
	"github.com/vovakirdan/blockjam/internal/games/blockjam/core"
)

// hudHeight is the number of rows above the board frame.
const hudHeight = 2

// Cell glyphs. Each board cell is two glyphs wide.
const (
	glyphShape    = '█'
	glyphSelected = '▓'
	glyphDragged  = '▒'
	glyphEmpty    = '·'
)

// screenColors maps engine colors to platform colors.
var screenColors = [core.ColorCount]platformcore.Color{
	core.ColorRed:    platformcore.ColorRed,
	core.ColorGreen:  platformcore.ColorGreen,
	core.ColorBlue:   platformcore.ColorBlue,
	core.ColorYellow: platformcore.ColorYellow,
	core.ColorPurple: platformcore.ColorPurple,
	core.ColorOrange: platformcore.ColorOrange,
	core.ColorPink:   platformcore.ColorPink,
	core.ColorCyan:   platformcore.ColorCyan,
}

func screenColor(c core.Color) platformcore.Color {
	if c < core.ColorCount {
		return screenColors[c]
	}
	return platformcore.ColorDefault
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Cannot start puzzle", platformcore.ColorRed)
		dst.DrawTextCentered(dst.Height()/2+1, g.err.Error(), platformcore.ColorDim)
		return
	}
	if g.state == nil {
		return
	}
	if g.tooSmall {
		n := g.state.Size()
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small", platformcore.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("Need at least %dx%d", n*g.cellW+2, n+hudHeight+3), platformcore.ColorDim)
		return
	}

	g.renderHUD(dst)
	g.renderFrame(dst)
	g.renderShapes(dst)

	if g.message != "" {
		dst.DrawTextCentered(g.boardY+g.state.Size()+1, g.message, platformcore.ColorDim)
	}
	if g.solved {
		g.renderSolved(dst)
	}
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	dst.DrawTextColored(1, 0, "BLOCK JAM", platformcore.ColorHighlight)

	left := len(g.state.ActiveShapes())
	stats := fmt.Sprintf("Moves: %d  Shapes: %d/%d  Time: %s",
		g.state.Moves, left, len(g.state.Shapes), formatElapsed(g.elapsed()))
	dst.DrawTextColored(12, 0, stats, platformcore.ColorWhite)

	var info string
	if g.opts.Level != nil {
		info = fmt.Sprintf("Level: %s", g.opts.Level.Name)
	} else {
		info = fmt.Sprintf("Seed: %d", g.state.Seed)
	}
	dst.DrawTextColored(1, 1, info, platformcore.ColorDim)
}

// renderFrame draws the border and the gates on it.
func (g *Game) renderFrame(dst *platformcore.Screen) {
	n := g.state.Size()
	frame := platformcore.NewRect(g.boardX-1, g.boardY-1, n*g.cellW+2, n+2)
	dst.DrawBox(frame, platformcore.ColorGray)

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			x, y := g.ScreenPos(core.A(row, col))
			dst.SetColored(x, y, ' ', platformcore.ColorGray)
			dst.SetColored(x+1, y, glyphEmpty, platformcore.ColorGray)
		}
	}

	active := g.state.PreviewGate()
	for i, gate := range g.state.Gates() {
		color := screenColor(gate.Color)
		open := active.Gate == i && active.Pass

		for k := gate.Offset; k <= gate.End(); k++ {
			switch gate.Side {
			case core.SideTop, core.SideBottom:
				glyph := '━'
				if open {
					glyph = '═'
				}
				row := -1
				if gate.Side == core.SideBottom {
					row = n
				}
				x, y := g.ScreenPos(core.A(row, k))
				dst.SetColored(x, y, glyph, color)
				dst.SetColored(x+1, y, glyph, color)
			case core.SideLeft, core.SideRight:
				glyph := '┃'
				if open {
					glyph = '║'
				}
				x, y := g.ScreenPos(core.A(k, 0))
				x--
				if gate.Side == core.SideRight {
					x = g.boardX + n*g.cellW
				}
				dst.SetColored(x, y, glyph, color)
			}
		}
	}
}

func (g *Game) renderShapes(dst *platformcore.Screen) {
	dragged, dragging := g.state.Dragging()
	preview, _ := g.state.Preview()
	n := g.state.Size()

	for _, sh := range g.state.ActiveShapes() {
		glyph := glyphShape
		switch {
		case dragging && sh.ID == dragged:
			glyph = glyphDragged
			sh.Anchor = preview
		case !dragging && sh.ID == g.selected:
			glyph = glyphSelected
		}

		color := screenColor(sh.Color)
		for _, c := range sh.Cells() {
			if c.Row < 0 || c.Row >= n || c.Col < 0 || c.Col >= n {
				continue
			}
			x, y := g.ScreenPos(c)
			dst.SetColored(x, y, glyph, color)
			dst.SetColored(x+1, y, glyph, color)
		}
	}
}

func (g *Game) renderSolved(dst *platformcore.Screen) {
	lines := []string{
		"PUZZLE SOLVED",
		fmt.Sprintf("Moves: %d  Time: %s", g.state.Moves, formatElapsed(g.elapsed())),
		"Press r for a new puzzle",
	}
	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	box := dst.Bounds().Centered(w+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, platformcore.ColorHighlight)
	for i, l := range lines {
		color := platformcore.ColorWhite
		if i == 0 {
			color = platformcore.ColorHighlight
		}
		dst.DrawTextColored(box.X+2, box.Y+1+i, l, color)
	}
}

func formatElapsed(d time.Duration) string {
	d = d.Truncate(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
