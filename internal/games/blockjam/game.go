// Package blockjam provides the Block Jam puzzle game for the terminal host.
// It owns a puzzle state, turns keyboard and mouse input into engine drag
// events and draws the board into a screen buffer.
package blockjam

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/blockjam/internal/core"
	"github.com/vovakirdan/blockjam/internal/games/blockjam/core"
	"github.com/vovakirdan/blockjam/internal/games/blockjam/levels"
)

// Options configures a game.
type Options struct {
	Params core.GenParams // Generation settings for random puzzles
	Level  *levels.Level  // Fixed puzzle; nil means generate
	Logger *log.Logger    // Nil discards
}

// Game implements the Block Jam puzzle.
type Game struct {
	opts   Options
	gen    *core.Generator
	state  *core.State
	logger *log.Logger

	// Seeds for successive generated puzzles
	seeds    *core.SimpleRNG
	nextSeed uint64

	// Screen dimensions
	screenW  int
	screenH  int
	tickRate int

	// Status
	tick          uint64
	startTick     uint64
	solvedTick    uint64
	solved        bool
	pendingSolved bool
	tooSmall      bool
	err           error
	message       string

	// Selection and drag state
	selected  int
	keyDrag   bool
	mouseDrag bool

	// Rendering config
	cellW  int // Width of each board cell in terminal chars
	boardX int // Screen position of board cell (0,0)
	boardY int
}

// New creates a new game.
func New(opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Params.GridSize == 0 {
		opts.Params = core.DefaultGenParams()
	}
	return &Game{
		opts:   opts,
		gen:    core.NewGenerator(opts.Params, opts.Logger),
		logger: opts.Logger,
		cellW:  2,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "blockjam"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Block Jam"
}

// Puzzle returns the current puzzle state.
func (g *Game) Puzzle() *core.State {
	return g.state
}

// Err returns the error that prevented a puzzle from loading.
func (g *Game) Err() error {
	return g.err
}

// Reset initializes the game and starts a puzzle.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}
	g.tick = 0
	g.nextSeed = uint64(cfg.Seed)
	g.seeds = core.NewRNG(uint64(cfg.Seed))

	g.newPuzzle()
}

// Resize adapts the layout to a new screen size without touching the puzzle.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.calculateLayout()
}

// newPuzzle loads the fixed level or generates the next random one.
func (g *Game) newPuzzle() {
	g.err = nil
	g.message = ""
	g.solved = false
	g.keyDrag = false
	g.mouseDrag = false
	g.startTick = g.tick

	if g.opts.Level != nil {
		g.state, g.err = g.opts.Level.NewState()
	} else {
		seed := g.nextSeed
		g.nextSeed = g.seeds.Next()

		var report core.GenReport
		g.state, report, g.err = g.gen.NewGame(core.NewRNG(seed))
		if g.err == nil && (len(report.Omitted) > 0 || len(report.GatelessColors) > 0) {
			g.logger.Debug("puzzle generated with gaps",
				"seed", g.state.Seed, "omitted", len(report.Omitted), "gateless", report.GatelessColors)
		}
	}
	if g.err != nil {
		g.logger.Error("cannot start puzzle", "err", g.err)
		return
	}

	g.selected = firstActive(g.state)
	g.pendingSolved = g.state.CheckWin()
	g.calculateLayout()
}

// calculateLayout centers the board below the HUD.
func (g *Game) calculateLayout() {
	if g.state == nil {
		return
	}
	n := g.state.Size()
	neededW := n*g.cellW + 2
	neededH := n + hudHeight + 3

	g.tooSmall = g.screenW < neededW || g.screenH < neededH
	g.boardX = (g.screenW - n*g.cellW) / 2
	g.boardY = hudHeight + 1
}

// ScreenPos returns the screen position of the left half of a board cell.
func (g *Game) ScreenPos(a core.Anchor) (x, y int) {
	return g.boardX + a.Col*g.cellW, g.boardY + a.Row
}

// cellAt maps a screen position to a board cell, possibly off the board.
func (g *Game) cellAt(x, y int) core.Anchor {
	return core.A(y-g.boardY, platformcore.FloorDiv(x-g.boardX, g.cellW))
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	justSolved := false

	if input.Has(platformcore.ActionRestart) {
		g.newPuzzle()
		return platformcore.StepResult{State: g.State()}
	}

	if g.err != nil || g.state == nil || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if g.pendingSolved {
		g.pendingSolved = false
		g.markSolved()
		justSolved = true
	}

	if !g.solved {
		for _, a := range input.Actions {
			if g.handleAction(a) {
				justSolved = true
			}
		}
		for _, ev := range input.Pointer {
			if g.handlePointer(ev) {
				justSolved = true
			}
		}
	}

	return platformcore.StepResult{State: g.State(), JustSolved: justSolved}
}

// handleAction applies one keyboard action. Returns true if it solved the puzzle.
func (g *Game) handleAction(a platformcore.Action) bool {
	switch a {
	case platformcore.ActionNextShape:
		if !g.dragging() {
			g.cycleSelection(1)
		}
	case platformcore.ActionPrevShape:
		if !g.dragging() {
			g.cycleSelection(-1)
		}
	case platformcore.ActionGrab:
		if g.mouseDrag {
			return false
		}
		if g.keyDrag {
			g.keyDrag = false
			return g.applyResult(g.state.DragEnd(g.previewCenter(0, 0)))
		}
		g.grabSelected()
	case platformcore.ActionUp:
		g.moveOrSelect(-1, 0)
	case platformcore.ActionDown:
		g.moveOrSelect(1, 0)
	case platformcore.ActionLeft:
		g.moveOrSelect(0, -1)
	case platformcore.ActionRight:
		g.moveOrSelect(0, 1)
	case platformcore.ActionCancel:
		g.state.CancelDrag()
		g.keyDrag = false
		g.mouseDrag = false
		g.message = ""
	}
	return false
}

// handlePointer applies one mouse sample. Returns true if it solved the puzzle.
func (g *Game) handlePointer(ev platformcore.PointerEvent) bool {
	cell := g.cellAt(ev.X, ev.Y)

	switch ev.Kind {
	case platformcore.PointerPress:
		if g.dragging() || !g.state.Board.InBounds(cell) {
			return false
		}
		id := g.state.ShapeAt(cell)
		if id == core.NoShape {
			return false
		}
		if err := g.state.DragStart(id, cell); err != nil {
			g.logger.Debug("drag rejected", "shape", id, "err", err)
			return false
		}
		g.selected = id
		g.mouseDrag = true
		g.message = ""

	case platformcore.PointerMotion:
		if g.mouseDrag {
			g.state.DragMove(cell)
		}

	case platformcore.PointerRelease:
		if g.mouseDrag {
			g.mouseDrag = false
			return g.applyResult(g.state.DragEnd(cell))
		}
	}
	return false
}

func (g *Game) dragging() bool {
	_, ok := g.state.Dragging()
	return ok
}

func (g *Game) grabSelected() {
	sh, ok := g.state.Shape(g.selected)
	if !ok || sh.Removed {
		g.selected = firstActive(g.state)
		if sh, ok = g.state.Shape(g.selected); !ok {
			return
		}
	}
	m := sh.Matrix()
	pointer := sh.Anchor.Add(m.Rows()/2, m.Cols()/2)
	if err := g.state.DragStart(sh.ID, pointer); err != nil {
		g.logger.Debug("grab rejected", "shape", sh.ID, "err", err)
		return
	}
	g.keyDrag = true
	g.message = ""
}

// previewCenter returns the pointer cell that aims at the preview anchor
// shifted by (dRow, dCol).
func (g *Game) previewCenter(dRow, dCol int) core.Anchor {
	p, _ := g.state.Preview()
	id, _ := g.state.Dragging()
	sh, _ := g.state.Shape(id)
	m := sh.Matrix()
	return p.Add(m.Rows()/2+dRow, m.Cols()/2+dCol)
}

// moveOrSelect nudges the grabbed shape one cell or, without a grab,
// moves the selection.
func (g *Game) moveOrSelect(dRow, dCol int) {
	if g.mouseDrag {
		return
	}
	if !g.keyDrag {
		if dRow+dCol < 0 {
			g.cycleSelection(-1)
		} else {
			g.cycleSelection(1)
		}
		return
	}

	before, _ := g.state.Preview()
	after, _ := g.state.DragMove(g.previewCenter(dRow, dCol))
	if after == before {
		g.message = "Blocked"
	} else {
		g.message = ""
	}
}

func (g *Game) cycleSelection(step int) {
	active := g.state.ActiveShapes()
	if len(active) == 0 {
		return
	}
	idx := 0
	for i, sh := range active {
		if sh.ID == g.selected {
			idx = i
			break
		}
	}
	idx = (idx + step + len(active)) % len(active)
	g.selected = active[idx].ID
}

// applyResult updates status after a commit. Returns true if it solved the puzzle.
func (g *Game) applyResult(res core.MoveResult) bool {
	sh, _ := g.state.Shape(res.ShapeID)

	switch res.Outcome {
	case core.OutcomeExited:
		g.message = fmt.Sprintf("%s %s exited", sh.Color, sh.Type.Name())
		g.selected = firstActive(g.state)
	case core.OutcomeReverted:
		if res.Gate.Touching && !res.Gate.Pass {
			g.message = "Blocked: " + res.Gate.Reason.String()
		} else {
			g.message = "Cannot drop there"
		}
	case core.OutcomeMoved:
		g.message = ""
		if res.Gate.Touching && !res.Gate.Pass {
			g.message = "Gate blocked: " + res.Gate.Reason.String()
		}
	}

	if res.Solved {
		g.markSolved()
		return true
	}
	return false
}

func (g *Game) markSolved() {
	g.solved = true
	g.solvedTick = g.tick
	g.logger.Info("puzzle solved", "seed", g.state.Seed, "moves", g.state.Moves, "elapsed", g.elapsed())
}

func (g *Game) elapsed() time.Duration {
	if g.tickRate <= 0 {
		return 0
	}
	end := g.tick
	if g.solved {
		end = g.solvedTick
	}
	return time.Duration(end-g.startTick) * time.Second / time.Duration(g.tickRate)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.state == nil {
		return platformcore.GameState{}
	}
	st := platformcore.GameState{
		Seed:    g.state.Seed,
		Shapes:  len(g.state.Shapes),
		Gates:   len(g.state.Gates()),
		Moves:   g.state.Moves,
		Elapsed: g.elapsed(),
		Solved:  g.solved,
	}
	if g.opts.Level != nil {
		st.LevelID = g.opts.Level.ID
	}
	return st
}

func firstActive(s *core.State) int {
	if active := s.ActiveShapes(); len(active) > 0 {
		return active[0].ID
	}
	return core.NoShape
}
