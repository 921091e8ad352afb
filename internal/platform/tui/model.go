package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockjam/internal/core"
	"github.com/vovakirdan/blockjam/internal/storage"
)

// Game is the interface the host drives. Games contain pure logic and
// know nothing about Bubble Tea; the host maps input, keeps time and
// displays the screen buffer.
type Game interface {
	// ID returns a unique identifier, used for screenshots and logs.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts the game with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Resize adapts the layout to a new screen size.
	Resize(w, h int)

	// Step advances the game by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current puzzle status.
	State() core.GameState
}

// SolveSaver persists solved puzzles. *storage.Store implements it.
type SolveSaver interface {
	SaveSolve(s storage.Solve) (storage.Solve, error)
}

// Options configures the host model.
type Options struct {
	Store   SolveSaver  // Nil disables solve records
	Session string      // Recorded with every solve
	Theme   Theme       // Zero value means the classic theme
	Logger  *log.Logger // Nil discards
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	solves     int // Solves recorded this session
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Theme.Styles == nil {
		opts.Theme = ClassicTheme()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		opts:       opts,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.help.Width = cfg.ScreenW
	m.config.ScreenH = m.boardHeight()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)

	// The puzzle must exist before the first View.
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := PointerEvent(msg); ok {
			m.inputFrame.AddPointer(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.handleResize(m.width, m.height)
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if a := m.keys.Action(msg); a != core.ActionNone {
		m.inputFrame.Set(a)
	}
	return m, nil
}

// boardHeight is the screen height left for the game below the help line.
func (m Model) boardHeight() int {
	return max(m.height-lipgloss.Height(m.help.View(m.keys)), 0)
}

// handleResize processes window resize events. The puzzle is kept.
func (m Model) handleResize(w, h int) (tea.Model, tea.Cmd) {
	m.width, m.height = w, h
	m.help.Width = w
	m.config.ScreenW = w
	m.config.ScreenH = m.boardHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.JustSolved {
		m.recordSolve(result.State)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordSolve saves a solved puzzle. Failures are logged and the game continues.
func (m *Model) recordSolve(st core.GameState) {
	m.solves++
	m.opts.Logger.Info("puzzle solved",
		"session", m.opts.Session,
		"seed", st.Seed,
		"level", st.LevelID,
		"moves", st.Moves,
		"elapsed", st.Elapsed.Round(time.Second),
	)
	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveSolve(storage.Solve{
		Session:  m.opts.Session,
		LevelID:  st.LevelID,
		Seed:     st.Seed,
		Shapes:   st.Shapes,
		Gates:    st.Gates,
		Moves:    st.Moves,
		Duration: st.Elapsed,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save solve", "err", err)
	}
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".blockjam", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "err", err)
	}
}

// GameState returns the last observed game state.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Solves returns the number of puzzles solved in this session.
func (m Model) Solves() int {
	return m.solves
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen, m.opts.Theme) + "\n" +
		m.opts.Theme.Help.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
