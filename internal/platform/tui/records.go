package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockjam/internal/storage"
)

// SolveSource supplies solve records. *storage.Store implements it.
type SolveSource interface {
	RecentSolves(limit int) ([]storage.Solve, error)
	BestSolves(limit int) ([]storage.Solve, error)
}

// RecordsTab selects which list the records view shows.
type RecordsTab int

const (
	TabRecent RecordsTab = iota
	TabBest
)

func (t RecordsTab) String() string {
	if t == TabBest {
		return "Best"
	}
	return "Recent"
}

// RecordsKeyMap defines the key bindings for the records view.
type RecordsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RecordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextTab, k.Quit}}
}

// DefaultRecordsKeyMap returns default key bindings.
func DefaultRecordsKeyMap() RecordsKeyMap {
	return RecordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right"),
			key.WithHelp("tab", "recent/best"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecordsModel is the Bubble Tea model for browsing solve records.
type RecordsModel struct {
	source   SolveSource
	limit    int
	tab      RecordsTab
	solves   []storage.Solve
	err      error
	table    table.Model
	help     help.Model
	keys     RecordsKeyMap
	width    int
	height   int
	quitting bool
}

// NewRecordsModel creates a records view showing up to limit solves per tab.
func NewRecordsModel(source SolveSource, limit, width, height int) RecordsModel {
	m := RecordsModel{
		source: source,
		limit:  limit,
		keys:   DefaultRecordsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// RecordColumns returns the table columns shared by the TUI and the CLI.
func RecordColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Moves", Width: 6},
		{Title: "Time", Width: 7},
		{Title: "Shapes", Width: 6},
		{Title: "Puzzle", Width: 22},
		{Title: "Date", Width: 12},
	}
}

// RecordRows formats solves as table rows.
func RecordRows(solves []storage.Solve) []table.Row {
	rows := make([]table.Row, len(solves))
	for i, s := range solves {
		puzzle := s.LevelID
		if puzzle == "" {
			puzzle = fmt.Sprintf("seed %d", s.Seed)
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", s.Moves),
			formatDuration(s.Duration),
			fmt.Sprintf("%d", s.Shapes),
			puzzle,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func formatDuration(d time.Duration) string {
	d = d.Truncate(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// createTable creates a new table sized to the window.
func (m *RecordsModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(RecordColumns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for title, tabs and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load queries the current tab.
func (m *RecordsModel) load() {
	m.solves, m.err = nil, nil
	if m.source != nil {
		if m.tab == TabBest {
			m.solves, m.err = m.source.BestSolves(m.limit)
		} else {
			m.solves, m.err = m.source.RecentSolves(m.limit)
		}
	}
	m.table.SetRows(RecordRows(m.solves))
	m.table.GotoTop()
}

// Init initializes the records model.
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the records view.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % 2
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(RecordRows(m.solves))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Tab returns the active tab.
func (m RecordsModel) Tab() RecordsTab {
	return m.tab
}

// Solves returns the records shown in the active tab.
func (m RecordsModel) Solves() []storage.Solve {
	return m.solves
}

// View renders the records view.
func (m RecordsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("BLOCK JAM RECORDS"))
	b.WriteString("\n\n")

	activeTab := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	tab := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	tabs := make([]string, 2)
	for i, t := range []RecordsTab{TabRecent, TabBest} {
		if t == m.tab {
			tabs[i] = activeTab.Render(t.String())
		} else {
			tabs[i] = tab.Render(t.String())
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or a placeholder.
func (m RecordsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)
	switch {
	case m.err != nil:
		return emptyStyle.Render("Cannot load records:\n" + m.err.Error())
	case len(m.solves) == 0:
		return emptyStyle.Render("No puzzles solved yet.\nRun 'blockjam play' to set a record!")
	}
	return m.table.View()
}

// RunRecords runs the records browser.
func RunRecords(source SolveSource, limit, width, height int) error {
	p := tea.NewProgram(
		NewRecordsModel(source, limit, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
