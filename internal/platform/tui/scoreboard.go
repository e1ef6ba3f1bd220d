package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fuze-creek/internal/storage"
)

// maxRuns is how many runs the board loads.
const maxRuns = 100

// ScoreboardKeyMap defines the key bindings for the run board.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the run history board.
type ScoreboardModel struct {
	runs     []storage.RunRecord
	stats    *storage.Stats
	causes   map[string]int
	loadErr  error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel loads the run history from store.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load(store)
	return m
}

// createTable creates a new table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Patches", Width: 8},
		{Title: "Cause", Width: 9},
		{Title: "Time", Width: 8},
		{Title: "Seed", Width: 20},
		{Title: "Date", Width: 13},
	}
	if m.width < 90 {
		// Drop the seed column on narrow terminals
		columns = append(columns[:5], columns[6])
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
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

func (m *ScoreboardModel) load(store *storage.Store) {
	if store == nil {
		m.updateTableRows()
		return
	}

	if m.runs, m.loadErr = store.TopRuns(maxRuns); m.loadErr != nil {
		m.updateTableRows()
		return
	}
	if m.stats, m.loadErr = store.Stats(); m.loadErr != nil {
		m.updateTableRows()
		return
	}
	m.causes, m.loadErr = store.CauseCounts()
	m.updateTableRows()
}

// updateTableRows fills the table from the loaded runs.
func (m *ScoreboardModel) updateTableRows() {
	wide := len(m.table.Columns()) == 7
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		row := table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Patches),
			r.Cause,
			formatElapsed(r.ElapsedMS),
		}
		if wide {
			row = append(row, fmt.Sprintf("%d", r.Seed))
		}
		row = append(row, r.CreatedAt.Format("Jan 02 15:04"))
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func formatElapsed(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	return d.Round(100 * time.Millisecond).String()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("FUZE CREEK - RUNS", m.width)))
	b.WriteString("\n\n")

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if summary := m.summary(); summary != "" {
		b.WriteString(dimStyle.Render(centerText(summary, m.width)))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// summary is the one-line stats header, empty without runs.
func (m ScoreboardModel) summary() string {
	if m.stats == nil || m.stats.Runs == 0 {
		return ""
	}
	parts := []string{
		fmt.Sprintf("%d runs", m.stats.Runs),
		fmt.Sprintf("best %d", m.stats.HighScore),
		fmt.Sprintf("avg %.1f", m.stats.AvgScore),
	}
	causes := make([]string, 0, len(m.causes))
	for c := range m.causes {
		causes = append(causes, c)
	}
	sort.Strings(causes)
	for _, c := range causes {
		parts = append(parts, fmt.Sprintf("%s %d", c, m.causes[c]))
	}
	return strings.Join(parts, " · ")
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render("Could not load runs:\n" + m.loadErr.Error())
	}
	if len(m.runs) == 0 {
		return emptyStyle.Render("No runs recorded yet.\nShoot the creek to set a score!")
	}
	return m.table.View()
}

// RunScoreboard shows the run board until the user quits.
func RunScoreboard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
