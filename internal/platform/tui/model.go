package tui

import (
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fuze-creek/internal/config"
	"github.com/vovakirdan/fuze-creek/internal/core"
	"github.com/vovakirdan/fuze-creek/internal/creek"
	"github.com/vovakirdan/fuze-creek/internal/storage"
)

// RoundResult describes one finished round.
type RoundResult struct {
	Seed     int64
	Snapshot creek.Snapshot
	SaveErr  error // set when the run could not be stored
}

// Model is the Bubble Tea model for playing the creek.
type Model struct {
	cfg      config.CreekConfig
	runtime  core.RuntimeConfig
	game     *creek.Game
	seed     int64
	screen   *core.Screen
	store    *storage.Store
	best     int
	input    core.InputFrame
	keys     KeyMap
	help     help.Model
	saved    bool // whether the current round has been recorded
	results  []RoundResult
	quitting bool
}

// NewModel creates a model and starts the first round.
func NewModel(cfg config.CreekConfig, store *storage.Store, rt core.RuntimeConfig) (Model, error) {
	m := Model{
		cfg:     cfg,
		runtime: rt,
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:   store,
		input:   core.NewInputFrame(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	if err := m.newRound(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// newRound starts a fresh game. A fixed seed replays the same creek.
func (m *Model) newRound() error {
	m.seed = m.runtime.Seed
	if m.seed == 0 {
		m.seed = time.Now().UnixNano()
	}
	g, err := creek.NewGame(m.cfg, CellView{}, rand.New(rand.NewSource(m.seed)))
	if err != nil {
		return err
	}
	m.game = g
	m.saved = false
	m.input.Clear()
	m.keys.Restart.SetEnabled(false)
	if m.store != nil {
		if best, err := m.store.HighScore(); err == nil {
			m.best = best
		}
	}
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.step()
		return m, tickCmd(m.runtime.FPS)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if err := m.newRound(); err != nil {
			m.quitting = true
			return m, tea.Quit
		}
	case core.ActionLeft, core.ActionRight:
		if !m.game.IsOver() {
			m.input.Set(a)
		}
	}
	return m, nil
}

// step advances the round as often as the schedule demands, using queued
// steering for the first advance only.
func (m *Model) step() {
	for !m.game.IsOver() && m.game.ScrollingFraction() < 0 {
		m.game.Advance(m.input.Steer())
		m.input.ClearSteering()
	}
	if m.game.IsOver() && !m.saved {
		m.finishRound()
	}
}

// finishRound records the ended round once.
func (m *Model) finishRound() {
	m.saved = true
	m.keys.Restart.SetEnabled(true)

	res := RoundResult{Seed: m.seed, Snapshot: m.game.Snapshot()}
	if m.store != nil {
		_, res.SaveErr = m.store.SaveRun(RunRecord(res, m.runtime.Difficulty))
	}
	if res.Snapshot.Score > m.best {
		m.best = res.Snapshot.Score
	}
	m.results = append(m.results, res)
}

// RunRecord converts a finished round into a storage record.
func RunRecord(res RoundResult, difficulty string) storage.RunRecord {
	s := res.Snapshot
	return storage.RunRecord{
		Score:      s.Score,
		Patches:    s.Patches,
		Advances:   s.Advances,
		Cause:      s.Cause.String(),
		ElapsedMS:  s.Elapsed.Milliseconds(),
		Seed:       res.Seed,
		Difficulty: difficulty,
	}
}

// Results returns every round finished in this session.
func (m Model) Results() []RoundResult {
	return m.results
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawCreek(m.screen, m.game, m.best)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run plays rounds until the player quits and returns the finished rounds.
func Run(cfg config.CreekConfig, store *storage.Store, rt core.RuntimeConfig) ([]RoundResult, error) {
	model, err := NewModel(cfg, store, rt)
	if err != nil {
		return nil, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if fm, ok := final.(Model); ok {
		return fm.Results(), nil
	}
	return nil, nil
}
