package creek

import (
	"fmt"
	"time"

	"github.com/vovakirdan/fuze-creek/internal/config"
)

// Cause explains why a round ended.
type Cause int

const (
	CauseNone     Cause = iota // still playing
	CauseGrounded              // raft ran onto a bank
	CauseBoom                  // raft crossed a mine
	CauseSank                  // raft ran out of patches
)

// String returns the lowercase name of the cause.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseGrounded:
		return "grounded"
	case CauseBoom:
		return "boom"
	case CauseSank:
		return "sank"
	default:
		return fmt.Sprintf("cause(%d)", int(c))
	}
}

// Message returns the line shown to the player when the round ends.
func (c Cause) Message() string {
	switch c {
	case CauseGrounded:
		return "Your raft ran aground."
	case CauseBoom:
		return "Your raft hit a mine."
	case CauseSank:
		return "Your raft sank."
	default:
		return ""
	}
}

// Game is the rolling window of rows plus the raft and player counters.
// It is driven by a single goroutine: Advance must not be called
// concurrently with itself or with queries.
type Game struct {
	cfg       config.CreekConfig
	generator *Generator
	view      View
	rows      *rowWindow

	raftLeftX    int
	raftRowIndex int
	patches      int
	points       int
	advances     int
	cause        Cause

	now         func() time.Time
	startTime   time.Time
	endTime     time.Time
	interval    time.Duration
	nextAdvance time.Time
}

// NewGame starts a round: it validates cfg and seeds the initial window of
// rows. view and rng are required.
func NewGame(cfg config.CreekConfig, view View, rng Rand) (*Game, error) {
	return newGame(cfg, view, rng, time.Now)
}

func newGame(cfg config.CreekConfig, view View, rng Rand, now func() time.Time) (*Game, error) {
	if view == nil {
		panic("creek: game requires a view")
	}
	if rng == nil {
		panic("creek: game requires a random source")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("creek: invalid config: %w", err)
	}

	g := &Game{
		cfg:          cfg,
		generator:    NewGenerator(cfg, rng, view),
		view:         view,
		rows:         newRowWindow(cfg.VisibleRows() + 1),
		raftLeftX:    -cfg.Creek.RaftWidth / 2,
		raftRowIndex: cfg.Creek.UpstreamRows,
		patches:      cfg.Player.StartingPatches,
		now:          now,
		interval:     cfg.AdvanceInterval(),
	}
	g.startTime = now()
	g.nextAdvance = g.startTime.Add(g.interval)

	for i := 0; i < cfg.VisibleRows(); i++ {
		g.addRow(i)
	}
	return g, nil
}

// addRow generates the row after the newest live row.
func (g *Game) addRow(rowIndex int) {
	g.rows.push(g.generator.GenerateRow(rowIndex, g.rows.last()))
}

// Advance moves the raft one row downstream, shifting it by deltaX, and
// resolves what it meets. It returns the cause if this advance ended the
// round, or CauseNone.
func (g *Game) Advance(deltaX int) Cause {
	if deltaX < -1 || deltaX > +1 {
		panic(fmt.Sprintf("creek: delta X %d outside [-1, +1]", deltaX))
	}
	if g.IsOver() {
		panic(fmt.Sprintf("creek: advance after the round ended (%s)", g.cause))
	}

	g.advances++
	g.raftLeftX += deltaX
	g.raftRowIndex++
	g.ScorePoints(g.cfg.Player.AdvancePoints)
	g.nextAdvance = g.nextAdvance.Add(g.interval)

	row, ok := g.rows.get(g.raftRowIndex)
	if !ok {
		panic(fmt.Sprintf("creek: raft row %d is not live", g.raftRowIndex))
	}

	// Flanking cells are collected, cells under the raft collide.
	if c, ok := row.Cell(g.raftLeftX - 1); ok {
		c.collect()
	}
	for x := g.raftLeftX; x <= g.RaftRightX(); x++ {
		if c, ok := row.Cell(x); ok {
			c.collide(g)
		}
	}
	if c, ok := row.Cell(g.RaftRightX() + 1); ok {
		c.collect()
	}

	g.addRow(g.raftRowIndex + g.cfg.View.DownstreamRows)
	g.rows.evict(g.raftRowIndex - g.cfg.Creek.UpstreamRows - 1)
	return g.cause
}

// ConsumePatches uses up n patches. Using the last remaining patch, or more
// than remain, sinks the raft.
func (g *Game) ConsumePatches(n int) {
	if g.patches > n {
		g.patches -= n
		return
	}
	g.patches = 0
	g.Terminate(CauseSank)
}

// ScorePoints adds n (possibly negative) to the score.
func (g *Game) ScorePoints(n int) {
	g.points += n
}

// Terminate ends the round. A later cause replaces an earlier one, except
// that running out of patches never hides a mine or a bank.
func (g *Game) Terminate(cause Cause) {
	if cause == CauseNone {
		panic("creek: terminate requires a cause")
	}
	if g.cause == CauseNone {
		g.endTime = g.now()
	} else if cause == CauseSank {
		return
	}
	g.cause = cause
}

// SetAdvanceInterval changes the ideal time between advances. Before the
// first advance it also reschedules the first one.
func (g *Game) SetAdvanceInterval(d time.Duration) {
	if d <= 0 {
		panic(fmt.Sprintf("creek: advance interval %v must be positive", d))
	}
	g.interval = d
	if g.advances == 0 {
		g.nextAdvance = g.startTime.Add(d)
	}
}

// AdvanceInterval returns the ideal time between advances.
func (g *Game) AdvanceInterval() time.Duration {
	return g.interval
}

// Config returns the configuration the round was started with.
func (g *Game) Config() config.CreekConfig {
	return g.cfg
}

// Cause returns why the round ended, or CauseNone while playing.
func (g *Game) Cause() Cause {
	return g.cause
}

// IsOver reports whether the round has ended.
func (g *Game) IsOver() bool {
	return g.cause != CauseNone
}

// CountAdvances returns how many times the raft has advanced.
func (g *Game) CountAdvances() int {
	return g.advances
}

// RemainingPatches returns the patches left in the raft's inventory.
func (g *Game) RemainingPatches() int {
	return g.patches
}

// TotalPoints returns the score.
func (g *Game) TotalPoints() int {
	return g.points
}

// RaftLeftX returns the map-X coordinate of the raft's leftmost cell.
func (g *Game) RaftLeftX() int {
	return g.raftLeftX
}

// RaftRightX returns the map-X coordinate of the raft's rightmost cell.
func (g *Game) RaftRightX() int {
	return g.raftLeftX + g.cfg.Creek.RaftWidth - 1
}

// RaftRowIndex returns the index of the row the raft occupies.
func (g *Game) RaftRowIndex() int {
	return g.raftRowIndex
}

// FirstRowIndex returns the index of the furthest live row downstream,
// which front-ends draw first.
func (g *Game) FirstRowIndex() int {
	return g.raftRowIndex + g.cfg.View.DownstreamRows
}

// LastRowIndex returns the index of the furthest live row upstream.
func (g *Game) LastRowIndex() int {
	return g.raftRowIndex - g.cfg.Creek.UpstreamRows
}

// CountVisibleRows returns the number of live rows.
func (g *Game) CountVisibleRows() int {
	return g.rows.len()
}

// Row returns the live row with the given index.
func (g *Game) Row(index int) (*Row, bool) {
	if index < 0 {
		panic(fmt.Sprintf("creek: negative row index %d", index))
	}
	return g.rows.get(index)
}

// Cell returns the cell at (rowIndex, x) if its row is live and x lies
// within the row's stored cells.
func (g *Game) Cell(rowIndex, x int) (*Cell, bool) {
	row, ok := g.Row(rowIndex)
	if !ok {
		return nil, false
	}
	return row.Cell(x)
}

// Elapsed returns the time since the round started, frozen once it ends.
func (g *Game) Elapsed() time.Duration {
	if g.IsOver() {
		return g.endTime.Sub(g.startTime)
	}
	return g.now().Sub(g.startTime)
}

// ElapsedSeconds returns Elapsed in seconds.
func (g *Game) ElapsedSeconds() float64 {
	return g.Elapsed().Seconds()
}

// ScrollingFraction returns the remaining fraction of the interval before
// the next ideal advance. It falls linearly from 1; a negative value means
// the caller should advance now.
func (g *Game) ScrollingFraction() float64 {
	remaining := g.nextAdvance.Sub(g.now())
	return min(float64(remaining)/float64(g.interval), 1)
}
