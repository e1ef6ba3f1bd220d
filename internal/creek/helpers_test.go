package creek

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/fuze-creek/internal/config"
)

// fixedRand always returns the same values: f from Float64 and n%k from Intn(k).
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Intn(k int) int   { return r.n % k }
func (r fixedRand) Float64() float64 { return r.f }

// calmRand yields only water and steady banks.
var calmRand = fixedRand{f: 0.99, n: 1}

// scriptRand replays scripted values, falling back to calm values when a
// script runs out.
type scriptRand struct {
	ints   []int
	floats []float64
	intsN  int
}

func (r *scriptRand) Intn(k int) int {
	r.intsN++
	if len(r.ints) == 0 {
		return 1 % k
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % k
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// fakeClock is a manually advanced time source.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// countingView counts InitializeCellViewData calls and tags each cell.
type countingView struct {
	calls int
	seen  map[*Cell]int
}

func newCountingView() *countingView {
	return &countingView{seen: make(map[*Cell]int)}
}

func (v *countingView) InitializeCellViewData(c *Cell) {
	v.calls++
	v.seen[c]++
	c.SetViewData(c.Kind().String())
}

// newTestGame starts a game with default config, the given random source,
// and a fake clock.
func newTestGame(t *testing.T, rng Rand) (*Game, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	g, err := newGame(config.DefaultCreekConfig(), NopView, rng, clock.Now)
	if err != nil {
		t.Fatalf("newGame() failed: %v", err)
	}
	return g, clock
}

func newSeededGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g, _ := newTestGame(t, rand.New(rand.NewSource(seed)))
	return g
}

// forceCell replaces the cell at (rowIndex, x) with a fresh cell of kind.
func forceCell(t *testing.T, g *Game, rowIndex, x int, kind CellKind) {
	t.Helper()
	row, ok := g.Row(rowIndex)
	if !ok {
		t.Fatalf("row %d is not live", rowIndex)
	}
	if _, ok := row.Cell(x); !ok {
		t.Fatalf("row %d has no cell at x=%d", rowIndex, x)
	}
	row.cells[x+row.x0Index] = newCell(row, kind, x)
}

// expectPanic fails the test unless fn panics.
func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s should panic", name)
		}
	}()
	fn()
}
