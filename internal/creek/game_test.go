package creek

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/fuze-creek/internal/config"
)

func TestNewGameInitialState(t *testing.T) {
	g, _ := newTestGame(t, rand.New(rand.NewSource(1)))
	cfg := config.DefaultCreekConfig()

	if g.RemainingPatches() != 20 {
		t.Errorf("RemainingPatches() = %d, expected 20", g.RemainingPatches())
	}
	if g.TotalPoints() != 0 {
		t.Errorf("TotalPoints() = %d, expected 0", g.TotalPoints())
	}
	if g.RaftRowIndex() != cfg.Creek.UpstreamRows {
		t.Errorf("RaftRowIndex() = %d, expected %d", g.RaftRowIndex(), cfg.Creek.UpstreamRows)
	}
	if g.RaftLeftX() != -1 || g.RaftRightX() != 0 {
		t.Errorf("raft spans [%d, %d], expected [-1, 0]", g.RaftLeftX(), g.RaftRightX())
	}
	if g.IsOver() || g.Cause() != CauseNone {
		t.Errorf("new game should be playing, cause %s", g.Cause())
	}
	if g.CountVisibleRows() != cfg.VisibleRows() {
		t.Errorf("CountVisibleRows() = %d, expected %d", g.CountVisibleRows(), cfg.VisibleRows())
	}
	if g.LastRowIndex() != 0 || g.FirstRowIndex() != cfg.VisibleRows()-1 {
		t.Errorf("window = [%d, %d], expected [0, %d]", g.LastRowIndex(), g.FirstRowIndex(), cfg.VisibleRows()-1)
	}
	for i := g.LastRowIndex(); i <= g.FirstRowIndex(); i++ {
		if _, ok := g.Row(i); !ok {
			t.Errorf("row %d should be live", i)
		}
	}
}

func TestNewGameRejectsBadConfig(t *testing.T) {
	cfg := config.DefaultCreekConfig()
	cfg.Creek.MinWidth = 0
	if _, err := NewGame(cfg, NopView, calmRand); err == nil {
		t.Error("NewGame() with invalid config should fail")
	}

	expectPanic(t, "nil view", func() { NewGame(config.DefaultCreekConfig(), nil, calmRand) })
	expectPanic(t, "nil random source", func() { NewGame(config.DefaultCreekConfig(), NopView, nil) })
}

func TestCalmRunScoresTwenty(t *testing.T) {
	g, _ := newTestGame(t, calmRand)

	for i := 0; i < 20; i++ {
		if cause := g.Advance(0); cause != CauseNone {
			t.Fatalf("advance %d ended the round: %s", i+1, cause)
		}
	}

	if g.TotalPoints() != 20 {
		t.Errorf("TotalPoints() = %d, expected 20", g.TotalPoints())
	}
	if g.RemainingPatches() != 20 {
		t.Errorf("RemainingPatches() = %d, expected 20", g.RemainingPatches())
	}
	if g.CountAdvances() != 20 {
		t.Errorf("CountAdvances() = %d, expected 20", g.CountAdvances())
	}
	if g.IsOver() {
		t.Errorf("round should still be playing, cause %s", g.Cause())
	}
}

func TestMineUnderRaftGoesBoom(t *testing.T) {
	g, _ := newTestGame(t, calmRand)
	next := g.RaftRowIndex() + 1
	forceCell(t, g, next, g.RaftLeftX(), Mine)

	cause := g.Advance(0)

	if cause != CauseBoom {
		t.Errorf("Advance() = %s, expected boom", cause)
	}
	if !g.IsOver() || g.Cause() != CauseBoom {
		t.Errorf("Cause() = %s, expected boom", g.Cause())
	}
	if g.RemainingPatches() != 20 {
		t.Errorf("RemainingPatches() = %d, expected 20", g.RemainingPatches())
	}
	// Points for the advance are awarded regardless of the outcome
	if g.TotalPoints() != 1 {
		t.Errorf("TotalPoints() = %d, expected 1", g.TotalPoints())
	}
	expectPanic(t, "advance after boom", func() { g.Advance(0) })
}

func TestCollisionOutcomes(t *testing.T) {
	tests := []struct {
		name        string
		kind        CellKind
		patches     int // patches before the advance
		wantCause   Cause
		wantPatches int
	}{
		{"water", WaterOnly, 20, CauseNone, 20},
		{"dry land", DryLand, 20, CauseNone, 20},
		{"rock", Rock, 20, CauseNone, 19},
		{"rock with two patches", Rock, 2, CauseNone, 1},
		{"rock with last patch", Rock, 1, CauseSank, 0},
		{"mine", Mine, 20, CauseBoom, 20},
		{"mine with one patch", Mine, 1, CauseBoom, 1},
		{"left bank", LeftBank, 20, CauseGrounded, 20},
		{"right bank", RightBank, 20, CauseGrounded, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGame(t, calmRand)
			g.patches = tc.patches
			forceCell(t, g, g.RaftRowIndex()+1, g.RaftRightX(), tc.kind)

			cause := g.Advance(0)
			if cause != tc.wantCause {
				t.Errorf("Advance() = %s, expected %s", cause, tc.wantCause)
			}
			if g.RemainingPatches() != tc.wantPatches {
				t.Errorf("RemainingPatches() = %d, expected %d", g.RemainingPatches(), tc.wantPatches)
			}
			if g.TotalPoints() != 1 {
				t.Errorf("TotalPoints() = %d, expected 1", g.TotalPoints())
			}
		})
	}
}

func TestTwoRocksUnderRaft(t *testing.T) {
	g, _ := newTestGame(t, calmRand)
	next := g.RaftRowIndex() + 1
	forceCell(t, g, next, g.RaftLeftX(), Rock)
	forceCell(t, g, next, g.RaftRightX(), Rock)

	g.Advance(0)
	if g.RemainingPatches() != 18 {
		t.Errorf("RemainingPatches() = %d, expected 18", g.RemainingPatches())
	}
}

func TestCauseWhenSeveralHazardsMeet(t *testing.T) {
	testCases := []struct {
		name        string
		left, right CellKind
		want        Cause
		wantPatches int
	}{
		{"rock then mine", Rock, Mine, CauseBoom, 0},
		{"mine then rock", Mine, Rock, CauseBoom, 0},
		{"rock then bank", Rock, RightBank, CauseGrounded, 0},
		{"bank then rock", LeftBank, Rock, CauseGrounded, 0},
		{"mine then bank", Mine, RightBank, CauseGrounded, 1},
		{"two rocks", Rock, Rock, CauseSank, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, clock := newTestGame(t, calmRand)
			g.patches = 1
			next := g.RaftRowIndex() + 1
			forceCell(t, g, next, g.RaftLeftX(), tc.left)
			forceCell(t, g, next, g.RaftRightX(), tc.right)

			clock.Advance(time.Second)
			if cause := g.Advance(0); cause != tc.want {
				t.Errorf("Advance() = %s, expected %s", cause, tc.want)
			}
			if g.RemainingPatches() != tc.wantPatches {
				t.Errorf("RemainingPatches() = %d, expected %d", g.RemainingPatches(), tc.wantPatches)
			}
			clock.Advance(time.Minute)
			if g.Elapsed() != time.Second {
				t.Errorf("Elapsed() = %v, expected 1s", g.Elapsed())
			}
		})
	}
}

func TestFlankingCellsAreCollected(t *testing.T) {
	kinds := []CellKind{DryLand, WaterOnly, Rock, Mine, LeftBank, RightBank}

	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			view := newCountingView()
			clock := newFakeClock()
			g, err := newGame(config.DefaultCreekConfig(), view, calmRand, clock.Now)
			if err != nil {
				t.Fatal(err)
			}
			next := g.RaftRowIndex() + 1
			leftX := g.RaftLeftX() - 1
			rightX := g.RaftRightX() + 1
			forceCell(t, g, next, leftX, k)
			forceCell(t, g, next, rightX, k)
			before := view.calls

			if cause := g.Advance(0); cause != CauseNone {
				t.Fatalf("flanking %s ended the round: %s", k, cause)
			}

			for _, x := range []int{leftX, rightX} {
				c, ok := g.Cell(next, x)
				if !ok {
					t.Fatalf("no cell at x=%d", x)
				}
				if c.Kind() != WaterOnly {
					t.Errorf("x=%d: kind %s after collection, expected WaterOnly", x, c.Kind())
				}
				if c.ViewData() != "WaterOnly" {
					t.Errorf("x=%d: replacement cell not initialized by the view", x)
				}
			}
			if g.RemainingPatches() != 20 || g.TotalPoints() != 1 {
				t.Errorf("collection changed counters: patches %d, points %d", g.RemainingPatches(), g.TotalPoints())
			}
			// Two replacement cells plus the appended row
			row, _ := g.Row(g.FirstRowIndex())
			wantCalls := before + 2 + (row.MaxX() - row.MinX() + 1)
			if view.calls != wantCalls {
				t.Errorf("view calls = %d, expected %d", view.calls, wantCalls)
			}
		})
	}
}

func TestCollectCellDirectly(t *testing.T) {
	g, _ := newTestGame(t, calmRand)
	rowIndex := g.RaftRowIndex() + 3
	for _, k := range []CellKind{Rock, Mine, LeftBank, DryLand} {
		forceCell(t, g, rowIndex, 4, k)
		c, _ := g.Cell(rowIndex, 4)
		c.collect()
		got, _ := g.Cell(rowIndex, 4)
		if got.Kind() != WaterOnly {
			t.Errorf("collecting %s left %s, expected WaterOnly", k, got.Kind())
		}
		if got.Row().Index() != rowIndex || got.X() != 4 {
			t.Errorf("replacement cell at row %d x=%d", got.Row().Index(), got.X())
		}
	}

	// Outside the stored cells nothing happens
	row, _ := g.Row(rowIndex)
	row.CollectCell(row.MaxX() + 10)
}

func TestConsumePatchesBoundary(t *testing.T) {
	tests := []struct {
		name        string
		consume     int
		wantPatches int
		wantCause   Cause
	}{
		{"fewer than remaining", 19, 1, CauseNone},
		{"exactly remaining", 20, 0, CauseSank},
		{"more than remaining", 25, 0, CauseSank},
		{"none", 0, 20, CauseNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGame(t, calmRand)
			g.ConsumePatches(tc.consume)
			if g.RemainingPatches() != tc.wantPatches {
				t.Errorf("RemainingPatches() = %d, expected %d", g.RemainingPatches(), tc.wantPatches)
			}
			if g.Cause() != tc.wantCause {
				t.Errorf("Cause() = %s, expected %s", g.Cause(), tc.wantCause)
			}
		})
	}
}

func TestScorePointsSigned(t *testing.T) {
	g, _ := newTestGame(t, calmRand)
	g.ScorePoints(5)
	g.ScorePoints(-8)
	if g.TotalPoints() != -3 {
		t.Errorf("TotalPoints() = %d, expected -3", g.TotalPoints())
	}
}

func TestWindowSizeConstantAcrossAdvances(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g := newSeededGame(t, seed)
		want := g.Config().VisibleRows()
		for !g.IsOver() && g.CountAdvances() < 600 {
			g.Advance(g.AutoSteer())

			if g.CountVisibleRows() != want {
				t.Fatalf("seed %d advance %d: %d live rows, expected %d",
					seed, g.CountAdvances(), g.CountVisibleRows(), want)
			}
			if _, ok := g.Row(g.LastRowIndex()); !ok {
				t.Fatalf("seed %d: last row %d not live", seed, g.LastRowIndex())
			}
			if _, ok := g.Row(g.FirstRowIndex()); !ok {
				t.Fatalf("seed %d: first row %d not live", seed, g.FirstRowIndex())
			}
			if g.LastRowIndex() > 0 {
				if _, ok := g.Row(g.LastRowIndex() - 1); ok {
					t.Fatalf("seed %d: evicted row %d still live", seed, g.LastRowIndex()-1)
				}
			}
			if _, ok := g.Row(g.FirstRowIndex() + 1); ok {
				t.Fatalf("seed %d: row %d beyond lookahead is live", seed, g.FirstRowIndex()+1)
			}
		}
		if g.TotalPoints() != g.CountAdvances() {
			t.Errorf("seed %d: %d points for %d advances", seed, g.TotalPoints(), g.CountAdvances())
		}
	}
}

func TestAdvancePreconditions(t *testing.T) {
	g, _ := newTestGame(t, calmRand)
	expectPanic(t, "delta X +2", func() { g.Advance(2) })
	expectPanic(t, "delta X -2", func() { g.Advance(-2) })
	expectPanic(t, "negative row lookup", func() { g.Row(-1) })
	expectPanic(t, "terminate without cause", func() { g.Terminate(CauseNone) })
	expectPanic(t, "zero interval", func() { g.SetAdvanceInterval(0) })

	if g.CountAdvances() != 0 {
		t.Errorf("rejected advances should not count, got %d", g.CountAdvances())
	}
}

func TestAdvanceShiftsRaft(t *testing.T) {
	g, _ := newTestGame(t, calmRand)
	g.Advance(-1)
	g.Advance(-1)
	g.Advance(+1)
	if g.RaftLeftX() != -2 {
		t.Errorf("RaftLeftX() = %d, expected -2", g.RaftLeftX())
	}
	if g.RaftRowIndex() != 5 {
		t.Errorf("RaftRowIndex() = %d, expected 5", g.RaftRowIndex())
	}
}

func TestMissingLookups(t *testing.T) {
	g, _ := newTestGame(t, calmRand)
	if _, ok := g.Row(g.FirstRowIndex() + 1); ok {
		t.Error("row beyond lookahead should be absent")
	}
	if _, ok := g.Cell(g.RaftRowIndex(), 1000); ok {
		t.Error("cell far outside the row should be absent")
	}
	if _, ok := g.Cell(g.FirstRowIndex()+5, 0); ok {
		t.Error("cell in an absent row should be absent")
	}
}

func TestScrollingFraction(t *testing.T) {
	g, clock := newTestGame(t, calmRand)

	check := func(want float64) {
		t.Helper()
		if got := g.ScrollingFraction(); !nearly(got, want) {
			t.Errorf("ScrollingFraction() = %v, expected %v", got, want)
		}
	}

	check(1)
	clock.Advance(200 * time.Millisecond)
	check(0.5)
	clock.Advance(300 * time.Millisecond)
	check(-0.25)

	// The next ideal advance is one interval after the previous ideal one
	g.Advance(0)
	check(0.75)
}

func TestSetAdvanceIntervalBeforeFirstAdvance(t *testing.T) {
	g, clock := newTestGame(t, calmRand)
	g.SetAdvanceInterval(100 * time.Millisecond)
	clock.Advance(50 * time.Millisecond)
	if got := g.ScrollingFraction(); !nearly(got, 0.5) {
		t.Errorf("ScrollingFraction() = %v, expected 0.5", got)
	}
	if g.AdvanceInterval() != 100*time.Millisecond {
		t.Errorf("AdvanceInterval() = %v, expected 100ms", g.AdvanceInterval())
	}
}

func TestElapsedFreezesAtEnd(t *testing.T) {
	g, clock := newTestGame(t, calmRand)
	clock.Advance(1500 * time.Millisecond)
	if got := g.ElapsedSeconds(); !nearly(got, 1.5) {
		t.Errorf("ElapsedSeconds() = %v, expected 1.5", got)
	}

	forceCell(t, g, g.RaftRowIndex()+1, g.RaftLeftX(), Mine)
	clock.Advance(500 * time.Millisecond)
	g.Advance(0)

	clock.Advance(10 * time.Second)
	if got := g.ElapsedSeconds(); !nearly(got, 2.0) {
		t.Errorf("ElapsedSeconds() after end = %v, expected 2.0", got)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newSeededGame(t, 12345)
		for !g.IsOver() && g.CountAdvances() < 2000 {
			g.Advance(g.AutoSteer())
		}
		s := g.Snapshot()
		s.Elapsed = 0
		return s
	}

	s1, s2 := run(), run()
	if s1 != s2 {
		t.Errorf("Determinism failed: %+v vs %+v", s1, s2)
	}
}

func TestAutoSteerAvoidsMine(t *testing.T) {
	g, _ := newTestGame(t, calmRand)
	next := g.RaftRowIndex() + 1
	forceCell(t, g, next, g.RaftLeftX(), Mine)

	dx := g.AutoSteer()
	if dx != +1 {
		t.Errorf("AutoSteer() = %d, expected +1", dx)
	}
	if cause := g.Advance(dx); cause != CauseNone {
		t.Errorf("steered advance ended the round: %s", cause)
	}
}

func TestCauseStrings(t *testing.T) {
	tests := []struct {
		cause Cause
		want  string
	}{
		{CauseNone, "none"},
		{CauseGrounded, "grounded"},
		{CauseBoom, "boom"},
		{CauseSank, "sank"},
	}
	for _, tc := range tests {
		if got := tc.cause.String(); got != tc.want {
			t.Errorf("%d.String() = %q, expected %q", int(tc.cause), got, tc.want)
		}
	}
	if CauseNone.Message() != "" || CauseBoom.Message() == "" {
		t.Error("only ended rounds have a message")
	}
}
