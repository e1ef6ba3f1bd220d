package creek

import "time"

// Snapshot captures the player-visible state of a round for determinism
// testing and run records.
type Snapshot struct {
	Advances     int
	Score        int
	Patches      int
	RaftLeftX    int
	RaftRowIndex int
	Cause        Cause
	Elapsed      time.Duration

	// Banks of the raft's row.
	LeftBankX  int
	RightBankX int
}

// Snapshot returns the current round snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Advances:     g.advances,
		Score:        g.points,
		Patches:      g.patches,
		RaftLeftX:    g.raftLeftX,
		RaftRowIndex: g.raftRowIndex,
		Cause:        g.cause,
		Elapsed:      g.Elapsed(),
	}
	if row, ok := g.rows.get(g.raftRowIndex); ok {
		s.LeftBankX = row.leftBankX
		s.RightBankX = row.rightBankX
	}
	return s
}
