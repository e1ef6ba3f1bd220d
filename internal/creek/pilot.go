package creek

// Penalties used by AutoSteer when scoring a candidate shift.
const (
	penaltyFatal = 1000 // mine or bank under the raft
	penaltyRock  = 10
)

// AutoSteer picks the shift for the next advance: it avoids mines and banks
// in the row ahead, then rocks, and otherwise drifts toward the creek centre.
// Ties prefer holding course. It returns 0 once the round is over.
func (g *Game) AutoSteer() int {
	if g.IsOver() {
		return 0
	}
	ahead, ok := g.rows.get(g.raftRowIndex + 1)
	if !ok {
		return 0
	}
	centre := (ahead.leftBankX + ahead.rightBankX) / 2

	best, bestCost := 0, -1
	for _, dx := range [...]int{0, -1, +1} {
		left := g.raftLeftX + dx
		cost := 0
		for x := left; x < left+g.cfg.Creek.RaftWidth; x++ {
			c, ok := ahead.Cell(x)
			if !ok {
				cost += penaltyFatal
				continue
			}
			switch c.kind {
			case Mine, LeftBank, RightBank:
				cost += penaltyFatal
			case Rock:
				cost += penaltyRock
			}
		}
		mid := left + g.cfg.Creek.RaftWidth/2
		cost += abs(mid - centre)

		if bestCost < 0 || cost < bestCost {
			best, bestCost = dx, cost
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
