package creek

import (
	"fmt"
	"math"

	"github.com/vovakirdan/fuze-creek/internal/config"
)

// maxDeltaDraws bounds the rejection loop for bank shifts. With the default
// widths nearly every draw is accepted; the cap only matters if the width
// limits are ever configured so tightly that no shift pair fits.
const maxDeltaDraws = 1000

// Generator builds rows of the creek one at a time.
type Generator struct {
	shape   config.CreekShape
	hazards config.CreekHazards
	rng     Rand
	view    View
}

// NewGenerator creates a row generator. rng and view are required.
func NewGenerator(cfg config.CreekConfig, rng Rand, view View) *Generator {
	if rng == nil {
		panic("creek: generator requires a random source")
	}
	if view == nil {
		panic("creek: generator requires a view")
	}
	return &Generator{
		shape:   cfg.Creek,
		hazards: cfg.Hazards,
		rng:     rng,
		view:    view,
	}
}

// NumFunnelRows returns how many leading rows narrow deterministically.
func (g *Generator) NumFunnelRows() int {
	return (g.shape.MaxWidth - g.shape.MinWidth) / 2
}

// HazardProbabilities returns the rock and mine probabilities for a row.
// Rows close to the raft's starting position are always clear.
func (g *Generator) HazardProbabilities(rowIndex int) (rock, mine float64) {
	if rowIndex < g.shape.UpstreamRows+g.shape.ClearRows {
		return 0, 0
	}
	limit := g.hazards.MaxProbability
	rock = math.Min(g.hazards.RockRate*float64(rowIndex), limit)
	mine = math.Min(g.hazards.MineRate*float64(rowIndex), limit)
	return rock, mine
}

// GenerateRow builds row rowIndex. upstream must be row rowIndex-1 for every
// row past the funnel, and may be nil only for row 0.
func (g *Generator) GenerateRow(rowIndex int, upstream *Row) *Row {
	if rowIndex < 0 {
		panic(fmt.Sprintf("creek: negative row index %d", rowIndex))
	}
	if upstream != nil && upstream.index != rowIndex-1 {
		panic(fmt.Sprintf("creek: row %d built from row %d", rowIndex, upstream.index))
	}

	spec := rowSpec{
		index:            rowIndex,
		minInteriorWidth: g.shape.MinWidth,
	}
	spec.rockProbability, spec.mineProbability = g.HazardProbabilities(rowIndex)

	if rowIndex < g.NumFunnelRows() {
		g.funnelBanks(&spec)
	} else {
		if upstream == nil {
			panic(fmt.Sprintf("creek: row %d requires its upstream row", rowIndex))
		}
		g.randomBanks(&spec, upstream)
	}

	if upstream != nil {
		spec.leftUpstreamDX = spec.leftBankX - upstream.leftBankX
		spec.rightUpstreamDX = spec.rightBankX - upstream.rightBankX
	}

	return newRow(spec, g.rng, g.view)
}

// funnelBanks narrows the creek by one interior cell per row, centred on
// map-X 0. The last funnel row keeps its width for the row after it.
func (g *Generator) funnelBanks(spec *rowSpec) {
	width := g.shape.MaxWidth - spec.index
	spec.leftBankX, spec.rightBankX = centredBanks(width)

	if spec.index < g.NumFunnelRows()-1 {
		nextLeft, nextRight := centredBanks(width - 1)
		spec.leftDeltaX = nextLeft - spec.leftBankX
		spec.rightDeltaX = nextRight - spec.rightBankX
	}
}

// centredBanks returns bank coordinates for an interior width centred on 0.
func centredBanks(width int) (left, right int) {
	left = -width / 2
	right = left + width + 1
	return left, right
}

// randomBanks continues the banks from upstream and draws each bank's next
// shift uniformly from {-1, 0, +1}, redrawing both until the next row's width
// stays within limits.
func (g *Generator) randomBanks(spec *rowSpec, upstream *Row) {
	spec.leftBankX = upstream.leftBankX + upstream.leftDeltaX
	spec.rightBankX = upstream.rightBankX + upstream.rightDeltaX
	width := spec.rightBankX - spec.leftBankX - 1

	for i := 0; i < maxDeltaDraws; i++ {
		dl := g.rng.Intn(3) - 1
		dr := g.rng.Intn(3) - 1
		next := width + dr - dl
		if next >= g.shape.MinWidth && next <= g.shape.MaxWidth {
			spec.leftDeltaX, spec.rightDeltaX = dl, dr
			return
		}
	}
	// Width is already within limits, so holding both banks steady is valid.
	spec.leftDeltaX, spec.rightDeltaX = 0, 0
}
