package creek

import "fmt"

// Row is one cross-section of the creek.
// Map-X coordinate x lives at cells[x+x0Index]; the array spans two dry-land
// cells beyond each bank.
type Row struct {
	index       int
	cells       []*Cell
	x0Index     int
	leftBankX   int
	rightBankX  int
	leftDeltaX  int
	rightDeltaX int
	view        View
}

// rowSpec carries everything needed to build a Row.
type rowSpec struct {
	index            int
	leftBankX        int
	rightBankX       int
	leftDeltaX       int
	rightDeltaX      int
	leftUpstreamDX   int
	rightUpstreamDX  int
	rockProbability  float64
	mineProbability  float64
	minInteriorWidth int
}

const (
	leftMargin  = 2 // dry-land cells stored beyond each bank
	extraCells  = 2 + 2*leftMargin
	bankDeltaLo = -1
	bankDeltaHi = +1
)

// newRow builds a row, drawing interior contents from rng and handing every
// new cell to view before it is stored.
func newRow(spec rowSpec, rng Rand, view View) *Row {
	if spec.index < 0 {
		panic(fmt.Sprintf("creek: negative row index %d", spec.index))
	}
	if spec.leftBankX >= spec.rightBankX {
		panic(fmt.Sprintf("creek: left bank %d must be left of right bank %d", spec.leftBankX, spec.rightBankX))
	}
	width := spec.rightBankX - spec.leftBankX - 1
	if width < spec.minInteriorWidth {
		panic(fmt.Sprintf("creek: row %d interior width %d below minimum %d", spec.index, width, spec.minInteriorWidth))
	}
	checkDelta("left delta X", spec.leftDeltaX)
	checkDelta("right delta X", spec.rightDeltaX)
	checkFraction("rock probability", spec.rockProbability)
	checkFraction("mine probability", spec.mineProbability)

	numCells := width + extraCells
	r := &Row{
		index:       spec.index,
		cells:       make([]*Cell, numCells),
		x0Index:     leftMargin - spec.leftBankX,
		leftBankX:   spec.leftBankX,
		rightBankX:  spec.rightBankX,
		leftDeltaX:  spec.leftDeltaX,
		rightDeltaX: spec.rightDeltaX,
		view:        view,
	}

	hazardProbability := spec.rockProbability + spec.mineProbability
	for i := range r.cells {
		x := i - r.x0Index
		var c *Cell
		switch {
		case x == spec.leftBankX:
			c = newCell(r, LeftBank, x)
			c.downstreamDeltaX = spec.leftDeltaX
			c.upstreamDeltaX = spec.leftUpstreamDX
		case x == spec.rightBankX:
			c = newCell(r, RightBank, x)
			c.downstreamDeltaX = spec.rightDeltaX
			c.upstreamDeltaX = spec.rightUpstreamDX
		case x < spec.leftBankX || x > spec.rightBankX:
			c = newCell(r, DryLand, x)
		default:
			// Mine is checked first, so the two probabilities are not symmetric.
			v := rng.Float64()
			switch {
			case v < spec.mineProbability:
				c = newCell(r, Mine, x)
			case v < hazardProbability:
				c = newCell(r, Rock, x)
			default:
				c = newCell(r, WaterOnly, x)
			}
		}
		view.InitializeCellViewData(c)
		r.cells[i] = c
	}
	return r
}

func checkDelta(what string, d int) {
	if d < bankDeltaLo || d > bankDeltaHi {
		panic(fmt.Sprintf("creek: %s %d outside [-1, +1]", what, d))
	}
}

func checkFraction(what string, p float64) {
	if !(p >= 0 && p <= 1) {
		panic(fmt.Sprintf("creek: %s %v outside [0, 1]", what, p))
	}
}

// Index returns the row index (0 is the first row of the round).
func (r *Row) Index() int {
	return r.index
}

// LeftBankX returns the map-X coordinate of the left bank.
func (r *Row) LeftBankX() int {
	return r.leftBankX
}

// RightBankX returns the map-X coordinate of the right bank.
func (r *Row) RightBankX() int {
	return r.rightBankX
}

// Width returns the number of interior cells between the banks.
func (r *Row) Width() int {
	return r.rightBankX - r.leftBankX - 1
}

// LeftDeltaX returns the left bank's shift into the next row downstream.
func (r *Row) LeftDeltaX() int {
	return r.leftDeltaX
}

// RightDeltaX returns the right bank's shift into the next row downstream.
func (r *Row) RightDeltaX() int {
	return r.rightDeltaX
}

// MinX returns the lowest map-X coordinate stored in the row.
func (r *Row) MinX() int {
	return -r.x0Index
}

// MaxX returns the highest map-X coordinate stored in the row.
func (r *Row) MaxX() int {
	return len(r.cells) - 1 - r.x0Index
}

// Cell returns the cell at map-X coordinate x.
// The second result is false when x lies outside the stored cells; callers
// treat such positions as dry land.
func (r *Row) Cell(x int) (*Cell, bool) {
	i := x + r.x0Index
	if i < 0 || i >= len(r.cells) {
		return nil, false
	}
	return r.cells[i], true
}

// CollectCell replaces the cell at x with plain water.
// Positions outside the row are ignored.
func (r *Row) CollectCell(x int) {
	i := x + r.x0Index
	if i < 0 || i >= len(r.cells) {
		return
	}
	c := newCell(r, WaterOnly, x)
	r.view.InitializeCellViewData(c)
	r.cells[i] = c
}

// CountKind returns how many cells of the row hold kind k.
func (r *Row) CountKind(k CellKind) int {
	n := 0
	for _, c := range r.cells {
		if c.kind == k {
			n++
		}
	}
	return n
}
