// Package creek implements the rules and state of Fuze Creek: a procedurally
// generated river that a raft descends one row at a time.
// It has no terminal, storage, or logging dependencies so that every
// front-end drives the same engine.
package creek

import "fmt"

// CellKind identifies what occupies a single grid position.
type CellKind uint8

const (
	DryLand CellKind = iota
	WaterOnly
	Rock
	Mine
	LeftBank
	RightBank

	numCellKinds
)

// String returns a human-readable name for the kind.
func (k CellKind) String() string {
	switch k {
	case DryLand:
		return "DryLand"
	case WaterOnly:
		return "WaterOnly"
	case Rock:
		return "Rock"
	case Mine:
		return "Mine"
	case LeftBank:
		return "LeftBank"
	case RightBank:
		return "RightBank"
	default:
		return fmt.Sprintf("CellKind(%d)", uint8(k))
	}
}

// IsBank reports whether the kind is one of the two bank kinds.
func (k CellKind) IsBank() bool {
	return k == LeftBank || k == RightBank
}

// Cell is one grid element of a Row.
// Bank cells additionally carry their shift into the next row downstream and
// the shift from the row upstream.
type Cell struct {
	kind CellKind
	x    int
	row  *Row

	downstreamDeltaX int
	upstreamDeltaX   int

	viewData any
}

func newCell(row *Row, kind CellKind, x int) *Cell {
	if row == nil {
		panic("creek: cell requires a row")
	}
	return &Cell{kind: kind, x: x, row: row}
}

// Kind returns the cell's variant.
func (c *Cell) Kind() CellKind {
	return c.kind
}

// X returns the map-X coordinate of the cell.
func (c *Cell) X() int {
	return c.x
}

// Row returns the row that owns the cell.
func (c *Cell) Row() *Row {
	return c.row
}

// DownstreamDeltaX returns a bank's shift between this row and the next one
// downstream. It is 0 for non-bank cells.
func (c *Cell) DownstreamDeltaX() int {
	return c.downstreamDeltaX
}

// UpstreamDeltaX returns the shift of the same bank between the row
// immediately upstream and this row (0 for row 0 and for non-bank cells).
func (c *Cell) UpstreamDeltaX() int {
	return c.upstreamDeltaX
}

// ViewData returns the opaque payload attached by the view.
func (c *Cell) ViewData() any {
	return c.viewData
}

// SetViewData attaches an opaque payload owned by the view.
func (c *Cell) SetViewData(data any) {
	c.viewData = data
}

// collideFunc applies the effect of the raft passing directly over a cell.
type collideFunc func(g *Game, c *Cell)

// collideTable dispatches collisions by kind. Kinds without an entry are inert.
var collideTable = [numCellKinds]collideFunc{
	Rock: func(g *Game, _ *Cell) {
		g.ConsumePatches(1)
	},
	Mine: func(g *Game, _ *Cell) {
		g.Terminate(CauseBoom)
	},
	LeftBank: func(g *Game, _ *Cell) {
		g.Terminate(CauseGrounded)
	},
	RightBank: func(g *Game, _ *Cell) {
		g.Terminate(CauseGrounded)
	},
}

// collide resolves the raft passing directly over c.
func (c *Cell) collide(g *Game) {
	if fn := collideTable[c.kind]; fn != nil {
		fn(g, c)
	}
}

// collect resolves the raft passing alongside c. Whatever the cell held is
// replaced by plain water, with no points awarded.
func (c *Cell) collect() {
	c.row.CollectCell(c.x)
}
