package tui

import (
	"fmt"

	"github.com/vovakirdan/fuze-creek/internal/core"
	"github.com/vovakirdan/fuze-creek/internal/creek"
)

// Glyphs for cells that don't depend on their neighbours.
var (
	glyphDryLand = core.Cell{Rune: ':', Color: core.ColorDryLand}
	glyphWater   = core.Cell{Rune: ' ', Color: core.ColorWater}
	glyphRock    = core.Cell{Rune: '.', Color: core.ColorRock}
	glyphMine    = core.Cell{Rune: '0', Color: core.ColorMine}
)

// raftGlyphs is drawn over the raft's cells, left to right.
const raftGlyphs = "[]"

// CellView gives each new cell its console glyph.
type CellView struct{}

var _ creek.View = CellView{}

// InitializeCellViewData stores a core.Cell in the cell's view data.
func (CellView) InitializeCellViewData(c *creek.Cell) {
	c.SetViewData(glyphFor(c))
}

func glyphFor(c *creek.Cell) core.Cell {
	switch c.Kind() {
	case creek.DryLand:
		return glyphDryLand
	case creek.WaterOnly:
		return glyphWater
	case creek.Rock:
		return glyphRock
	case creek.Mine:
		return glyphMine
	case creek.LeftBank, creek.RightBank:
		return core.Cell{
			Rune:  bankRune(c.UpstreamDeltaX(), c.DownstreamDeltaX()),
			Color: core.ColorBank,
		}
	default:
		panic(fmt.Sprintf("tui: no glyph for %s", c.Kind()))
	}
}

// bankRune picks the bank character from the bank's shift since the row
// upstream and its shift into the row downstream.
func bankRune(upstreamDX, downstreamDX int) rune {
	switch upstreamDX {
	case -1:
		switch downstreamDX {
		case -1:
			return '\\'
		case +1:
			return '<'
		default:
			return 'L'
		}
	case +1:
		if downstreamDX < 0 {
			return '>'
		}
		return '/'
	default:
		if downstreamDX == 0 {
			return '|'
		}
		return 'Y'
	}
}

// cellGlyph returns the glyph stored on a cell, or dry land for an absent cell.
func cellGlyph(c *creek.Cell, ok bool) core.Cell {
	if !ok {
		return glyphDryLand
	}
	if g, ok := c.ViewData().(core.Cell); ok {
		return g
	}
	return glyphFor(c)
}
