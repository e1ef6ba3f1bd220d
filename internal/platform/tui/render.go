package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fuze-creek/internal/core"
	"github.com/vovakirdan/fuze-creek/internal/creek"
)

const (
	// maxCreekColumns caps how many map columns are drawn around the raft.
	maxCreekColumns = 70
	// minCreekColumns is the narrowest creek drawn before the HUD gives way.
	minCreekColumns = 24
	// hudColumns is reserved right of the creek, wide enough for
	// "99999 points, 99 patches remaining".
	hudColumns = 35
)

// creekColumns returns how many map columns fit beside the HUD.
func creekColumns(width int) int {
	return min(width, core.Clamp(width-hudColumns, minCreekColumns, maxCreekColumns))
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorWater:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorDryLand: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBank:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorRock:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorMine:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorRaft:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorHUD:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorAlert:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// DrawCreek draws the live rows of g into s, furthest downstream at the
// top. Columns are centred on the raft; the HUD follows the raft's row.
func DrawCreek(s *core.Screen, g *creek.Game, best int) {
	s.Clear()

	columns := creekColumns(s.Width())
	leftX := g.RaftLeftX() - columns/2
	raft := core.NewRect(g.RaftLeftX(), g.RaftRowIndex(), g.Config().Creek.RaftWidth, 1)

	y := 0
	for rowIndex := g.FirstRowIndex(); rowIndex >= g.LastRowIndex(); rowIndex-- {
		if y >= s.Height() {
			break
		}
		row, ok := g.Row(rowIndex)
		for col := 0; col < columns; col++ {
			x := leftX + col
			glyph := glyphDryLand
			if ok {
				glyph = cellGlyph(row.Cell(x))
			}
			if raft.Contains(x, rowIndex) {
				glyph = core.Cell{Rune: raftRune(x - g.RaftLeftX()), Color: core.ColorRaft}
			}
			s.SetCell(col, y, glyph)
		}
		if rowIndex == g.RaftRowIndex() {
			s.DrawText(columns+1, y, ScoreLine(g.TotalPoints(), g.RemainingPatches()), core.ColorHUD)
			if best > 0 {
				s.DrawText(columns+1, y+1, fmt.Sprintf("best %d", best), core.ColorHUD)
			}
		}
		y++
	}

	if g.IsOver() {
		drawGameOver(s, g, columns)
	}
}

// raftRune returns the raft character for the i-th raft cell.
func raftRune(i int) rune {
	r := []rune(raftGlyphs)
	if i < len(r) {
		return r[i]
	}
	return '='
}

func drawGameOver(s *core.Screen, g *creek.Game, columns int) {
	lines := []string{
		g.Cause().Message(),
		FinalScoreLine(g.TotalPoints()),
		"r restart  q quit",
	}
	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	box := core.CenteredRect(columns, s.Height(), w+4, len(lines)+2)
	s.DrawRect(box, ' ', core.ColorAlert)
	s.DrawBox(box, core.ColorAlert)
	for i, l := range lines {
		s.DrawText(box.X+2, box.Y+1+i, l, core.ColorAlert)
	}
}

// ScoreLine is the HUD shown beside the raft.
func ScoreLine(points, patches int) string {
	return fmt.Sprintf("%d point%s, %d patch%s remaining",
		points, plural(points, "", "s"), patches, plural(patches, "", "es"))
}

// FinalScoreLine is printed when a round ends.
func FinalScoreLine(points int) string {
	return fmt.Sprintf("Your final score: %d point%s", points, plural(points, "", "s"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// centerText pads text on the left to center it in width columns.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
