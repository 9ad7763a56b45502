package tty

import (
	"fmt"
	"image/color"
	"math"

	cfg "github.com/automoto/typefall/config"
	"github.com/automoto/typefall/systems"
	"github.com/gdamore/tcell/v2"
)

// Cell maps a world position onto a cols x rows grid. The game runs in the
// configured logical viewport and the terminal scales it, so fall speed does
// not depend on the terminal size.
func Cell(x, y, width, height float64, cols, rows int) (int, int) {
	sx, sy := systems.ToScreen(x, y, width, height)
	col := int(math.Floor(sx / width * float64(cols)))
	row := int(math.Floor(sy / height * float64(rows)))
	return col, row
}

// Dim scales c toward black by alpha.
func Dim(c color.RGBA, alpha float64) tcell.Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return tcell.NewRGBColor(
		int32(float64(c.R)*alpha),
		int32(float64(c.G)*alpha),
		int32(float64(c.B)*alpha),
	)
}

// Draw renders every word and the HUD line.
func Draw(s tcell.Screen, g *systems.Game) {
	s.Clear()
	cols, rows := s.Size()
	vp := g.Viewport()

	for _, w := range g.WordViews() {
		matched := []rune(w.Matched)
		remaining := []rune(w.Remaining)
		col, row := Cell(w.X, w.Y, vp.Width, vp.Height, cols, rows)
		col -= (len(matched) + len(remaining)) / 2

		ms := tcell.StyleDefault.Foreground(Dim(cfg.UI.MatchedColor, w.Alpha)).Bold(true)
		rs := tcell.StyleDefault.Foreground(Dim(cfg.UI.RemainingColor, w.Alpha))
		col = drawText(s, col, row, cols, rows, matched, ms)
		drawText(s, col, row, cols, rows, remaining, rs)
	}

	hud := g.HUD()
	line := fmt.Sprintf("Level %s  Score %s  Words %s  Missed %s  (Esc quits)", hud.Level, hud.Score, hud.Completed, hud.Misses)
	drawText(s, 0, 0, cols, rows, []rune(line), tcell.StyleDefault.Foreground(Dim(cfg.UI.HUDColor, 1)))

	s.Show()
}

// drawText writes runes left to right, clipping to the grid, and returns the
// column after the last rune.
func drawText(s tcell.Screen, col, row, cols, rows int, text []rune, style tcell.Style) int {
	for _, r := range text {
		if col >= 0 && col < cols && row >= 0 && row < rows {
			s.SetContent(col, row, r, nil, style)
		}
		col++
	}
	return col
}
