// Package render draws the typing core's views with ebiten.
package render

import (
	"image/color"

	cfg "github.com/automoto/typefall/config"
	"github.com/automoto/typefall/fonts"
	"github.com/automoto/typefall/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// NewDrawWords returns a renderer drawing every live word as a highlighted
// matched span followed by the remaining span, centered on its position.
func NewDrawWords(game *systems.Game) func(*ecs.ECS, *ebiten.Image) {
	return func(_ *ecs.ECS, screen *ebiten.Image) {
		face := fonts.Word.Get()
		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())
		ascent := face.Metrics().Ascent.Ceil()

		for _, w := range game.WordViews() {
			if w.Alpha <= 0 {
				continue
			}
			sx, sy := systems.ToScreen(w.X, w.Y, width, height)
			matchedWidth := font.MeasureString(face, w.Matched).Ceil()
			totalWidth := font.MeasureString(face, w.Matched+w.Remaining).Ceil()

			x := int(sx) - totalWidth/2
			y := int(sy) + ascent/2
			if w.Matched != "" {
				text.Draw(screen, w.Matched, face, x, y, WithAlpha(cfg.UI.MatchedColor, w.Alpha))
			}
			if w.Remaining != "" {
				text.Draw(screen, w.Remaining, face, x+matchedWidth, y, WithAlpha(cfg.UI.RemainingColor, w.Alpha))
			}
		}
	}
}

// WithAlpha returns c with its opacity multiplied by alpha (clamped to [0,1]).
func WithAlpha(c color.RGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * alpha)}
}
