package render

import (
	cfg "github.com/automoto/typefall/config"
	"github.com/automoto/typefall/fonts"
	"github.com/automoto/typefall/render/pulse"
	"github.com/automoto/typefall/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// HUD draws level, score and word counters in the top-left corner. The score
// pulses (scales up and eases back) whenever it changes.
type HUD struct {
	game   *systems.Game
	pulse  *pulse.Pulse
	drawOp *ebiten.DrawImageOptions
}

func NewHUD(game *systems.Game) *HUD {
	return &HUD{
		game:   game,
		pulse:  pulse.New(game.Player().Score, cfg.UI.PulseScale, cfg.UI.PulseDuration),
		drawOp: &ebiten.DrawImageOptions{},
	}
}

// Update advances the score pulse. Must run after the frame step so a
// completion is reflected in the same frame.
func (h *HUD) Update(_ *ecs.ECS) {
	h.pulse.Advance(h.game.Player().Score, 1/float32(ebiten.TPS()))
}

func (h *HUD) Draw(_ *ecs.ECS, screen *ebiten.Image) {
	face := fonts.HUD.Get()
	view := h.game.HUD()
	margin := cfg.UI.HUDMargin
	lineHeight := face.Metrics().Height.Ceil()

	text.Draw(screen, "Level "+view.Level, face, margin, margin+lineHeight, cfg.UI.HUDColor)
	text.Draw(screen, "Words "+view.Completed+"  Missed "+view.Misses, face, margin, margin+lineHeight*3, cfg.UI.HUDColor)

	label := "Score "
	labelWidth := font.MeasureString(face, label).Ceil()
	y := margin + lineHeight*2
	text.Draw(screen, label, face, margin, y, cfg.UI.HUDColor)

	clr := cfg.UI.HUDColor
	if h.pulse.Active() {
		clr = cfg.UI.PulseColor
	}
	h.drawOp.GeoM.Reset()
	h.drawOp.ColorScale.Reset()
	h.drawOp.GeoM.Scale(float64(h.pulse.Scale()), float64(h.pulse.Scale()))
	h.drawOp.GeoM.Translate(float64(margin+labelWidth), float64(y))
	h.drawOp.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, view.Score, face, h.drawOp)
}
