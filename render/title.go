package render

import (
	"image/color"
	"strconv"

	"github.com/automoto/typefall/components"
	cfg "github.com/automoto/typefall/config"
	"github.com/automoto/typefall/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawTitle renders the title screen with the selected starting level
func DrawTitle(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Title.First(e.World)
	if !ok {
		return
	}
	title := components.Title.Get(entry)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Title.BackgroundColor,
		false,
	)

	drawCentered(screen, cfg.C.Title, fonts.Title.Get(), width, int(cfg.Title.TitleY), cfg.Title.TitleColor)

	for i := 1; i <= title.Levels; i++ {
		clr := cfg.Title.TextColor
		if i == title.Level {
			clr = cfg.Title.SelectedColor
		}
		label := "Level " + strconv.Itoa(i)
		face := fonts.HUD.Get()
		lineHeight := face.Metrics().Height.Ceil()
		drawCentered(screen, label, face, width, int(cfg.Title.LevelY)+(i-1)*lineHeight*2, clr)
	}

	drawCentered(screen, "Left/Right: Level   Enter: Start   F11: Fullscreen   Esc: Quit",
		fonts.Hint.Get(), width, int(cfg.Title.HintY), cfg.Title.TextColor)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, width float64, y int, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, int(width)/2-w/2, y, clr)
}
