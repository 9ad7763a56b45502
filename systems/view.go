package systems

import (
	"strconv"

	"github.com/automoto/typefall/components"
	"github.com/yohamta/donburi"
)

// WordView is what a renderer needs to draw one word: two independently
// colored spans, a position (origin at viewport center, +Y up) and alpha.
type WordView struct {
	ID        uint64
	State     components.WordState
	Matched   string
	Remaining string
	X, Y      float64
	Alpha     float64
}

// HUDView carries the player state as displayable strings.
type HUDView struct {
	Level     string
	Score     string
	Completed string
	Misses    string
}

// WordViews returns a view of every live word, floating words first so the
// active word is drawn on top.
func (g *Game) WordViews() []WordView {
	var views []WordView
	collect := func(e *donburi.Entry, w *components.WordData) {
		alpha := w.Alpha
		if w.State == components.Falling {
			alpha = 1
		}
		views = append(views, WordView{
			ID:        w.ID,
			State:     w.State,
			Matched:   string(w.Matched),
			Remaining: string(w.Remaining),
			X:         w.Position.X,
			Y:         w.Position.Y,
			Alpha:     alpha,
		})
	}
	EachInState(g.World, components.FloatingAway, collect)
	EachInState(g.World, components.Falling, collect)
	return views
}

// HUD returns the player state formatted for display.
func (g *Game) HUD() HUDView {
	p := g.Player()
	return HUDView{
		Level:     strconv.Itoa(p.Level),
		Score:     strconv.Itoa(p.Score),
		Completed: strconv.Itoa(p.Completed),
		Misses:    strconv.Itoa(p.Misses),
	}
}

// ToScreen converts a centered, +Y-up position into top-left, +Y-down
// screen coordinates.
func ToScreen(x, y, width, height float64) (float64, float64) {
	return width/2 + x, height/2 - y
}
