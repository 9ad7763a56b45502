package systems

import (
	"github.com/automoto/typefall/components"
	"github.com/automoto/typefall/config"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

// UpdateMotion advances every word by dt seconds.
//
// Falling words descend at a constant speed. A falling word that drops past
// the bottom edge is missed: it is removed and replaced.
//
// Floating words drift and fade while they are on screen or still visible;
// once off screen and fully transparent they are removed. The fade is applied
// per frame, not per second.
//
// Removals and replacements are queued on g.Commands.
func UpdateMotion(g *Game, dt float64) {
	vp := *g.Viewport()
	bottom := -vp.Height/2 - config.Motion.MissMargin

	var missed []components.WordMissedEvent

	EachInState(g.World, components.Falling, func(e *donburi.Entry, w *components.WordData) {
		w.Position.Y -= config.Motion.FallSpeed * dt
		if w.Position.Y < bottom {
			missed = append(missed, components.WordMissedEvent{ID: w.ID, Word: w.Word})
			g.Commands.Destroy(e)
			g.Commands.SpawnFalling()
		}
	})

	EachInState(g.World, components.FloatingAway, func(e *donburi.Entry, w *components.WordData) {
		if !InBounds(vp, w.Position) && w.Alpha <= 0 {
			g.Commands.Destroy(e)
			return
		}
		step := w.Drift.MulScalar(dt)
		w.Position = w.Position.Add(step)
		w.Alpha *= config.Motion.FadeFactor
		if w.Alpha < config.Motion.AlphaEpsilon {
			w.Alpha = 0
		}
	})

	for _, m := range missed {
		components.WordMissed.Publish(g.World, m)
		log.Info().Uint64("id", m.ID).Str("word", m.Word).Msg("word missed")
	}
}
