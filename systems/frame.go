package systems

import (
	"github.com/automoto/typefall/input"
)

// Step runs one frame in fixed order: typing, score, motion. Deferred
// commands are flushed after each step that may queue them, so a completion
// from typing is scored in the same frame and a word that started floating
// away this frame already moves and fades.
func (g *Game) Step(keys []input.KeyEvent, dt float64) error {
	if err := UpdateTyping(g, keys); err != nil {
		return err
	}
	if err := g.Commands.Flush(g.World, g.spawnFallingErr); err != nil {
		return err
	}

	UpdateScore(g)

	UpdateMotion(g, dt)
	if err := g.Commands.Flush(g.World, g.spawnFallingErr); err != nil {
		return err
	}
	UpdateMisses(g)
	return nil
}
