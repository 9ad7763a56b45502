package systems

import (
	"github.com/automoto/typefall/components"
	"github.com/automoto/typefall/config"
	"github.com/automoto/typefall/input"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

// UpdateTyping feeds this frame's key events, in arrival order, to the
// active word. A matching rune moves from Remaining to Matched and nudges the
// word upward; anything else is ignored. Completing a word hands over to a
// freshly spawned word, so later keys in the same frame type the new one.
func UpdateTyping(g *Game, keys []input.KeyEvent) error {
	for _, k := range keys {
		if !k.Typed() {
			continue
		}

		entry, err := g.ActiveWord()
		if err != nil {
			log.Error().Err(err).Msg("typing without an active word")
			return err
		}

		word := components.Word.Get(entry)
		if len(word.Remaining) == 0 || word.Remaining[0] != k.Char {
			continue
		}

		word.Matched = append(word.Matched, k.Char)
		word.Remaining = word.Remaining[1:]
		word.Position.Y += config.Motion.TypeNudge

		if word.Done() {
			if err := g.completeWord(entry); err != nil {
				return err
			}
		}
	}
	return nil
}

// completeWord moves a fully typed word to FloatingAway, announces it on the
// completion bus and spawns its replacement.
func (g *Game) completeWord(entry *donburi.Entry) error {
	word := components.Word.Get(entry)
	word.State = components.FloatingAway
	word.Drift = g.Drift.Next()
	word.Alpha = 1

	components.WordCompleted.Publish(g.World, components.WordCompletedEvent{
		ID:     word.ID,
		Word:   word.Word,
		Length: len(word.Matched),
	})
	log.Debug().Uint64("id", word.ID).Str("word", word.Word).Msg("word completed")

	g.session().HasActive = false
	_, err := g.spawnFalling()
	return err
}
