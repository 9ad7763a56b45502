package systems

import (
	"github.com/automoto/typefall/archetypes"
	"github.com/automoto/typefall/components"
	"github.com/automoto/typefall/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

var wordQuery = donburi.NewQuery(filter.Contains(tags.Word, components.Word))

// EachInState calls fn for every word entity in the given state.
// fn must not create or remove entities; use Commands instead.
func EachInState(w donburi.World, state components.WordState, fn func(*donburi.Entry, *components.WordData)) {
	wordQuery.Each(w, func(e *donburi.Entry) {
		word := components.Word.Get(e)
		if word.State != state {
			return
		}
		fn(e, word)
	})
}

// CountInState returns the number of word entities in the given state.
func CountInState(w donburi.World, state components.WordState) int {
	n := 0
	EachInState(w, state, func(*donburi.Entry, *components.WordData) {
		n++
	})
	return n
}

// spawnFalling creates a new falling word at the top center of the viewport
// and makes it the active word. Callers must not be iterating the world.
func (g *Game) spawnFalling() (*donburi.Entry, error) {
	player := g.Player()
	text, err := g.Words.NextWord(player.Level)
	if err != nil {
		return nil, err
	}

	session := g.session()
	session.NextID++
	id := session.NextID
	vp := g.Viewport()

	entry := archetypes.Word.Spawn(g.World)
	runes := []rune(text)
	components.Word.SetValue(entry, components.WordData{
		ID:        id,
		State:     components.Falling,
		Word:      text,
		Matched:   make([]rune, 0, len(runes)),
		Remaining: runes,
		Position:  math.NewVec2(0, vp.Height/2),
		Alpha:     1,
	})

	session = g.session()
	session.Active = entry.Entity()
	session.HasActive = true

	log.Debug().Uint64("id", id).Str("word", text).Int("level", player.Level).Msg("word spawned")
	return entry, nil
}

func (g *Game) spawnFallingErr() error {
	_, err := g.spawnFalling()
	return err
}
