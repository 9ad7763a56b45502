package archetypes

import (
	"github.com/automoto/typefall/components"
	"github.com/automoto/typefall/tags"
	"github.com/yohamta/donburi"
)

var (
	Word = newArchetype(
		tags.Word,
		components.Word,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Session,
		components.Viewport,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus cs.
// It must not be called while the world is being iterated.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := append(append([]donburi.IComponentType(nil), a.components...), cs...)
	return w.Entry(w.Create(all...))
}
