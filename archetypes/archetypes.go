package archetypes

import (
	"github.com/automoto/kartrace-mp/components"
	"github.com/automoto/kartrace-mp/tags"
	"github.com/yohamta/donburi"
)

var (
	Kart = newArchetype(
		tags.Kart,
		components.Kart,
		components.Controller,
		components.Object,
		components.Skidding,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Zipper = newArchetype(
		tags.Zipper,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Race = newArchetype(
		components.Race,
		components.RaceMessage,
		components.SoundQueue,
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

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
