package factory

import (
	"github.com/automoto/kartrace-mp/archetypes"
	"github.com/automoto/kartrace-mp/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const spaceCellSize = 16

func CreateSpace(w donburi.World, width, height int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, spaceCellSize, spaceCellSize)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace puts obj into the world's collision space if there is one.
func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
