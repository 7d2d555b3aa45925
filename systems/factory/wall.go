package factory

import (
	"github.com/automoto/kartrace-mp/archetypes"
	"github.com/automoto/kartrace-mp/components"
	"github.com/automoto/kartrace-mp/shared/trackdata"
	"github.com/automoto/kartrace-mp/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateWall(w donburi.World, r trackdata.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	return wall
}

// CreateZipper creates a boost pad. Zippers never block movement, karts
// only check whether they overlap one.
func CreateZipper(w donburi.World, r trackdata.Rect) *donburi.Entry {
	zipper := archetypes.Zipper.Spawn(w)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvZipper)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = zipper

	components.Object.SetValue(zipper, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	return zipper
}
