package factory

import (
	"github.com/automoto/kartrace-mp/archetypes"
	"github.com/automoto/kartrace-mp/components"
	cfg "github.com/automoto/kartrace-mp/config"
	"github.com/automoto/kartrace-mp/shared/trackdata"
	"github.com/automoto/kartrace-mp/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateKart spawns a kart centered on start. The controller is attached by
// the caller because it needs the race session.
func CreateKart(w donburi.World, id int, name string, start trackdata.StartPoint, local bool) *donburi.Entry {
	kart := archetypes.Kart.Spawn(w)
	if local {
		kart.AddComponent(tags.LocalKart)
	}

	width, height := cfg.Kart.CollisionWidth, cfg.Kart.CollisionHeight
	obj := resolv.NewObject(start.X-width/2, start.Y-height/2, width, height, tags.ResolvKart)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = kart
	components.Object.SetValue(kart, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Kart.SetValue(kart, components.KartData{
		ID:      id,
		Name:    name,
		Heading: start.Heading,
	})

	return kart
}
