package systems

import (
	"math"
	"sort"

	"github.com/automoto/kartrace-mp/components"
	cfg "github.com/automoto/kartrace-mp/config"
	"github.com/automoto/kartrace-mp/controller"
	"github.com/automoto/kartrace-mp/tags"
	"github.com/yohamta/donburi"
)

// KartHandle is the controller's view of a kart entity. It looks the entity
// up on every call so a removed kart reads as a stopped one.
type KartHandle struct {
	world  donburi.World
	entity donburi.Entity
}

func NewKartHandle(w donburi.World, entity donburi.Entity) *KartHandle {
	return &KartHandle{world: w, entity: entity}
}

func (k *KartHandle) entry() (*donburi.Entry, bool) {
	if !k.world.Valid(k.entity) {
		return nil, false
	}
	return k.world.Entry(k.entity), true
}

// Speed returns the absolute kart speed in m/s.
func (k *KartHandle) Speed() float64 {
	e, ok := k.entry()
	if !ok {
		return 0
	}
	kart := components.Kart.Get(e)
	return math.Abs(kart.Speed) * float64(cfg.Kart.TicksPerSecond) / cfg.Kart.PixelsPerMeter
}

func (k *KartHandle) KartAnimation() bool {
	e, ok := k.entry()
	return ok && e.HasComponent(components.Rescue)
}

func (k *KartHandle) Skidding() controller.Skidding {
	e, ok := k.entry()
	if !ok {
		return &components.SkiddingData{}
	}
	return components.Skidding.Get(e)
}

func (k *KartHandle) DriverName() string {
	e, ok := k.entry()
	if !ok {
		return ""
	}
	return components.Kart.Get(e).Name
}

func (k *KartHandle) WorldKartID() int {
	e, ok := k.entry()
	if !ok {
		return -1
	}
	return components.Kart.Get(e).ID
}

func (k *KartHandle) ShowZipperFire() {
	if e, ok := k.entry(); ok {
		components.Kart.Get(e).ZipperTicks = cfg.Kart.ZipperTicks
	}
}

// karts returns every kart ordered by id. Systems walk this copy so they can
// add or remove components on the way, and replays visit karts in the same
// order every time.
func karts(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Kart.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	sort.Slice(out, func(i, j int) bool {
		return components.Kart.Get(out[i]).ID < components.Kart.Get(out[j]).ID
	})
	return out
}

// FindKart returns the kart with the given world kart id.
func FindKart(w donburi.World, id int) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Kart.Each(w, func(e *donburi.Entry) {
		if found == nil && components.Kart.Get(e).ID == id {
			found = e
		}
	})
	return found, found != nil
}

// kartController returns the controller attached to a kart, nil for karts
// that only mirror server state.
func kartController(e *donburi.Entry) *controller.PlayerController {
	if !e.HasComponent(components.Controller) {
		return nil
	}
	return components.Controller.Get(e).PlayerController
}
