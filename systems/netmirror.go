package systems

import (
	"math"

	"github.com/automoto/kartrace-mp/components"
	cfg "github.com/automoto/kartrace-mp/config"
	"github.com/automoto/kartrace-mp/controller"
	"github.com/automoto/kartrace-mp/shared/netcomponents"
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

// ApplySnapshot mirrors a server snapshot into the client world. Karts get a
// NetInterp component and are drawn between their last two states. Entities
// missing from the snapshot are removed.
func ApplySnapshot(w donburi.World, snapshot esync.WorldSnapshot) {
	present := make(map[esync.NetworkId]bool, len(snapshot))

	for _, ent := range snapshot {
		present[ent.Id] = true

		var compData []any
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			compData = append(compData, instance)
		}

		entity := esync.FindByNetworkId(w, ent.Id)
		if !w.Valid(entity) {
			entity = w.Create(componentTypesFromInstances(compData)...)
			entry := w.Entry(entity)
			entry.AddComponent(esync.NetworkIdComponent)
			esync.NetworkIdComponent.SetValue(entry, ent.Id)
			if entry.HasComponent(netcomponents.NetKart) {
				entry.AddComponent(components.NetInterp)
			}
		}

		entry := w.Entry(entity)
		for _, data := range compData {
			applyNetComponent(entry, data)
		}
	}

	esync.NetworkEntityQuery.Each(w, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil {
			return
		}
		if !present[*id] {
			entry.Remove()
		}
	})
}

func componentTypesFromInstances(instances []any) []donburi.IComponentType {
	var ctypes []donburi.IComponentType
	for _, data := range instances {
		switch data.(type) {
		case netcomponents.NetKartData:
			ctypes = append(ctypes, netcomponents.NetKart)
		case netcomponents.NetControlData:
			ctypes = append(ctypes, netcomponents.NetControl)
		case netcomponents.NetRaceData:
			ctypes = append(ctypes, netcomponents.NetRace)
		}
	}
	return ctypes
}

func applyNetComponent(entry *donburi.Entry, data any) {
	switch v := data.(type) {
	case netcomponents.NetKartData:
		if !entry.HasComponent(netcomponents.NetKart) {
			entry.AddComponent(netcomponents.NetKart)
		}
		if entry.HasComponent(components.NetInterp) {
			retarget(components.NetInterp.Get(entry), v)
		}
		netcomponents.NetKart.SetValue(entry, v)
	case netcomponents.NetControlData:
		if !entry.HasComponent(netcomponents.NetControl) {
			entry.AddComponent(netcomponents.NetControl)
		}
		netcomponents.NetControl.SetValue(entry, v)
	case netcomponents.NetRaceData:
		if !entry.HasComponent(netcomponents.NetRace) {
			entry.AddComponent(netcomponents.NetRace)
		}
		netcomponents.NetRace.SetValue(entry, v)
	}
}

// retarget starts interpolating from the currently drawn pose toward a new
// server state. The first state is taken as is.
func retarget(interp *components.NetInterpData, target netcomponents.NetKartData) {
	if !interp.Initialized {
		interp.Prev = target
		interp.Target = target
		interp.T = 1
		interp.Initialized = true
		return
	}
	interp.Prev = *netcomponents.LerpNetKart(interp.Prev, interp.Target, interp.T)
	interp.Target = target
	interp.T = 0
}

// UpdateNetInterp advances interpolation by one client frame. step is the
// fraction of a server tick a frame lasts.
func UpdateNetInterp(w donburi.World, step float64) {
	components.NetInterp.Each(w, func(entry *donburi.Entry) {
		interp := components.NetInterp.Get(entry)
		interp.T = math.Min(1, interp.T+step)
	})
}

// FindNetKart returns the mirrored kart with the given world kart id.
func FindNetKart(w donburi.World, id int) (*donburi.Entry, bool) {
	var found *donburi.Entry
	netcomponents.NetKart.Each(w, func(e *donburi.Entry) {
		if found == nil && netcomponents.NetKart.Get(e).ID == id {
			found = e
		}
	})
	return found, found != nil
}

// NetRaceState returns the mirrored race clock.
func NetRaceState(w donburi.World) (netcomponents.NetRaceData, bool) {
	entry, ok := netcomponents.NetRace.First(w)
	if !ok {
		return netcomponents.NetRaceData{Phase: netconfig.PhaseUndefined}, false
	}
	return *netcomponents.NetRace.Get(entry), true
}

// NetKartView is the controller's view of a kart the server simulates. Zipper
// fire is drawn from the server state, so ShowZipperFire does nothing.
type NetKartView struct {
	world  donburi.World
	kartID int
}

func NewNetKartView(w donburi.World, kartID int) *NetKartView {
	return &NetKartView{world: w, kartID: kartID}
}

func (v *NetKartView) state() netcomponents.NetKartData {
	if e, ok := FindNetKart(v.world, v.kartID); ok {
		return *netcomponents.NetKart.Get(e)
	}
	return netcomponents.NetKartData{ID: v.kartID}
}

func (v *NetKartView) Speed() float64 {
	return math.Abs(v.state().Speed) * float64(cfg.Kart.TicksPerSecond) / cfg.Kart.PixelsPerMeter
}

func (v *NetKartView) KartAnimation() bool           { return v.state().Animating }
func (v *NetKartView) Skidding() controller.Skidding { return netSkid(v.state().Skidding) }
func (v *NetKartView) DriverName() string            { return v.state().Name }
func (v *NetKartView) WorldKartID() int              { return v.kartID }
func (v *NetKartView) ShowZipperFire()               {}

type netSkid bool

func (s netSkid) IsSkidding() bool { return bool(s) }

// NetRaceWorld answers the controller's clock questions from the mirrored
// race state.
type NetRaceWorld struct {
	world    donburi.World
	tickRate int
}

func NewNetRaceWorld(w donburi.World, tickRate int) NetRaceWorld {
	if tickRate <= 0 {
		tickRate = cfg.Network.TickRate
	}
	return NetRaceWorld{world: w, tickRate: tickRate}
}

func (r NetRaceWorld) IsStartPhase() bool {
	race, _ := NetRaceState(r.world)
	return race.Phase.IsStart()
}

func (r NetRaceWorld) Phase() netconfig.Phase {
	race, _ := NetRaceState(r.world)
	return race.Phase
}

func (r NetRaceWorld) TicksSinceStart() int {
	race, _ := NetRaceState(r.world)
	return race.TicksSinceStart
}

func (r NetRaceWorld) TicksToTime(ticks int) float64 {
	return float64(ticks) / float64(r.tickRate)
}

func (r NetRaceWorld) SecondsToTicks(seconds float64) int {
	return int(seconds*float64(r.tickRate) + 0.5)
}

// Frame returns the last server frame seen, used to stamp actions.
func (r NetRaceWorld) Frame() int {
	race, _ := NetRaceState(r.world)
	return race.Frame
}
