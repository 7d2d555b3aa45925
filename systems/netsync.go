package systems

import (
	"github.com/automoto/kartrace-mp/components"
	"github.com/automoto/kartrace-mp/shared/netcomponents"
	"github.com/yohamta/donburi"
)

// AttachNetComponents gives the race and every kart the synced components
// they are still missing. Returns the entities that were changed so the
// caller can register them for sync.
func AttachNetComponents(w donburi.World) []donburi.Entity {
	var added []donburi.Entity
	if entry, ok := components.Race.First(w); ok && !entry.HasComponent(netcomponents.NetRace) {
		entry.AddComponent(netcomponents.NetRace)
		added = append(added, entry.Entity())
	}
	for _, e := range karts(w) {
		if e.HasComponent(netcomponents.NetKart) {
			continue
		}
		e.AddComponent(netcomponents.NetKart)
		e.AddComponent(netcomponents.NetControl)
		added = append(added, e.Entity())
	}
	return added
}

// ExportNetState copies the simulation into the synced components. frame is
// the simulation frame clients stamp their actions with.
func ExportNetState(w donburi.World, frame int) {
	if entry, ok := components.Race.First(w); ok && entry.HasComponent(netcomponents.NetRace) {
		race := components.Race.Get(entry)
		netcomponents.NetRace.SetValue(entry, netcomponents.NetRaceData{
			Phase:           race.Phase,
			TicksSinceStart: race.TicksSinceStart,
			Frame:           frame,
		})
	}

	for _, e := range karts(w) {
		if !e.HasComponent(netcomponents.NetKart) {
			continue
		}
		kart := components.Kart.Get(e)
		x, y := KartCenter(e)
		state := netcomponents.NetKartData{
			ID:         kart.ID,
			Name:       kart.Name,
			X:          x,
			Y:          y,
			Heading:    kart.Heading,
			Speed:      kart.Speed,
			Skidding:   components.Skidding.Get(e).Active,
			ZipperFire: kart.ZipperTicks > 0,
		}
		if e.HasComponent(components.Rescue) {
			state.Animating = true
			state.Height = components.Rescue.Get(e).Height
		}
		netcomponents.NetKart.SetValue(e, state)

		if pc := kartController(e); pc != nil && e.HasComponent(netcomponents.NetControl) {
			ctrl := pc.Controls()
			netcomponents.NetControl.SetValue(e, netcomponents.NetControlData{
				Steer: ctrl.Steer(),
				Accel: ctrl.Accel(),
				Brake: ctrl.Brake(),
				Nitro: ctrl.Nitro(),
				Skid:  ctrl.SkidControl(),
			})
		}
	}
}
