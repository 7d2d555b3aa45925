package systems

import (
	"github.com/automoto/kartrace-mp/components"
	cfg "github.com/automoto/kartrace-mp/config"
	"github.com/automoto/kartrace-mp/controller"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// RescueFactory lifts karts off the track and drops them at the nearest
// rescue point.
type RescueFactory struct {
	world donburi.World
}

func NewRescueFactory(w donburi.World) *RescueFactory {
	return &RescueFactory{world: w}
}

func (f *RescueFactory) CreateRescue(k controller.Kart) {
	if e, ok := FindKart(f.world, k.WorldKartID()); ok {
		StartRescue(f.world, e)
	}
}

// StartRescue begins the rescue animation of a kart. A kart already being
// rescued is left alone.
func StartRescue(w donburi.World, e *donburi.Entry) {
	if e.HasComponent(components.Rescue) {
		return
	}
	kart := components.Kart.Get(e)
	x, y := KartCenter(e)

	rescue := components.RescueData{DropX: x, DropY: y, Heading: kart.Heading}
	if race, ok := GetRace(w); ok && race.Track != nil {
		if p, ok := race.Track.NearestRescuePoint(x, y); ok {
			rescue.DropX, rescue.DropY, rescue.Heading = p.X, p.Y, p.Heading
		}
	}
	setRescueTweens(&rescue)

	kart.Speed = 0
	kart.OnZipper = false
	e.AddComponent(components.Rescue)
	components.Rescue.SetValue(e, rescue)

	if pc := kartController(e); pc != nil && pc.IsLocal() {
		QueueSound(w, cfg.SoundRescue)
	}
}

func setRescueTweens(r *components.RescueData) {
	half := float32(rescueHalf())
	height := float32(cfg.Kart.RescueHeight)
	r.Lift = gween.New(0, height, half, ease.OutQuad)
	r.Drop = gween.New(height, 0, half, ease.InQuad)
}

func rescueHalf() int {
	return cfg.Kart.RescueTicks / 2
}

// UpdateRescue plays the rescue animations. The kart moves to its drop point
// at the top of the lift and is released once it is back on the ground.
func UpdateRescue(w donburi.World) {
	if IsPaused(w) {
		return
	}

	for _, e := range karts(w) {
		if !e.HasComponent(components.Rescue) {
			continue
		}
		r := components.Rescue.Get(e)
		r.Elapsed++

		if !r.Dropped {
			h, done := r.Lift.Set(float32(r.Elapsed))
			r.Height = float64(h)
			if done {
				PlaceKart(e, r.DropX, r.DropY)
				components.Kart.Get(e).Heading = r.Heading
				r.Dropped = true
			}
			continue
		}

		h, done := r.Drop.Set(float32(r.Elapsed - rescueHalf()))
		r.Height = float64(h)
		if done {
			e.RemoveComponent(components.Rescue)
		}
	}
}
