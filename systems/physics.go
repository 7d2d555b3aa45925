package systems

import (
	"math"

	"github.com/automoto/kartrace-mp/components"
	cfg "github.com/automoto/kartrace-mp/config"
	"github.com/automoto/kartrace-mp/controller"
	"github.com/automoto/kartrace-mp/shared/gamemath"
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"github.com/automoto/kartrace-mp/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdateKartPhysics moves every kart from its control vector. Karts are held
// on the grid during the countdown and left alone while a rescue plays.
func UpdateKartPhysics(w donburi.World) {
	race, ok := GetRace(w)
	if !ok || race.Phase == netconfig.PhaseInGameMenu {
		return
	}

	for _, e := range karts(w) {
		kart := components.Kart.Get(e)
		if kart.ZipperTicks > 0 {
			kart.ZipperTicks--
		}
		if e.HasComponent(components.Rescue) {
			continue
		}
		pc := kartController(e)
		if pc == nil {
			continue
		}
		if race.Phase.IsStart() {
			kart.Speed = 0
			continue
		}

		ctrl := pc.Controls()
		kart.Speed = accelerate(kart, ctrl)

		turn := gamemath.TurnRate(ctrl.Steer(), kart.Speed, cfg.Kart.FullTurnSpeed, cfg.Kart.MaxTurn)
		if components.Skidding.Get(e).Active {
			turn *= cfg.Kart.SkidTurnBonus
		}
		kart.Heading = gamemath.NormalizeAngle(kart.Heading + turn)

		obj := components.Object.Get(e).Object
		before := kart.Speed
		if moveKart(obj, kart) && before-kart.Speed > crashSpeedLoss && pc.IsLocal() {
			QueueSound(w, cfg.SoundCrash)
		}

		onZipper := overlapsTag(obj, tags.ResolvZipper)
		if onZipper && !kart.OnZipper {
			kart.Speed = math.Max(kart.Speed, cfg.Kart.ZipperSpeed)
			pc.HandleZipper(true)
			if pc.IsLocal() {
				QueueSound(w, cfg.SoundZipper)
			}
		}
		kart.OnZipper = onZipper
	}
}

// crashSpeedLoss is the speed a wall hit must cost to play the crash sound.
const crashSpeedLoss = 1.0

func accelerate(kart *components.KartData, ctrl *controller.KartControl) float64 {
	k := cfg.Kart
	speed := kart.Speed

	limit := k.MaxSpeed
	switch {
	case kart.ZipperTicks > 0:
		limit = k.ZipperSpeed
	case ctrl.Nitro():
		limit = k.NitroMaxSpeed
	}

	switch {
	case ctrl.Brake():
		if speed > 0 {
			return math.Max(speed-k.BrakeDecel, 0)
		}
		return math.Max(speed-k.Acceleration, -k.MaxReverseSpeed)
	case ctrl.Accel() > 0:
		a := k.Acceleration * float64(ctrl.Accel())
		if ctrl.Nitro() {
			a += k.NitroAccel
		}
		if speed < limit {
			return math.Min(speed+a, limit)
		}
		// Above the limit after a zipper or nitro, bleed off toward it
		return math.Max(gamemath.ApplyFriction(speed, k.Friction), limit)
	default:
		return gamemath.ApplyFriction(speed, k.Friction)
	}
}

// moveKart moves the kart along its heading one axis at a time. Hitting a
// wall keeps only the part of the speed that runs along the wall, so a
// head-on crash stops the kart. Returns whether a wall was hit.
func moveKart(obj *resolv.Object, kart *components.KartData) bool {
	fx, fy := gamemath.Forward(kart.Heading)
	dx, dy := fx*kart.Speed, fy*kart.Speed
	keep := 1.0

	if dx != 0 {
		if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X()
				keep = math.Min(keep, math.Abs(fy))
			}
		}
		obj.X += dx
	}

	if dy != 0 {
		if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dy = check.ContactWithObject(solids[0]).Y()
				keep = math.Min(keep, math.Abs(fx))
			}
		}
		obj.Y += dy
	}

	obj.Update()

	if keep < 1 {
		kart.Speed *= math.Max(keep, cfg.Kart.WallBounce)
		return true
	}
	return false
}

// overlapsTag reports whether obj overlaps any object with tag. The space
// check only narrows down candidates by cell, the bounds decide.
func overlapsTag(obj *resolv.Object, tag string) bool {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return false
	}
	for _, o := range check.ObjectsByTags(tag) {
		if obj.X < o.X+o.W && obj.X+obj.W > o.X && obj.Y < o.Y+o.H && obj.Y+obj.H > o.Y {
			return true
		}
	}
	return false
}

// KartCenter returns the center of a kart's collision box.
func KartCenter(e *donburi.Entry) (x, y float64) {
	obj := components.Object.Get(e).Object
	return obj.X + obj.W/2, obj.Y + obj.H/2
}

// PlaceKart centers a kart on x, y.
func PlaceKart(e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e).Object
	obj.X = x - obj.W/2
	obj.Y = y - obj.H/2
	obj.Update()
}
