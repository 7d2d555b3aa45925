package systems

import (
	"github.com/automoto/kartrace-mp/components"
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"github.com/automoto/kartrace-mp/shared/rewind"
	"github.com/yohamta/donburi"
)

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// raceRewinder saves the race clock.
type raceRewinder struct {
	world donburi.World
}

func (r raceRewinder) SaveState(buf *rewind.Buffer) bool {
	race, ok := GetRace(r.world)
	if !ok {
		return false
	}
	buf.AddUint8(uint8(race.Phase)).
		AddUint8(uint8(race.PausedFrom)).
		AddUint32(uint32(race.PhaseTicks)).
		AddUint32(uint32(race.TicksSinceStart))
	return true
}

func (r raceRewinder) RewindTo(buf *rewind.Buffer) {
	race, ok := GetRace(r.world)
	if !ok {
		return
	}
	race.Phase = netconfig.Phase(buf.GetUint8())
	race.PausedFrom = netconfig.Phase(buf.GetUint8())
	race.PhaseTicks = int(buf.GetUint32())
	race.TicksSinceStart = int(buf.GetUint32())
}

// kartRewinder saves a kart body: pose, speed, skid and rescue progress.
type kartRewinder struct {
	world  donburi.World
	entity donburi.Entity
}

func (r kartRewinder) SaveState(buf *rewind.Buffer) bool {
	if !r.world.Valid(r.entity) {
		return false
	}
	e := r.world.Entry(r.entity)
	kart := components.Kart.Get(e)
	obj := components.Object.Get(e).Object
	skid := components.Skidding.Get(e)

	buf.AddFloat64(obj.X).
		AddFloat64(obj.Y).
		AddFloat64(kart.Heading).
		AddFloat64(kart.Speed).
		AddUint16(uint16(kart.ZipperTicks)).
		AddUint8(boolByte(kart.OnZipper)).
		AddUint8(boolByte(skid.Active)).
		AddUint8(uint8(skid.Direction)).
		AddUint16(uint16(skid.Ticks))

	if !e.HasComponent(components.Rescue) {
		buf.AddUint8(0)
		return true
	}
	rescue := components.Rescue.Get(e)
	buf.AddUint8(1).
		AddUint16(uint16(rescue.Elapsed)).
		AddUint8(boolByte(rescue.Dropped)).
		AddFloat64(rescue.DropX).
		AddFloat64(rescue.DropY).
		AddFloat64(rescue.Heading).
		AddFloat64(rescue.Height)
	return true
}

func (r kartRewinder) RewindTo(buf *rewind.Buffer) {
	if !r.world.Valid(r.entity) {
		return
	}
	e := r.world.Entry(r.entity)
	kart := components.Kart.Get(e)
	obj := components.Object.Get(e).Object
	skid := components.Skidding.Get(e)

	obj.X = buf.GetFloat64()
	obj.Y = buf.GetFloat64()
	obj.Update()
	kart.Heading = buf.GetFloat64()
	kart.Speed = buf.GetFloat64()
	kart.ZipperTicks = int(buf.GetUint16())
	kart.OnZipper = buf.GetUint8() == 1
	skid.Active = buf.GetUint8() == 1
	skid.Direction = netconfig.SkidControl(buf.GetUint8())
	skid.Ticks = int(buf.GetUint16())

	if buf.GetUint8() == 0 {
		if e.HasComponent(components.Rescue) {
			e.RemoveComponent(components.Rescue)
		}
		return
	}

	rescue := components.RescueData{
		Elapsed: int(buf.GetUint16()),
		Dropped: buf.GetUint8() == 1,
		DropX:   buf.GetFloat64(),
		DropY:   buf.GetFloat64(),
		Heading: buf.GetFloat64(),
		Height:  buf.GetFloat64(),
	}
	setRescueTweens(&rescue)
	if !e.HasComponent(components.Rescue) {
		e.AddComponent(components.Rescue)
	}
	components.Rescue.SetValue(e, rescue)
}

// controlRewinder saves the control vector physics reads, plus the steering
// direction the controller snapshot leaves out. It must be registered after
// the controller so the direction lands on the restored magnitude.
type controlRewinder struct {
	world  donburi.World
	entity donburi.Entity
}

func (r controlRewinder) SaveState(buf *rewind.Buffer) bool {
	if !r.world.Valid(r.entity) {
		return false
	}
	pc := kartController(r.world.Entry(r.entity))
	if pc == nil {
		return false
	}
	ctrl := pc.Controls()
	buf.AddFloat32(ctrl.Steer()).
		AddFloat32(ctrl.Accel()).
		AddUint8(boolByte(ctrl.Brake())).
		AddUint8(boolByte(ctrl.Nitro())).
		AddUint8(boolByte(ctrl.Rescue())).
		AddUint8(uint8(ctrl.SkidControl())).
		AddUint8(boolByte(pc.SteerValue() < 0))
	return true
}

func (r controlRewinder) RewindTo(buf *rewind.Buffer) {
	if !r.world.Valid(r.entity) {
		return
	}
	pc := kartController(r.world.Entry(r.entity))
	if pc == nil {
		return
	}
	ctrl := pc.Controls()
	ctrl.SetSteer(buf.GetFloat32())
	ctrl.SetAccel(buf.GetFloat32())
	ctrl.SetBrake(buf.GetUint8() == 1)
	ctrl.SetNitro(buf.GetUint8() == 1)
	ctrl.SetRescue(buf.GetUint8() == 1)
	ctrl.SetSkidControl(netconfig.SkidControl(buf.GetUint8()))
	pc.RestoreSteerSign(buf.GetUint8() == 1)
}
