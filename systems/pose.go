package systems

import (
	"github.com/automoto/kartrace-mp/components"
	"github.com/automoto/kartrace-mp/shared/netcomponents"
	"github.com/automoto/kartrace-mp/tags"
	"github.com/yohamta/donburi"
)

// KartPose is everything needed to draw a kart.
type KartPose struct {
	ID         int
	Name       string
	X, Y       float64 // Center
	Heading    float64
	Height     float64
	Local      bool
	Skidding   bool
	ZipperFire bool
}

// SimPoses returns the poses of a locally simulated race.
func SimPoses(w donburi.World) []KartPose {
	var poses []KartPose
	for _, e := range karts(w) {
		kart := components.Kart.Get(e)
		x, y := KartCenter(e)
		pose := KartPose{
			ID:         kart.ID,
			Name:       kart.Name,
			X:          x,
			Y:          y,
			Heading:    kart.Heading,
			Local:      e.HasComponent(tags.LocalKart),
			Skidding:   components.Skidding.Get(e).Active,
			ZipperFire: kart.ZipperTicks > 0,
		}
		if e.HasComponent(components.Rescue) {
			pose.Height = components.Rescue.Get(e).Height
		}
		poses = append(poses, pose)
	}
	return poses
}

// NetPoses returns the interpolated poses of a mirrored race.
func NetPoses(w donburi.World, localID int) []KartPose {
	var poses []KartPose
	netcomponents.NetKart.Each(w, func(e *donburi.Entry) {
		state := *netcomponents.NetKart.Get(e)
		if e.HasComponent(components.NetInterp) {
			if interp := components.NetInterp.Get(e); interp.Initialized {
				state = *netcomponents.LerpNetKart(interp.Prev, interp.Target, interp.T)
			}
		}
		poses = append(poses, KartPose{
			ID:         state.ID,
			Name:       state.Name,
			X:          state.X,
			Y:          state.Y,
			Heading:    state.Heading,
			Height:     state.Height,
			Local:      state.ID == localID,
			Skidding:   state.Skidding,
			ZipperFire: state.ZipperFire,
		})
	})
	return poses
}
