package netcomponents

import (
	"math"

	"github.com/yohamta/donburi"
)

// NetKartData is the synced pose of a kart. X and Y are the kart center.
type NetKartData struct {
	ID         int // World kart id
	Name       string
	X, Y       float64
	Heading    float64 // Radians
	Speed      float64 // Pixels per tick
	Height     float64 // Lift during a rescue
	Animating  bool    // Rescue or other kart animation in progress
	Skidding   bool
	ZipperFire bool
}

var NetKart = donburi.NewComponentType[NetKartData]()

// LerpNetKart interpolates between two kart states
func LerpNetKart(from, to NetKartData, t float64) *NetKartData {
	return &NetKartData{
		ID:         to.ID,
		Name:       to.Name,
		X:          from.X + (to.X-from.X)*t,
		Y:          from.Y + (to.Y-from.Y)*t,
		Heading:    lerpAngle(from.Heading, to.Heading, t),
		Speed:      from.Speed + (to.Speed-from.Speed)*t,
		Height:     from.Height + (to.Height-from.Height)*t,
		Animating:  to.Animating,
		Skidding:   to.Skidding,
		ZipperFire: to.ZipperFire,
	}
}

// lerpAngle interpolates along the shorter arc.
func lerpAngle(from, to, t float64) float64 {
	const twoPi = 2 * math.Pi
	d := to - from
	for d > twoPi/2 {
		d -= twoPi
	}
	for d < -twoPi/2 {
		d += twoPi
	}
	return from + d*t
}
