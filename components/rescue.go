package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// RescueData is present while a kart plays its rescue animation: it is lifted
// off the track, moved to a rescue point and set down again.
type RescueData struct {
	Lift    *gween.Tween
	Drop    *gween.Tween
	Elapsed int     // Ticks since the rescue started
	Height  float64 // Current lift in pixels
	Dropped bool    // Kart already moved to the rescue point
	DropX   float64
	DropY   float64
	Heading float64
}

var Rescue = donburi.NewComponentType[RescueData]()
