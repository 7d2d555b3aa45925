package components

import (
	"github.com/automoto/kartrace-mp/controller"
	"github.com/yohamta/donburi"
)

// KartData is the simulation state of one kart. Speeds are in pixels per tick.
type KartData struct {
	ID          int // World kart id, also used on the wire
	Name        string
	Heading     float64 // Radians, 0 points along +X
	Speed       float64
	ZipperTicks int // Zipper fire shown while > 0
	OnZipper    bool
}

var Kart = donburi.NewComponentType[KartData]()

// ControllerData links a kart to the controller that drives it.
type ControllerData struct {
	*controller.PlayerController
}

var Controller = donburi.NewComponentType[ControllerData]()
