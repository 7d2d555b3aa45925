package components

import (
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SkiddingData is the physics side of skidding. The controller only asks for
// a skid direction; physics decides whether the kart actually slides.
type SkiddingData struct {
	Active    bool
	Direction netconfig.SkidControl
	Ticks     int
}

// IsSkidding reports whether the kart is sliding right now.
func (s *SkiddingData) IsSkidding() bool {
	return s.Active
}

var Skidding = donburi.NewComponentType[SkiddingData]()

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
