package components

import (
	"github.com/automoto/kartrace-mp/shared/netcomponents"
	"github.com/yohamta/donburi"
)

// NetInterpData stores interpolation state for smooth rendering of remote
// karts between server snapshots.
type NetInterpData struct {
	Prev        netcomponents.NetKartData
	Target      netcomponents.NetKartData
	T           float64
	Initialized bool
}

var NetInterp = donburi.NewComponentType[NetInterpData]()
