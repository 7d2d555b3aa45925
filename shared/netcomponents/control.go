package netcomponents

import (
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"github.com/yohamta/donburi"
)

// NetControlData mirrors a kart's control vector so clients can drive
// effects (brake lights, nitro flames, skid marks) for remote karts.
type NetControlData struct {
	Steer float32
	Accel float32
	Brake bool
	Nitro bool
	Skid  netconfig.SkidControl
}

var NetControl = donburi.NewComponentType[NetControlData]()
