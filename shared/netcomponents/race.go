package netcomponents

import (
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"github.com/yohamta/donburi"
)

type NetRaceData struct {
	Phase           netconfig.Phase
	TicksSinceStart int
	Frame           int // Server simulation frame, clients stamp actions with it
}

var NetRace = donburi.NewComponentType[NetRaceData]()
