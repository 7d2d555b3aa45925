package systems

import (
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"github.com/yohamta/donburi"
)

// UpdateControllers steers and updates every kart controller once per tick.
func UpdateControllers(w donburi.World) {
	race, ok := GetRace(w)
	if !ok || race.Phase == netconfig.PhaseInGameMenu {
		return
	}

	for _, e := range karts(w) {
		pc := kartController(e)
		if pc == nil {
			continue
		}
		pc.Steer(1, pc.SteerValue())
		pc.Update(1)
	}
}
