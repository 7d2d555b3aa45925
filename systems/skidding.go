package systems

import (
	"math"

	"github.com/automoto/kartrace-mp/components"
	cfg "github.com/automoto/kartrace-mp/config"
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"github.com/yohamta/donburi"
)

// UpdateSkidding turns a requested skid into an actual slide once the kart is
// fast enough. Releasing the steering ends the skid, pays out the bonus for a
// long one and clears the skid request so the next turn picks a new side.
func UpdateSkidding(w donburi.World) {
	race, ok := GetRace(w)
	if !ok || race.Phase == netconfig.PhaseInGameMenu {
		return
	}

	for _, e := range karts(w) {
		pc := kartController(e)
		if pc == nil {
			continue
		}
		ctrl := pc.Controls()
		skid := components.Skidding.Get(e)
		kart := components.Kart.Get(e)

		if pc.SteerValue() == 0 {
			if skid.Active && skid.Ticks >= cfg.Kart.SkidBonusTicks {
				kart.Speed += cfg.Kart.SkidBonusSpeed
				pc.SkidBonusTriggered()
			}
			*skid = components.SkiddingData{}
			ctrl.SetSkidControl(netconfig.SkidNone)
			continue
		}

		if ctrl.SkidControl() == netconfig.SkidNone ||
			math.Abs(kart.Speed) < cfg.Kart.SkidMinSpeed ||
			e.HasComponent(components.Rescue) {
			*skid = components.SkiddingData{}
			continue
		}

		if !skid.Active {
			skid.Active = true
			skid.Direction = ctrl.SkidControl()
			skid.Ticks = 0
		}
		skid.Ticks++
	}
}
