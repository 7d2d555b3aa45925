package controller

import (
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"go.uber.org/zap"
)

// Update runs once per simulation step, after Steer. It gates the controls
// during the start countdown and a false-start penalty, watches for a stuck
// kart and performs a requested rescue.
func (pc *PlayerController) Update(ticks int) {
	world := pc.session.World

	if world.IsStartPhase() {
		if pc.throttleAsserted() &&
			!pc.session.Network.IsNetworking() &&
			pc.penaltyTicks == 0 &&
			world.Phase() == netconfig.PhaseReady {
			pc.falseStart()
		}
		pc.controls.SetBrake(false)
		return
	}

	if pc.penaltyTicks > 0 && world.TicksSinceStart() < pc.penaltyTicks {
		pc.controls.SetBrake(false)
		pc.controls.SetAccel(0)
		return
	}

	cfg := pc.session.Config
	if pc.kart.Speed() < cfg.StuckSpeed && !pc.kart.KartAnimation() {
		pc.stuckTime += world.TicksToTime(ticks)
		if pc.stuckTime > cfg.StuckTime {
			pc.stuckRescue()
			pc.stuckTime = 0
		}
	} else {
		pc.stuckTime = 0
	}

	if pc.controls.Rescue() && !pc.kart.KartAnimation() {
		pc.log.Info("manual rescue")
		pc.session.Rescue.CreateRescue(pc.kart)
		pc.controls.SetRescue(false)
	}
}

func (pc *PlayerController) throttleAsserted() bool {
	return pc.controls.Accel() != 0 || pc.controls.Brake() || pc.controls.Nitro()
}

// falseStart locks throttle and brake until the penalty has passed. The
// deadline is measured on the race clock, which starts counting at GO.
func (pc *PlayerController) falseStart() {
	world := pc.session.World
	pc.penaltyTicks = world.TicksSinceStart() + world.SecondsToTicks(pc.session.Config.FalseStartPenalty)
	pc.log.Info("false start", zap.Int("until_tick", pc.penaltyTicks))
	if pc.local {
		pc.session.GUI.DisplayGeneralRaceMessage(pc.session.Config.PenaltyMessage, pc.session.Config.FalseStartPenalty)
	}
}

// stuckRescue asks for a rescue of a kart that has not moved for too long. In
// a networked race the server decides, so the request goes out as a RESCUE
// action. If the protocol is unavailable the request is dropped.
func (pc *PlayerController) stuckRescue() {
	if !pc.session.Network.IsNetworking() {
		pc.log.Info("stuck, rescuing", zap.Float64("stuck_time", pc.stuckTime))
		pc.session.Rescue.CreateRescue(pc.kart)
		return
	}

	proto, ok := pc.session.Protocol.LockGameProtocol()
	if !ok {
		pc.log.Warn("stuck rescue dropped, no game protocol")
		return
	}
	pc.log.Info("stuck, requesting rescue", zap.Float64("stuck_time", pc.stuckTime))
	proto.ControllerAction(pc.kart.WorldKartID(), netconfig.ActionRescue,
		netconfig.MaxValue, pc.steerLeft, pc.steerRight)
}
