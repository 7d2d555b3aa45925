package systems

import (
	"github.com/automoto/kartrace-mp/components"
	cfg "github.com/automoto/kartrace-mp/config"
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"github.com/yohamta/donburi"
)

// GetRace returns the race singleton.
func GetRace(w donburi.World) (*components.RaceData, bool) {
	entry, ok := components.Race.First(w)
	if !ok {
		return nil, false
	}
	return components.Race.Get(entry), true
}

// RaceWorld answers the controller's clock and phase questions from the race
// singleton. Without a race it reports an undefined phase.
type RaceWorld struct {
	world donburi.World
}

func NewRaceWorld(w donburi.World) RaceWorld {
	return RaceWorld{world: w}
}

func (r RaceWorld) race() *components.RaceData {
	if race, ok := GetRace(r.world); ok {
		return race
	}
	return &components.RaceData{Phase: netconfig.PhaseUndefined, TickRate: cfg.Network.TickRate}
}

func (r RaceWorld) IsStartPhase() bool {
	return r.race().Phase.IsStart()
}

func (r RaceWorld) Phase() netconfig.Phase {
	return r.race().Phase
}

func (r RaceWorld) TicksSinceStart() int {
	return r.race().TicksSinceStart
}

func (r RaceWorld) TicksToTime(ticks int) float64 {
	return float64(ticks) / float64(r.tickRate())
}

func (r RaceWorld) SecondsToTicks(seconds float64) int {
	return int(seconds*float64(r.tickRate()) + 0.5)
}

func (r RaceWorld) tickRate() int {
	if rate := r.race().TickRate; rate > 0 {
		return rate
	}
	return cfg.Network.TickRate
}

// UpdateRace advances the race clock and walks the start countdown
// SETUP -> TRACK_INTRO -> READY -> SET -> GO -> RACE. The clock is frozen
// while the in-game menu is open.
func UpdateRace(w donburi.World) {
	race, ok := GetRace(w)
	if !ok {
		return
	}
	race.PhaseChanged = false
	if race.Phase == netconfig.PhaseInGameMenu {
		return
	}

	race.PhaseTicks++
	switch race.Phase {
	case netconfig.PhaseSetup:
		advancePhase(race, cfg.Race.SetupTicks, netconfig.PhaseTrackIntro)
	case netconfig.PhaseTrackIntro:
		advancePhase(race, cfg.Race.TrackIntroTicks, netconfig.PhaseReady)
	case netconfig.PhaseReady:
		advancePhase(race, cfg.Race.ReadyTicks, netconfig.PhaseSet)
	case netconfig.PhaseSet:
		advancePhase(race, cfg.Race.SetTicks, netconfig.PhaseGo)
	case netconfig.PhaseGo:
		race.TicksSinceStart++
		advancePhase(race, cfg.Race.GoTicks, netconfig.PhaseRace)
	case netconfig.PhaseRace:
		race.TicksSinceStart++
	}
}

func advancePhase(race *components.RaceData, length int, next netconfig.Phase) {
	if race.PhaseTicks >= length {
		SetPhase(race, next)
	}
}

// SetPhase switches the race phase and restarts the phase timer.
func SetPhase(race *components.RaceData, phase netconfig.Phase) {
	race.Phase = phase
	race.PhaseTicks = 0
	race.PhaseChanged = true
}

// SetPaused opens or closes the in-game menu. Resuming returns to the phase
// the race was paused in.
func SetPaused(w donburi.World, paused bool) {
	race, ok := GetRace(w)
	if !ok {
		return
	}
	switch {
	case paused && race.Phase != netconfig.PhaseInGameMenu:
		race.PausedFrom = race.Phase
		race.Phase = netconfig.PhaseInGameMenu
		race.PhaseChanged = true
	case !paused && race.Phase == netconfig.PhaseInGameMenu:
		race.Phase = race.PausedFrom
		race.PhaseChanged = true
	}
}

// IsPaused reports whether the in-game menu is open.
func IsPaused(w donburi.World) bool {
	race, ok := GetRace(w)
	return ok && race.Phase == netconfig.PhaseInGameMenu
}

// PauseToggle is the escape handler of an offline race: PAUSE_RACE opens the
// in-game menu, pressing it again resumes.
type PauseToggle struct {
	world donburi.World
}

func NewPauseToggle(w donburi.World) PauseToggle {
	return PauseToggle{world: w}
}

func (p PauseToggle) EscapePressed() {
	SetPaused(p.world, !IsPaused(p.world))
}
