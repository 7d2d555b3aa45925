// Package netconfig defines lightweight types shared between client and server
// for network serialization. It must have zero dependencies on ebiten or any
// graphics library so the dedicated server binary stays headless.
package netconfig

// MaxValue is the magnitude of a fully pressed digital input. Analog inputs
// report 1..MaxValue-1, a released input reports 0.
const MaxValue = 32768

// PlayerAction represents a logical kart action carried by input devices and
// by the game protocol.
type PlayerAction int

const (
	ActionNone PlayerAction = iota
	ActionSteerLeft
	ActionSteerRight
	ActionAccel
	ActionBrake
	ActionNitro
	ActionDrift
	ActionRescue
	ActionFire
	ActionLookBack
	ActionPauseRace
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:       "none",
	ActionSteerLeft:  "steer_left",
	ActionSteerRight: "steer_right",
	ActionAccel:      "accel",
	ActionBrake:      "brake",
	ActionNitro:      "nitro",
	ActionDrift:      "drift",
	ActionRescue:     "rescue",
	ActionFire:       "fire",
	ActionLookBack:   "look_back",
	ActionPauseRace:  "pause_race",
}

func (a PlayerAction) String() string {
	if a >= 0 && a < ActionCount {
		return actionNames[a]
	}
	return "unknown"
}

// Phase is the race world status.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseTrackIntro
	PhaseReady
	PhaseSet
	PhaseGo
	PhaseMusic
	PhaseRace
	PhaseDelayFinish
	PhaseResultDisplay
	PhaseFinish
	PhaseInGameMenu
	PhaseUndefined
)

var phaseNames = map[Phase]string{
	PhaseSetup:         "setup",
	PhaseTrackIntro:    "track_intro",
	PhaseReady:         "ready",
	PhaseSet:           "set",
	PhaseGo:            "go",
	PhaseMusic:         "music",
	PhaseRace:          "race",
	PhaseDelayFinish:   "delay_finish",
	PhaseResultDisplay: "result_display",
	PhaseFinish:        "finish",
	PhaseInGameMenu:    "in_game_menu",
	PhaseUndefined:     "undefined",
}

// IsStart reports whether the phase is part of the start countdown,
// i.e. anything before GO.
func (p Phase) IsStart() bool {
	return p < PhaseGo
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// SkidControl is the commanded skid direction forwarded to physics.
type SkidControl int

const (
	SkidNone SkidControl = iota
	SkidLeft
	SkidRight
)

func (s SkidControl) String() string {
	switch s {
	case SkidLeft:
		return "left"
	case SkidRight:
		return "right"
	default:
		return "none"
	}
}
