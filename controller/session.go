package controller

import (
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"go.uber.org/zap"
)

// Kart is the controller's non-owning view of the kart it drives. The kart
// owns the controller, never the other way around.
type Kart interface {
	Speed() float64
	// KartAnimation reports whether any animation (rescue, explosion) is playing.
	KartAnimation() bool
	Skidding() Skidding
	DriverName() string
	WorldKartID() int
	ShowZipperFire()
}

// Skidding is the physics-side skid state of a kart.
type Skidding interface {
	IsSkidding() bool
}

// World is the race clock and phase oracle.
type World interface {
	IsStartPhase() bool
	Phase() netconfig.Phase
	TicksSinceStart() int
	TicksToTime(ticks int) float64
	SecondsToTicks(seconds float64) int
}

// NetworkMode tells whether the race is a networked session.
type NetworkMode interface {
	IsNetworking() bool
}

// GameProtocol publishes controller actions to the network authority.
type GameProtocol interface {
	ControllerAction(kartID int, action netconfig.PlayerAction, value, valueL, valueR int)
}

// ProtocolLocker hands out the game protocol for the duration of one call.
// The second return value is false when no protocol is available.
type ProtocolLocker interface {
	LockGameProtocol() (GameProtocol, bool)
}

// RescueFactory starts the rescue animation of a kart.
type RescueFactory interface {
	CreateRescue(kart Kart)
}

// SFX plays short one-shot sound cues by name.
type SFX interface {
	QuickSound(name string)
}

// RaceGUI shows general messages over the race view.
type RaceGUI interface {
	DisplayGeneralRaceMessage(text string, seconds float64)
}

// EscapeHandler receives the pause request from the PAUSE_RACE action.
type EscapeHandler interface {
	EscapePressed()
}

// Config holds the tuning values the controller reads.
type Config struct {
	// DisableSteerWhileUnskid keeps the previous steering while the kart skids.
	DisableSteerWhileUnskid bool
	// StuckSpeed is the speed (m/s) below which the kart counts as stationary.
	StuckSpeed float64
	// StuckTime is how long (s) a kart may be stationary before auto-rescue.
	StuckTime float64
	// FalseStartPenalty is how long (s) throttle and brake stay locked after a
	// false start.
	FalseStartPenalty float64
	// PenaltyMessage is the text shown on a false start.
	PenaltyMessage string
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		StuckSpeed:        2.0,
		StuckTime:         2.0,
		FalseStartPenalty: 2.0,
		PenaltyMessage:    "False start!  Brakes locked for two seconds.",
	}
}

// Session carries everything a controller needs from the running race. It
// replaces process-wide singletons so races can be driven deterministically
// in tests. Nil sinks are replaced with no-ops by New.
type Session struct {
	World    World
	Network  NetworkMode
	Protocol ProtocolLocker
	Rescue   RescueFactory
	SFX      SFX
	GUI      RaceGUI
	Escape   EscapeHandler
	Config   Config
	Logger   *zap.Logger
}

type nopSinks struct{}

func (nopSinks) IsNetworking() bool                        { return false }
func (nopSinks) LockGameProtocol() (GameProtocol, bool)    { return nil, false }
func (nopSinks) CreateRescue(Kart)                         {}
func (nopSinks) QuickSound(string)                         {}
func (nopSinks) DisplayGeneralRaceMessage(string, float64) {}
func (nopSinks) EscapePressed()                            {}

func (s *Session) fillDefaults() {
	var nop nopSinks
	if s.Network == nil {
		s.Network = nop
	}
	if s.Protocol == nil {
		s.Protocol = nop
	}
	if s.Rescue == nil {
		s.Rescue = nop
	}
	if s.SFX == nil {
		s.SFX = nop
	}
	if s.GUI == nil {
		s.GUI = nop
	}
	if s.Escape == nil {
		s.Escape = nop
	}
	if s.Logger == nil {
		s.Logger = zap.NewNop()
	}
}
