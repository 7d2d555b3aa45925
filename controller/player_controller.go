// Package controller turns player input into per-tick kart controls. It
// enforces the start countdown and false-start penalty, rescues karts that
// are stuck and saves its input state for network rewind.
//
// The package is headless: everything it talks to is injected through a
// Session, and only the tick goroutine may call into a controller.
package controller

import (
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"go.uber.org/zap"
)

// PlayerController drives one kart from a human player's input, either local
// or replicated from the network.
type PlayerController struct {
	kart     Kart
	session  Session
	controls KartControl
	local    bool
	log      *zap.Logger

	// steerLeft holds the left input, steerRight the negated right input, so
	// steerValue is always a plain copy of one of them (or zero).
	steerLeft  int
	steerRight int
	steerValue int

	prevAccel uint16
	prevBrake uint16
	prevNitro bool

	// penaltyTicks is the TicksSinceStart value at which a false-start
	// penalty ends; zero means no penalty was given.
	penaltyTicks int
	stuckTime    float64

	// scratch backs the mutation list decoded by Action, so decoding does
	// not allocate.
	scratch [3]mutation
}

// New creates a controller for kart. local is false for the server-side
// replica of a remote player; such a controller never plays sounds or shows
// messages.
func New(kart Kart, session Session, local bool) *PlayerController {
	session.fillDefaults()
	pc := &PlayerController{
		kart:    kart,
		session: session,
		local:   local,
		log: session.Logger.With(
			zap.Int("kart", kart.WorldKartID()),
			zap.Bool("local", local),
		),
	}
	return pc
}

// Reset prepares the controller for a race start or restart.
func (pc *PlayerController) Reset() {
	pc.clearInput()
	pc.penaltyTicks = 0
}

// ResetInputState forgets all held input, e.g. when returning from the in-game
// menu. An active false-start penalty is kept.
func (pc *PlayerController) ResetInputState() {
	pc.clearInput()
	pc.controls.Reset()
}

func (pc *PlayerController) clearInput() {
	pc.steerLeft = 0
	pc.steerRight = 0
	pc.steerValue = 0
	pc.prevBrake = 0
	pc.prevAccel = 0
	pc.prevNitro = false
	pc.stuckTime = 0
}

// Steer converts the effective steering input into the steer control. While
// the kart skids the previous steering is kept if the configuration says so.
// ticks is currently unused.
func (pc *PlayerController) Steer(ticks int, steerVal int) {
	if pc.session.Config.DisableSteerWhileUnskid && pc.kart.Skidding().IsSkidding() {
		return
	}
	pc.controls.SetSteer(float32(steerVal) / netconfig.MaxValue)
}

// HandleZipper is called when the kart drives over a zipper. Sound is played
// elsewhere, so playSound is ignored.
func (pc *PlayerController) HandleZipper(playSound bool) {
	pc.kart.ShowZipperFire()
}

// SkidBonusTriggered plays the skid bonus cue for local players.
func (pc *PlayerController) SkidBonusTriggered() {
	if pc.local {
		pc.session.SFX.QuickSound("skid_bonus")
	}
}

// Name returns the driver's name. short is currently ignored.
func (pc *PlayerController) Name(short bool) string {
	return pc.kart.DriverName()
}

// Read-only views of the controller state for physics, rewinders, the HUD
// and tests. Controls is the exception: physics may clear SkidControl.
func (pc *PlayerController) Controls() *KartControl { return &pc.controls }
func (pc *PlayerController) Kart() Kart             { return pc.kart }
func (pc *PlayerController) IsLocal() bool          { return pc.local }
func (pc *PlayerController) SteerValue() int        { return pc.steerValue }
func (pc *PlayerController) SteerLeft() int         { return pc.steerLeft }
func (pc *PlayerController) SteerRight() int        { return pc.steerRight }
func (pc *PlayerController) PrevAccel() uint16      { return pc.prevAccel }
func (pc *PlayerController) PrevBrake() uint16      { return pc.prevBrake }
func (pc *PlayerController) PrevNitro() bool        { return pc.prevNitro }
func (pc *PlayerController) PenaltyTicks() int      { return pc.penaltyTicks }
func (pc *PlayerController) StuckTime() float64     { return pc.stuckTime }
func (pc *PlayerController) Config() Config         { return pc.session.Config }

// RestoreSteerSign reapplies a steering direction that the 7-byte snapshot
// drops. Call it after RewindTo with the sign saved alongside.
func (pc *PlayerController) RestoreSteerSign(negative bool) {
	if (pc.steerValue < 0) != negative {
		pc.steerValue = -pc.steerValue
	}
}
