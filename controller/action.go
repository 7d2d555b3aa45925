package controller

import (
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"go.uber.org/zap"
)

type mutationKind int

const (
	setSteerLeft mutationKind = iota
	setSteerRight
	setSteerValue
	setPrevAccel
	setPrevNitro
	setAccel
	setNitro
	setRescue
	setSkidControl
	escapePressed
)

// mutation is one field write an input event asks for. Decoding an event
// yields a list of these; dry-run compares them against the current state and
// the applied path performs them.
type mutation struct {
	kind mutationKind
	i    int
	f    float32
	b    bool
	skid netconfig.SkidControl
}

// decode translates an input event into the writes it implies, computed from
// the current state. The second result is false for actions the controller
// does not handle.
func (pc *PlayerController) decode(action netconfig.PlayerAction, value int) ([]mutation, bool) {
	muts := pc.scratch[:0]

	switch action {
	case netconfig.ActionSteerLeft:
		muts = append(muts, mutation{kind: setSteerLeft, i: value})
		if value != 0 {
			muts = append(muts, mutation{kind: setSteerValue, i: value})
			if pc.controls.SkidControl() == netconfig.SkidNone {
				muts = append(muts, mutation{kind: setSkidControl, skid: netconfig.SkidLeft})
			}
		} else {
			muts = append(muts, mutation{kind: setSteerValue, i: pc.steerRight})
		}

	case netconfig.ActionSteerRight:
		muts = append(muts, mutation{kind: setSteerRight, i: -value})
		if value != 0 {
			muts = append(muts, mutation{kind: setSteerValue, i: -value})
			if pc.controls.SkidControl() == netconfig.SkidNone {
				muts = append(muts, mutation{kind: setSkidControl, skid: netconfig.SkidRight})
			}
		} else {
			muts = append(muts, mutation{kind: setSteerValue, i: pc.steerLeft})
		}

	case netconfig.ActionAccel:
		v16 := uint16(value)
		muts = append(muts,
			mutation{kind: setPrevAccel, i: int(v16)},
			mutation{kind: setAccel, f: float32(v16) / netconfig.MaxValue},
		)

	case netconfig.ActionNitro:
		pressed := value != 0
		muts = append(muts,
			mutation{kind: setPrevNitro, b: pressed},
			mutation{kind: setNitro, b: pressed && pc.controls.Accel() != 0},
		)

	case netconfig.ActionRescue:
		muts = append(muts, mutation{kind: setRescue, b: value != 0})

	case netconfig.ActionPauseRace:
		if value != 0 {
			muts = append(muts, mutation{kind: escapePressed})
		}

	default:
		return nil, false
	}

	return muts, true
}

// wouldChange reports whether performing muts would modify any field.
func (pc *PlayerController) wouldChange(muts []mutation) bool {
	for _, m := range muts {
		switch m.kind {
		case setSteerLeft:
			if pc.steerLeft != m.i {
				return true
			}
		case setSteerRight:
			if pc.steerRight != m.i {
				return true
			}
		case setSteerValue:
			if pc.steerValue != m.i {
				return true
			}
		case setPrevAccel:
			if int(pc.prevAccel) != m.i {
				return true
			}
		case setPrevNitro:
			if pc.prevNitro != m.b {
				return true
			}
		case setAccel:
			if pc.controls.Accel() != m.f {
				return true
			}
		case setNitro:
			if pc.controls.Nitro() != m.b {
				return true
			}
		case setRescue:
			if pc.controls.Rescue() != m.b {
				return true
			}
		case setSkidControl:
			if pc.controls.SkidControl() != m.skid {
				return true
			}
		}
	}
	return false
}

func (pc *PlayerController) apply(muts []mutation) {
	for _, m := range muts {
		switch m.kind {
		case setSteerLeft:
			pc.steerLeft = m.i
		case setSteerRight:
			pc.steerRight = m.i
		case setSteerValue:
			pc.steerValue = m.i
		case setPrevAccel:
			pc.prevAccel = uint16(m.i)
		case setPrevNitro:
			pc.prevNitro = m.b
		case setAccel:
			pc.controls.SetAccel(m.f)
		case setNitro:
			pc.controls.SetNitro(m.b)
		case setRescue:
			pc.controls.SetRescue(m.b)
		case setSkidControl:
			pc.controls.SetSkidControl(m.skid)
		case escapePressed:
			pc.session.Escape.EscapePressed()
		}
	}
}

// Action handles one input event. value is 0 for released, MaxValue for a
// fully pressed digital input and anything in between for analog input.
//
// With dryRun set nothing is modified and the result tells whether applying
// the event would change the controller; the network layer uses this to drop
// redundant events. Otherwise the event is applied and the result is true.
// Unrecognized actions are ignored and return !dryRun.
func (pc *PlayerController) Action(action netconfig.PlayerAction, value int, dryRun bool) bool {
	muts, ok := pc.decode(action, value)
	if !ok {
		return !dryRun
	}
	if dryRun {
		return pc.wouldChange(muts)
	}

	pc.apply(muts)
	if ce := pc.log.Check(zap.DebugLevel, "action"); ce != nil {
		ce.Write(
			zap.Stringer("action", action),
			zap.Int("value", value),
			zap.Int("steer", pc.steerValue),
		)
	}
	return true
}

// ActionFromNetwork applies an authoritative action after restoring both
// steering sides from the message, so that opposing-key releases resolve the
// same way they did on the sending machine.
func (pc *PlayerController) ActionFromNetwork(action netconfig.PlayerAction, value, valueL, valueR int) {
	pc.steerLeft = valueL
	pc.steerRight = valueR
	pc.Action(action, value, false)
}
