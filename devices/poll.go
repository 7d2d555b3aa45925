package devices

import (
	cfg "github.com/automoto/kartrace-mp/config"
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"github.com/hajimehoshi/ebiten/v2"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poller reads the keyboard and every standard-layout gamepad.
type Poller struct {
	tracker Tracker
}

func NewPoller() *Poller {
	return &Poller{}
}

// Poll returns the input changes since the previous call.
func (p *Poller) Poll() []Event {
	return p.tracker.Diff(ReadValues())
}

// Release forgets held inputs, e.g. after returning from a menu.
func (p *Poller) Release() {
	p.tracker.Release()
}

// ReadValues samples every device once.
func ReadValues() Values {
	var v Values

	for action, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				v.Press(action)
			}
		}
	}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for action, binding := range Bindings {
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					v.Press(action)
				}
			}
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		left, right := AxisValues(horizontal, cfg.Input.AnalogDeadzone)
		v.Merge(netconfig.ActionSteerLeft, left)
		v.Merge(netconfig.ActionSteerRight, right)

		// Triggers are the bottom front buttons, read as analog travel
		accel := ebiten.StandardGamepadButtonValue(gpID, ebiten.StandardGamepadButtonFrontBottomRight)
		brake := ebiten.StandardGamepadButtonValue(gpID, ebiten.StandardGamepadButtonFrontBottomLeft)
		v.Merge(netconfig.ActionAccel, TriggerValue(accel, cfg.Input.TriggerThreshold))
		v.Merge(netconfig.ActionBrake, TriggerValue(brake, cfg.Input.TriggerThreshold))
	}

	return v
}
