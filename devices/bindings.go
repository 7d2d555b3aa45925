// Package devices turns keyboard and gamepad state into kart input events.
package devices

import (
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding lists the digital inputs that press an action.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps kart actions to their digital inputs. Analog sticks and
// triggers are read separately.
var Bindings = map[netconfig.PlayerAction]Binding{
	netconfig.ActionSteerLeft: {
		Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftLeft,
		},
	},
	netconfig.ActionSteerRight: {
		Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftRight,
		},
	},
	netconfig.ActionAccel: {
		Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
		},
	},
	netconfig.ActionBrake: {
		Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightRight,
		},
	},
	netconfig.ActionNitro: {
		Keys: []ebiten.Key{ebiten.KeyN},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightTop,
		},
	},
	netconfig.ActionDrift: {
		Keys: []ebiten.Key{ebiten.KeyV, ebiten.KeyShiftLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonFrontTopRight,
		},
	},
	netconfig.ActionRescue: {
		Keys: []ebiten.Key{ebiten.KeyBackspace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightLeft,
		},
	},
	netconfig.ActionLookBack: {
		Keys: []ebiten.Key{ebiten.KeyB},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonFrontTopLeft,
		},
	},
	netconfig.ActionPauseRace: {
		Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonCenterRight,
		},
	},
}
