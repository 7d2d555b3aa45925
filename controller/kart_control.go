package controller

import "github.com/automoto/kartrace-mp/shared/netconfig"

// KartControl is the control vector a controller produces each tick and
// physics consumes. Only the owning controller writes it, except that physics
// clears SkidControl when a skid ends.
type KartControl struct {
	steer       float32 // [-1, 1]
	accel       float32 // [0, 1]
	brake       bool
	nitro       bool
	rescue      bool
	skidControl netconfig.SkidControl
}

func (c *KartControl) Steer() float32                     { return c.steer }
func (c *KartControl) Accel() float32                     { return c.accel }
func (c *KartControl) Brake() bool                        { return c.brake }
func (c *KartControl) Nitro() bool                        { return c.nitro }
func (c *KartControl) Rescue() bool                       { return c.rescue }
func (c *KartControl) SkidControl() netconfig.SkidControl { return c.skidControl }

func (c *KartControl) SetSteer(v float32)                     { c.steer = v }
func (c *KartControl) SetAccel(v float32)                     { c.accel = v }
func (c *KartControl) SetBrake(v bool)                        { c.brake = v }
func (c *KartControl) SetNitro(v bool)                        { c.nitro = v }
func (c *KartControl) SetRescue(v bool)                       { c.rescue = v }
func (c *KartControl) SetSkidControl(v netconfig.SkidControl) { c.skidControl = v }

// Reset zeroes every control.
func (c *KartControl) Reset() {
	*c = KartControl{}
}
