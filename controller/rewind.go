package controller

import "github.com/automoto/kartrace-mp/shared/rewind"

// StateSize is the number of bytes SaveState appends.
const StateSize = 7

// SaveState appends the input state needed to replay ticks. Only the
// magnitude of the steering is kept.
func (pc *PlayerController) SaveState(buf *rewind.Buffer) bool {
	steer := pc.steerValue
	if steer < 0 {
		steer = -steer
	}
	buf.AddUint16(uint16(steer)).
		AddUint16(pc.prevAccel).
		AddUint16(pc.prevBrake)
	if pc.prevNitro {
		buf.AddUint8(1)
	} else {
		buf.AddUint8(0)
	}
	return true
}

// RewindTo restores the state written by SaveState. Steering sides, the
// penalty and the stuck timer are left untouched.
func (pc *PlayerController) RewindTo(buf *rewind.Buffer) {
	pc.steerValue = int(buf.GetUint16())
	pc.prevAccel = buf.GetUint16()
	pc.prevBrake = buf.GetUint16()
	pc.prevNitro = buf.GetUint8() != 0
}
