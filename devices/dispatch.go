package devices

import (
	"github.com/automoto/kartrace-mp/controller"
	"github.com/automoto/kartrace-mp/shared/netconfig"
)

// Target is the controller events are delivered to.
type Target interface {
	Action(action netconfig.PlayerAction, value int, dryRun bool) bool
	SteerLeft() int
	SteerRight() int
}

// Dispatcher delivers device events to a local controller. When a protocol
// is set the race is networked: events that would not change the controller
// are dropped, the rest are applied and sent to the server.
type Dispatcher struct {
	target   Target
	kartID   int
	protocol controller.ProtocolLocker
}

func NewDispatcher(target Target, kartID int, protocol controller.ProtocolLocker) *Dispatcher {
	return &Dispatcher{target: target, kartID: kartID, protocol: protocol}
}

// Dispatch handles events in order and returns how many were forwarded.
func (d *Dispatcher) Dispatch(events []Event) int {
	sent := 0
	for _, e := range events {
		if d.protocol == nil {
			d.target.Action(e.Action, e.Value, false)
			continue
		}
		// Pausing is local; the server race keeps running.
		if e.Action == netconfig.ActionPauseRace {
			d.target.Action(e.Action, e.Value, false)
			continue
		}
		if !d.target.Action(e.Action, e.Value, true) {
			continue
		}
		d.target.Action(e.Action, e.Value, false)
		if proto, ok := d.protocol.LockGameProtocol(); ok {
			proto.ControllerAction(d.kartID, e.Action, e.Value, d.target.SteerLeft(), d.target.SteerRight())
			sent++
		}
	}
	return sent
}
