package devices

import (
	"math"

	"github.com/automoto/kartrace-mp/shared/netconfig"
)

// Event is one input change for the controller.
type Event struct {
	Action netconfig.PlayerAction
	Value  int
}

// Values holds the current value of every action for one poll.
type Values [netconfig.ActionCount]int

// Press records a digital press of action.
func (v *Values) Press(action netconfig.PlayerAction) {
	v.Merge(action, netconfig.MaxValue)
}

// Merge keeps the strongest value reported for action by any device.
func (v *Values) Merge(action netconfig.PlayerAction, value int) {
	if value > v[action] {
		v[action] = value
	}
}

// scaled maps a magnitude in [0,1] to 1..MaxValue-1, or MaxValue when the
// input is fully pressed.
func scaled(mag float64) int {
	if mag >= 1 {
		return netconfig.MaxValue
	}
	v := int(math.Round(mag * netconfig.MaxValue))
	if v < 1 {
		v = 1
	}
	if v >= netconfig.MaxValue {
		v = netconfig.MaxValue - 1
	}
	return v
}

// AxisValues splits a stick axis in [-1,1] into left and right steering
// values. Travel inside the deadzone reads as released; the rest is rescaled
// so the edge of the deadzone is zero.
func AxisValues(axis, deadzone float64) (left, right int) {
	mag := math.Abs(axis)
	if mag <= deadzone {
		return 0, 0
	}
	v := scaled((mag - deadzone) / (1 - deadzone))
	if axis < 0 {
		return v, 0
	}
	return 0, v
}

// TriggerValue converts trigger travel in [0,1].
func TriggerValue(travel, threshold float64) int {
	if travel <= threshold {
		return 0
	}
	return scaled(travel)
}

// Tracker remembers the last reported value of each action so that only
// changes become events.
type Tracker struct {
	last Values
}

// Diff returns events for every action whose value differs from the previous
// call, in action order.
func (t *Tracker) Diff(current Values) []Event {
	var events []Event
	for a := netconfig.ActionNone + 1; a < netconfig.ActionCount; a++ {
		if current[a] != t.last[a] {
			events = append(events, Event{Action: a, Value: current[a]})
		}
	}
	t.last = current
	return events
}

// Release forgets the held state so that every pressed input is reported
// again on the next Diff.
func (t *Tracker) Release() {
	t.last = Values{}
}
