package network

import "github.com/automoto/kartrace-mp/shared/messages"

const actionLogSize = 128

type actionRecord struct {
	tick    int
	valid   bool
	actions []messages.ControllerAction
}

// ActionLog is a ring buffer of controller actions keyed by the race tick
// they happened at. When an action arrives late the simulation rewinds and
// re-applies the logged actions of every replayed tick.
type ActionLog struct {
	records [actionLogSize]actionRecord
}

// Store records an action at its tick. Actions for a tick that has fallen
// out of the ring replace the stale slot.
func (l *ActionLog) Store(a messages.ControllerAction) {
	rec := &l.records[actionSlot(a.Ticks)]
	if !rec.valid || rec.tick != a.Ticks {
		rec.tick = a.Ticks
		rec.valid = true
		rec.actions = rec.actions[:0]
	}
	rec.actions = append(rec.actions, a)
}

// At returns the actions recorded for tick in arrival order.
func (l *ActionLog) At(tick int) []messages.ControllerAction {
	rec := l.records[actionSlot(tick)]
	if !rec.valid || rec.tick != tick {
		return nil
	}
	return rec.actions
}

// Covers reports whether tick is recent enough to still be in the log.
func (l *ActionLog) Covers(tick, now int) bool {
	return tick >= 0 && now-tick < actionLogSize
}

func actionSlot(tick int) int {
	idx := tick % actionLogSize
	if idx < 0 {
		idx += actionLogSize
	}
	return idx
}
