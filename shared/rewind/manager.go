package rewind

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrUnknownTick is returned when no snapshot exists for the requested tick.
var ErrUnknownTick = errors.New("rewind: no state stored for tick")

// Rewinder is anything whose state can be saved into and restored from a
// Buffer. RewindTo must read exactly what SaveState wrote.
type Rewinder interface {
	SaveState(buf *Buffer) bool
	RewindTo(buf *Buffer)
}

type registered struct {
	name     string
	rewinder Rewinder
}

// Manager snapshots every registered Rewinder once per tick and restores them
// on demand. Each rewinder's bytes are framed with a u16 length so a
// misbehaving rewinder cannot shift the ones after it.
type Manager struct {
	rewinders []registered
	history   History
	scratch   Buffer
	log       *zap.Logger
}

// NewManager creates a manager that logs through logger (nil means no-op).
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{log: logger.Named("rewind")}
}

// Register adds a rewinder. Registration order is the serialization order.
func (m *Manager) Register(name string, r Rewinder) {
	m.rewinders = append(m.rewinders, registered{name: name, rewinder: r})
}

// Unregister removes the rewinder registered under name.
func (m *Manager) Unregister(name string) {
	for i, reg := range m.rewinders {
		if reg.name == name {
			m.rewinders = append(m.rewinders[:i], m.rewinders[i+1:]...)
			return
		}
	}
}

// Len is the number of registered rewinders.
func (m *Manager) Len() int {
	return len(m.rewinders)
}

// SaveState snapshots all rewinders as the state at the end of tick.
func (m *Manager) SaveState(tick int) {
	out := NewBuffer(nil)
	for _, reg := range m.rewinders {
		m.scratch.Reset()
		if !reg.rewinder.SaveState(&m.scratch) {
			out.AddUint16(0)
			continue
		}
		out.AddUint16(uint16(m.scratch.Size()))
		out.data = append(out.data, m.scratch.Bytes()...)
	}
	m.history.Store(tick, out.Bytes())
}

// RewindTo restores every rewinder to the state saved at tick.
func (m *Manager) RewindTo(tick int) error {
	data, ok := m.history.Get(tick)
	if !ok {
		return errors.Wrapf(ErrUnknownTick, "tick %d", tick)
	}

	in := NewBuffer(data)
	for _, reg := range m.rewinders {
		n := int(in.GetUint16())
		if in.Err() != nil {
			return errors.Wrapf(in.Err(), "rewind %s at tick %d", reg.name, tick)
		}
		if n == 0 {
			continue
		}
		chunk, ok := in.take(n)
		if !ok {
			return errors.Wrapf(in.Err(), "rewind %s at tick %d", reg.name, tick)
		}
		sub := NewBuffer(chunk)
		reg.rewinder.RewindTo(sub)
		if sub.Err() != nil {
			return errors.Wrapf(sub.Err(), "rewind %s at tick %d", reg.name, tick)
		}
		if sub.Remaining() != 0 {
			m.log.Warn("rewinder left unread bytes",
				zap.String("rewinder", reg.name),
				zap.Int("tick", tick),
				zap.Int("unread", sub.Remaining()))
		}
	}
	return nil
}

// Replay restores the state saved at from, then calls step for every tick in
// (from, to] and saves the resulting state after each one.
func (m *Manager) Replay(from, to int, step func(tick int)) error {
	if err := m.RewindTo(from); err != nil {
		return err
	}
	m.history.DiscardAfter(from)

	m.log.Debug("replaying ticks", zap.Int("from", from), zap.Int("to", to))
	for t := from + 1; t <= to; t++ {
		step(t)
		m.SaveState(t)
	}
	return nil
}

// Forget drops all stored states. Call it whenever the set of rewinders
// changes, old snapshots no longer line up with the registration order.
func (m *Manager) Forget() {
	m.history.Clear()
}

// History exposes the stored snapshots.
func (m *Manager) History() *History {
	return &m.history
}
