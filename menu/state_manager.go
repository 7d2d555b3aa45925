// Package menu holds the screen stack and the headless logic of the online
// entry screens. Widgets live in ui; this package only decides what happens.
package menu

import "github.com/automoto/kartrace-mp/logging"

// Screen is one entry of the menu stack.
type Screen interface {
	Name() string
	// Init runs whenever the screen becomes the top of the stack.
	Init()
	OnUpdate(dt float64)
	// OnEscapePressed returns true when the screen should be popped.
	OnEscapePressed() bool
}

// StateManager is a stack of screens. Only the top screen is updated.
type StateManager struct {
	stack []Screen
}

func NewStateManager() *StateManager {
	return &StateManager{}
}

// Push makes s the top screen.
func (m *StateManager) Push(s Screen) {
	m.stack = append(m.stack, s)
	logging.Log.Debugf("[menu] push %s", s.Name())
	s.Init()
}

// Pop removes the top screen and re-initializes the one below it.
func (m *StateManager) Pop() Screen {
	if len(m.stack) == 0 {
		return nil
	}
	top := m.stack[len(m.stack)-1]
	m.stack[len(m.stack)-1] = nil
	m.stack = m.stack[:len(m.stack)-1]
	logging.Log.Debugf("[menu] pop %s", top.Name())
	if next := m.Top(); next != nil {
		next.Init()
	}
	return top
}

// ResetAndSetStack replaces the whole stack. The last screen is the top.
func (m *StateManager) ResetAndSetStack(screens ...Screen) {
	m.stack = append(m.stack[:0:0], screens...)
	if top := m.Top(); top != nil {
		logging.Log.Debugf("[menu] reset stack, top %s", top.Name())
		top.Init()
	}
}

// Top returns the current screen, or nil when the stack is empty.
func (m *StateManager) Top() Screen {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

func (m *StateManager) Len() int {
	return len(m.stack)
}

// Update forwards the frame to the top screen.
func (m *StateManager) Update(dt float64) {
	if top := m.Top(); top != nil {
		top.OnUpdate(dt)
	}
}

// EscapePressed asks the top screen whether it wants to close and pops it if
// so. It also receives the pause action during a race.
func (m *StateManager) EscapePressed() {
	top := m.Top()
	if top == nil {
		return
	}
	if top.OnEscapePressed() {
		m.Pop()
	}
}
