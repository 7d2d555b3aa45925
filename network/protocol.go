package network

import (
	"sync"

	"github.com/automoto/kartrace-mp/controller"
	"github.com/automoto/kartrace-mp/logging"
	"github.com/automoto/kartrace-mp/shared/messages"
	"github.com/automoto/kartrace-mp/shared/netconfig"
)

// Sender is the part of a connection the game protocol writes to.
type Sender interface {
	SendMessage(msg any) error
	Connected() bool
}

// GameProtocol publishes controller actions to the race server.
type GameProtocol struct {
	sender Sender
	clock  func() int // Race ticks since start
}

// NewGameProtocol creates a protocol writing to sender. clock stamps each
// action with the current race tick so the server can rewind to it.
func NewGameProtocol(sender Sender, clock func() int) *GameProtocol {
	return &GameProtocol{sender: sender, clock: clock}
}

// ControllerAction sends one input event. Send failures are logged and the
// event is lost; the server's snapshots correct any divergence.
func (p *GameProtocol) ControllerAction(kartID int, action netconfig.PlayerAction, value, valueL, valueR int) {
	msg := messages.ControllerAction{
		KartID: kartID,
		Action: action,
		Value:  value,
		ValueL: valueL,
		ValueR: valueR,
		Ticks:  p.clock(),
	}
	if err := p.sender.SendMessage(msg); err != nil {
		logging.Log.Warnf("[protocol] dropped %s for kart %d: %v", action, kartID, err)
	}
}

// ProtocolHolder hands out the game protocol while it is attached to a live
// connection. It does not keep the connection alive.
type ProtocolHolder struct {
	mu    sync.Mutex
	proto *GameProtocol
}

// Attach makes p available to LockGameProtocol.
func (h *ProtocolHolder) Attach(p *GameProtocol) {
	h.mu.Lock()
	h.proto = p
	h.mu.Unlock()
}

// Detach forgets the protocol, e.g. when leaving the race.
func (h *ProtocolHolder) Detach() {
	h.mu.Lock()
	h.proto = nil
	h.mu.Unlock()
}

// LockGameProtocol returns the protocol if one is attached and its connection
// is up.
func (h *ProtocolHolder) LockGameProtocol() (controller.GameProtocol, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.proto == nil || !h.proto.sender.Connected() {
		return nil, false
	}
	return h.proto, true
}
