package messages

import "github.com/automoto/kartrace-mp/shared/netconfig"

// ControllerAction carries one input event of a kart. Clients send it to the
// server, which applies it and forwards it to every other client. ValueL and
// ValueR are the sender's steering sides at the time of the event so the
// receiver resolves opposing-key releases the same way.
type ControllerAction struct {
	KartID int
	Action netconfig.PlayerAction
	Value  int
	ValueL int
	ValueR int
	Ticks  int // Race ticks since start when the action happened
}
