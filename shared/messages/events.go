package messages

import "github.com/automoto/kartrace-mp/shared/netconfig"

// PhaseChangeEvent is broadcast when the race phase changes
type PhaseChangeEvent struct {
	Phase           netconfig.Phase
	TicksSinceStart int
}

// RaceMessageEvent asks a client to show a general race message, e.g. a
// server-side false start verdict.
type RaceMessageEvent struct {
	KartID  int // -1 for every kart
	Text    string
	Seconds float64
}
