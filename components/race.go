package components

import (
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"github.com/automoto/kartrace-mp/shared/trackdata"
	"github.com/yohamta/donburi"
)

// RaceData stores the race clock and phase.
// This is a singleton component - only one race exists at a time.
type RaceData struct {
	Phase           netconfig.Phase
	PhaseTicks      int // Ticks spent in the current phase
	TicksSinceStart int // Counts from GO, zero during the countdown
	TickRate        int
	PhaseChanged    bool // Set on the tick the phase changed
	PausedFrom      netconfig.Phase
	Track           *trackdata.Track
}

var Race = donburi.NewComponentType[RaceData]()

// RaceMessageData is the general message shown over the race.
// This is a singleton component.
type RaceMessageData struct {
	Text      string
	Remaining float64 // Seconds left to show Text
	KartID    int     // Kart the message is about, -1 for everyone
	Seq       int     // Bumped on every new message
}

var RaceMessage = donburi.NewComponentType[RaceMessageData]()

// SoundQueueData holds quick sounds requested this tick.
// This is a singleton component.
type SoundQueueData struct {
	Pending []string
}

var SoundQueue = donburi.NewComponentType[SoundQueueData]()
