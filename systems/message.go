package systems

import (
	"github.com/automoto/kartrace-mp/components"
	"github.com/yohamta/donburi"
)

// MessageBoard shows general race messages for one kart.
type MessageBoard struct {
	world  donburi.World
	kartID int
}

func NewMessageBoard(w donburi.World, kartID int) *MessageBoard {
	return &MessageBoard{world: w, kartID: kartID}
}

func (b *MessageBoard) DisplayGeneralRaceMessage(text string, seconds float64) {
	ShowRaceMessage(b.world, b.kartID, text, seconds)
}

// ShowRaceMessage replaces the current race message. kartID is -1 for a
// message meant for everyone.
func ShowRaceMessage(w donburi.World, kartID int, text string, seconds float64) {
	entry, ok := components.RaceMessage.First(w)
	if !ok {
		return
	}
	msg := components.RaceMessage.Get(entry)
	msg.Text = text
	msg.Remaining = seconds
	msg.KartID = kartID
	msg.Seq++
}

// CurrentRaceMessage returns the message being shown, if any.
func CurrentRaceMessage(w donburi.World) (components.RaceMessageData, bool) {
	entry, ok := components.RaceMessage.First(w)
	if !ok {
		return components.RaceMessageData{}, false
	}
	msg := components.RaceMessage.Get(entry)
	return *msg, msg.Text != ""
}

// UpdateRaceMessages counts down the shown message and clears it when its
// time is up.
func UpdateRaceMessages(w donburi.World) {
	entry, ok := components.RaceMessage.First(w)
	if !ok {
		return
	}
	msg := components.RaceMessage.Get(entry)
	if msg.Text == "" {
		return
	}
	msg.Remaining -= NewRaceWorld(w).TicksToTime(1)
	if msg.Remaining <= 0 {
		msg.Text = ""
		msg.Remaining = 0
		msg.KartID = -1
	}
}
