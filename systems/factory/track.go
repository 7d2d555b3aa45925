package factory

import (
	"github.com/automoto/kartrace-mp/archetypes"
	"github.com/automoto/kartrace-mp/components"
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"github.com/automoto/kartrace-mp/shared/trackdata"
	"github.com/yohamta/donburi"
)

// CreateRace creates the race singleton in the SETUP phase, the collision
// space and every wall and zipper of track.
func CreateRace(w donburi.World, track *trackdata.Track, tickRate int) *donburi.Entry {
	race := archetypes.Race.Spawn(w)
	components.Race.SetValue(race, components.RaceData{
		Phase:        netconfig.PhaseSetup,
		TickRate:     tickRate,
		PhaseChanged: true,
		Track:        track,
	})
	components.RaceMessage.SetValue(race, components.RaceMessageData{KartID: -1})

	CreateSpace(w, track.Width, track.Height)
	for _, r := range track.Walls {
		CreateWall(w, r)
	}
	for _, r := range track.Zippers {
		CreateZipper(w, r)
	}

	return race
}
