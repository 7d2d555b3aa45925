package systems

import (
	"math"
	"testing"

	"github.com/automoto/kartrace-mp/components"
	"github.com/automoto/kartrace-mp/controller"
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"github.com/automoto/kartrace-mp/shared/trackdata"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// testTrack is an open field with one wall across the road ahead of the grid,
// one zipper on the way and one rescue point.
func testTrack() *trackdata.Track {
	return &trackdata.Track{
		Name:   "test",
		Width:  640,
		Height: 480,
		Walls:  []trackdata.Rect{{X: 416, Y: 0, W: 32, H: 480}},
		Starts: []trackdata.StartPoint{
			{X: 96, Y: 240, Index: 0},
			{X: 96, Y: 320, Index: 1},
		},
		RescuePoints: []trackdata.RescuePoint{{X: 200, Y: 96, Heading: math.Pi / 2}},
		Zippers:      []trackdata.Rect{{X: 224, Y: 224, W: 32, H: 32}},
	}
}

func newTestSim(t *testing.T) *Simulation {
	t.Helper()
	return NewSimulation(SimulationOptions{
		Track:  testTrack(),
		Logger: zaptest.NewLogger(t),
	})
}

func addTestKart(t *testing.T, s *Simulation, id int, local bool) *controller.PlayerController {
	t.Helper()
	pc, err := s.AddKart(id, "Tux", local)
	require.NoError(t, err)
	return pc
}

// tickUntilPhase ticks until the race reaches phase.
func tickUntilPhase(t *testing.T, s *Simulation, phase netconfig.Phase) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if race, _ := GetRace(s.World()); race.Phase == phase {
			return
		}
		s.Tick()
	}
	t.Fatalf("race never reached %s", phase)
}

func kartData(t *testing.T, s *Simulation, id int) *components.KartData {
	t.Helper()
	e, ok := FindKart(s.World(), id)
	require.True(t, ok)
	return components.Kart.Get(e)
}
