package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/kartrace-mp/assets"
	"github.com/automoto/kartrace-mp/components"
	cfg "github.com/automoto/kartrace-mp/config"
	"github.com/automoto/kartrace-mp/controller"
	"github.com/automoto/kartrace-mp/devices"
	"github.com/automoto/kartrace-mp/logging"
	"github.com/automoto/kartrace-mp/systems"
	"github.com/automoto/kartrace-mp/view"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

const localKartID = 0

// RaceScene is an offline race driven by the local simulation.
type RaceScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	sim          *systems.Simulation
	pc           *controller.PlayerController
	poller       *devices.Poller
	dispatcher   *devices.Dispatcher
	raceView     *view.RaceView
	wasPaused    bool
	quit         bool
	once         sync.Once
}

func NewRaceScene(sc SceneChanger) *RaceScene {
	return &RaceScene{sceneChanger: sc}
}

func (rs *RaceScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()

	if rs.quit {
		rs.sceneChanger.ChangeScene(NewMenuScene(rs.sceneChanger))
	}
}

func (rs *RaceScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *RaceScene) configure() {
	track := assets.MustLoadTrack(cfg.Race.DefaultTrack)
	rs.sim = systems.NewSimulation(systems.SimulationOptions{
		Track:    track.Track,
		TickRate: ebiten.TPS(),
		Logger:   logging.Named("race"),
	})

	pc, err := rs.sim.AddKart(localKartID, cfg.Race.PlayerName, true)
	if err != nil {
		panic(fmt.Sprintf("Failed to add local kart: %v", err))
	}
	rs.pc = pc
	rs.poller = devices.NewPoller()
	rs.dispatcher = devices.NewDispatcher(pc, localKartID, nil)
	rs.raceView = view.NewRaceView(track.Background)

	rs.ecs = ecs.NewECS(rs.sim.World())
	rs.ecs.AddSystem(rs.updateInput)
	rs.ecs.AddSystem(func(*ecs.ECS) { rs.sim.Tick() })
	rs.ecs.AddSystem(rs.updatePause)
	rs.ecs.AddSystem(func(e *ecs.ECS) { view.PlaySounds(systems.DrainSounds(e.World)) })
	rs.ecs.AddSystem(func(*ecs.ECS) { rs.raceView.Update() })

	rs.ecs.AddRenderer(layerDefault, func(e *ecs.ECS, screen *ebiten.Image) {
		rs.raceView.Draw(screen, systems.SimPoses(e.World))
	})
	rs.ecs.AddRenderer(layerDefault, rs.drawHUD)
	if cfg.Debug.Overlay {
		rs.ecs.AddRenderer(layerDefault, rs.drawDebug)
	}
}

func (rs *RaceScene) updateInput(_ *ecs.ECS) {
	rs.dispatcher.Dispatch(rs.poller.Poll())
}

// updatePause handles the in-game menu. Leaving it forgets held input, so
// the driver has to press again.
func (rs *RaceScene) updatePause(e *ecs.ECS) {
	paused := systems.IsPaused(e.World)
	if paused && inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		rs.quit = true
	}
	if rs.wasPaused && !paused {
		rs.pc.ResetInputState()
	}
	rs.wasPaused = paused
}

func (rs *RaceScene) drawHUD(e *ecs.ECS, screen *ebiten.Image) {
	hud := view.HUD{}
	if race, ok := systems.GetRace(e.World); ok {
		hud.Phase = race.Phase
	}
	if msg, ok := systems.CurrentRaceMessage(e.World); ok {
		hud.Message = msg.Text
	}
	if rs.wasPaused {
		hud.Status = "Esc: resume  Q: quit"
	}
	view.DrawHUD(screen, hud)
}

func (rs *RaceScene) drawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if space, ok := components.Space.First(e.World); ok {
		view.DrawSpace(screen, components.Space.Get(space))
	}
	race, ok := systems.GetRace(e.World)
	if !ok {
		return
	}
	view.DrawDebug(screen, view.DebugLines(race.Phase, race.TicksSinceStart, rs.pc))
}
