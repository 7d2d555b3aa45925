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
	"github.com/automoto/kartrace-mp/network"
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"github.com/automoto/kartrace-mp/systems"
	"github.com/automoto/kartrace-mp/view"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// NetworkedScene mirrors a race simulated by the server. Only the local
// kart's controller runs here; its input is checked locally and forwarded.
type NetworkedScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	client       *network.Client
	netCfg       *network.Config
	holder       *network.ProtocolHolder
	raceWorld    systems.NetRaceWorld
	pc           *controller.PlayerController
	poller       *devices.Poller
	dispatcher   *devices.Dispatcher
	raceView     *view.RaceView
	kartID       int
	leaveMenu    leaveMenu
	remote       int // Actions of other karts seen so far
	log          *zap.Logger
	once         sync.Once
}

func NewNetworkedScene(sc SceneChanger, client *network.Client, netCfg *network.Config) *NetworkedScene {
	return &NetworkedScene{
		sceneChanger: sc,
		client:       client,
		netCfg:       netCfg,
	}
}

// leaveMenu is the networked stand-in for pausing: the race goes on for
// everyone, so the first escape only asks and the second one leaves.
type leaveMenu struct {
	open  bool
	leave bool
}

func (m *leaveMenu) EscapePressed() {
	if m.open {
		m.leave = true
		return
	}
	m.open = true
}

func (s *NetworkedScene) Update() {
	s.once.Do(s.configure)

	if s.leaveMenu.leave || !s.client.Connected() {
		status := "Left the race"
		if !s.leaveMenu.leave {
			status = "Disconnected from server"
			if err := s.client.LastError(); err != nil {
				status = err.Error()
			}
		}
		s.shutdown()
		s.sceneChanger.ChangeScene(NewMenuSceneWithStatus(s.sceneChanger, status))
		return
	}

	s.ecs.Update()
}

func (s *NetworkedScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *NetworkedScene) configure() {
	s.log = logging.Named("client")
	s.kartID = s.client.WorldKartID()

	trackName := s.client.Track()
	if trackName == "" {
		trackName = cfg.Race.DefaultTrack
	}
	track := assets.MustLoadTrack(trackName)
	s.raceView = view.NewRaceView(track.Background)

	w := donburi.NewWorld()
	local := w.Entry(w.Create(components.RaceMessage, components.SoundQueue))
	components.RaceMessage.SetValue(local, components.RaceMessageData{KartID: -1})

	s.raceWorld = systems.NewNetRaceWorld(w, s.client.TickRate())
	s.holder = &network.ProtocolHolder{}
	s.holder.Attach(network.NewGameProtocol(s.client, s.raceWorld.Frame))

	s.pc = controller.New(systems.NewNetKartView(w, s.kartID), controller.Session{
		World:    s.raceWorld,
		Network:  s.netCfg,
		Protocol: s.holder,
		SFX:      systems.NewSFXQueue(w),
		GUI:      systems.NewMessageBoard(w, s.kartID),
		Escape:   &s.leaveMenu,
		Config:   cfg.Race.ControllerConfig(),
		Logger:   s.log,
	}, true)
	s.poller = devices.NewPoller()
	s.dispatcher = devices.NewDispatcher(s.pc, s.kartID, s.holder)

	s.log.Info("joined race",
		zap.String("server", s.client.ServerName()),
		zap.String("track", trackName),
		zap.Int("kart", s.kartID))

	s.ecs = ecs.NewECS(w)
	s.ecs.AddSystem(s.receive)
	s.ecs.AddSystem(s.updateInput)
	s.ecs.AddSystem(func(*ecs.ECS) { s.pc.Update(1) })
	s.ecs.AddSystem(func(e *ecs.ECS) {
		systems.UpdateNetInterp(e.World, float64(s.client.TickRate())/float64(ebiten.TPS()))
	})
	s.ecs.AddSystem(func(e *ecs.ECS) { systems.UpdateRaceMessages(e.World) })
	s.ecs.AddSystem(func(e *ecs.ECS) { view.PlaySounds(systems.DrainSounds(e.World)) })
	s.ecs.AddSystem(func(*ecs.ECS) { s.raceView.Update() })

	s.ecs.AddRenderer(layerDefault, func(e *ecs.ECS, screen *ebiten.Image) {
		s.raceView.Draw(screen, systems.NetPoses(e.World, s.kartID))
	})
	s.ecs.AddRenderer(layerDefault, s.drawHUD)
	if cfg.Debug.Overlay {
		s.ecs.AddRenderer(layerDefault, s.drawDebug)
	}
}

// receive applies everything the server sent since the last frame.
func (s *NetworkedScene) receive(e *ecs.ECS) {
	if snap := s.client.LatestSnapshot(); snap != nil {
		systems.ApplySnapshot(e.World, *snap)
	}

	for _, evt := range s.client.DrainPhaseEvents() {
		s.log.Debug("phase changed", zap.Stringer("phase", evt.Phase))
		if evt.Phase == netconfig.PhaseSetup {
			s.pc.Reset()
		}
	}

	for _, msg := range s.client.DrainRaceMessages() {
		if msg.KartID != -1 && msg.KartID != s.kartID {
			continue
		}
		systems.ShowRaceMessage(e.World, msg.KartID, msg.Text, msg.Seconds)
	}

	s.remote += len(s.client.DrainActions())
}

func (s *NetworkedScene) updateInput(_ *ecs.ECS) {
	if s.leaveMenu.open && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.leaveMenu.open = false
	}
	s.dispatcher.Dispatch(s.poller.Poll())
}

func (s *NetworkedScene) drawHUD(e *ecs.ECS, screen *ebiten.Image) {
	hud := view.HUD{
		Phase:  s.raceWorld.Phase(),
		Status: fmt.Sprintf("%s  kart %d", s.client.ServerName(), s.kartID),
	}
	if msg, ok := systems.CurrentRaceMessage(e.World); ok {
		hud.Message = msg.Text
	}
	if s.leaveMenu.open {
		hud.Status = "Esc: leave race  Enter: keep racing"
	}
	view.DrawHUD(screen, hud)
}

func (s *NetworkedScene) drawDebug(_ *ecs.ECS, screen *ebiten.Image) {
	lines := view.DebugLines(s.raceWorld.Phase(), s.raceWorld.TicksSinceStart(), s.pc)
	lines = append(lines,
		fmt.Sprintf("frame %d", s.raceWorld.Frame()),
		fmt.Sprintf("remote actions %d", s.remote))
	view.DrawDebug(screen, lines)
}

func (s *NetworkedScene) shutdown() {
	s.holder.Detach()
	s.client.Disconnect()
	s.netCfg.CleanNetworkPlayers()
	s.netCfg.UnsetNetworking()
}
