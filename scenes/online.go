package scenes

import (
	"context"
	"image/color"
	"sync"
	"time"

	cfg "github.com/automoto/kartrace-mp/config"
	"github.com/automoto/kartrace-mp/logging"
	"github.com/automoto/kartrace-mp/menu"
	"github.com/automoto/kartrace-mp/network"
	"github.com/automoto/kartrace-mp/ui"
	"github.com/automoto/kartrace-mp/view"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OnlineScene hosts the online, LAN and lobby screens until a server
// accepts the join.
type OnlineScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	netCfg       *network.Config
	client       *network.Client

	states *menu.StateManager
	online *menu.OnlineScreen
	lan    *menu.LANScreen
	lobby  *menu.LobbyScreen
	shown  menu.Screen

	lanServers  *network.LANRegistry
	stopLAN     context.CancelFunc
	lanRefresh  float64
	joined      bool
	joinFailure error

	once sync.Once
}

func NewOnlineScene(sc SceneChanger) *OnlineScene {
	return &OnlineScene{sceneChanger: sc}
}

func (s *OnlineScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *OnlineScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *OnlineScene) configure() {
	s.ecs = ecs.NewECS(donburi.NewWorld())

	s.netCfg = network.NewConfig()
	s.netCfg.AddNetworkPlayer(network.PlayerProfile{Name: cfg.Race.PlayerName})
	s.states = menu.NewStateManager()
	s.menuUI = ui.NewMenuUI(cfg.Network.DefaultPort, s.onRibbon)

	s.lanServers = network.NewLANRegistry(time.Duration(cfg.Network.LANTTL * float64(time.Second)))
	ctx, cancel := context.WithCancel(context.Background())
	s.stopLAN = cancel
	if err := network.ListenLAN(ctx, cfg.Network.LANPort, cfg.Network.Version, s.lanServers); err != nil {
		logging.Log.Warnf("[online] LAN discovery disabled: %v", err)
	}

	s.lobby = menu.NewLobbyScreen(menu.LobbyOptions{
		Network:       s.netCfg,
		Host:          func() menu.Joiner { return s.client },
		Version:       cfg.Network.Version,
		DefaultPlayer: cfg.Race.PlayerName,
		Track:         cfg.Race.DefaultTrack,
		Timeout:       float64(cfg.Network.ConnectTimeout) / float64(cfg.Network.TickRate),
		OnJoined:      func() { s.joined = true },
		OnFailed:      func(err error) { s.joinFailure = err },
	})
	s.lan = menu.NewLANScreen(s.states, s.lanServers.List, func(server network.ServerInfo) {
		s.online.SetEnteredServer(server)
	})
	s.online = menu.NewOnlineScreen(menu.OnlineDeps{
		Network: s.netCfg,
		States:  s.states,
		LAN:     s.lan,
		Lobby:   s.lobby,
		Dialog:  s.menuUI,
		CreateHost: func() {
			if s.client != nil {
				s.client.Disconnect()
			}
			s.client = network.NewClient()
		},
		LobbyScreens: func() []menu.Screen { return []menu.Screen{s.online, s.lobby} },
	})
	s.states.Push(s.online)

	s.ecs.AddSystem(s.updateScreens)
	s.ecs.AddRenderer(layerDefault, func(_ *ecs.ECS, screen *ebiten.Image) {
		s.menuUI.Draw(screen)
	})
}

func (s *OnlineScene) onRibbon(event string) {
	view.PlaySounds([]string{cfg.SoundMenu})
	s.online.EventCallback(event)
}

func (s *OnlineScene) updateScreens(_ *ecs.ECS) {
	s.menuUI.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.states.EscapePressed()
	}
	s.states.Update(1.0 / float64(ebiten.TPS()))

	switch {
	case s.joined:
		s.leave()
		client := s.client
		s.client = nil
		s.sceneChanger.ChangeScene(NewNetworkedScene(s.sceneChanger, client, s.netCfg))
		return
	case s.joinFailure != nil:
		err := s.joinFailure
		s.joinFailure = nil
		s.states.ResetAndSetStack(s.online)
		s.showTop()
		s.menuUI.SetStatus(err.Error())
		return
	case s.states.Len() == 0:
		s.leave()
		if s.client != nil {
			s.client.Disconnect()
			s.client = nil
		}
		s.sceneChanger.ChangeScene(NewMenuScene(s.sceneChanger))
		return
	}

	if s.states.Top() != s.shown {
		s.showTop()
	}

	switch s.shown {
	case s.lobby:
		s.menuUI.SetStatus(s.lobby.Status())
	case s.lan:
		s.lanRefresh += 1.0 / float64(ebiten.TPS())
		if s.lanRefresh >= 1 {
			s.lanRefresh = 0
			s.lan.Init()
			s.showTop()
		}
	}
}

// showTop rebuilds the panel for the screen on top of the stack.
func (s *OnlineScene) showTop() {
	s.shown = s.states.Top()
	switch s.shown {
	case s.online:
		s.menuUI.ShowOnline()
	case s.lan:
		s.menuUI.ShowLAN(s.lan.Servers(), func(i int) { s.lan.Select(i) }, s.states.EscapePressed)
	case s.lobby:
		s.menuUI.ShowLobby(s.states.EscapePressed)
	}
}

func (s *OnlineScene) leave() {
	if s.stopLAN != nil {
		s.stopLAN()
		s.stopLAN = nil
	}
}
