package menu

import (
	"github.com/automoto/kartrace-mp/logging"
	"github.com/automoto/kartrace-mp/network"
)

// Button ids of the online screen ribbon.
const (
	EventBack         = "back"
	EventLAN          = "lan"
	EventEnterAddress = "enter-address"
)

// AddressDialog asks the user for a server address. done is called with the
// parsed server; it is not called if the dialog is cancelled.
type AddressDialog interface {
	Open(defaultAddress string, done func(network.ServerInfo))
}

// ServerJoiner is the lobby that connects to a server once it is known.
type ServerJoiner interface {
	SetJoinedServer(server network.ServerInfo)
}

// OnlineDeps are the collaborators of the online screen.
type OnlineDeps struct {
	Network *network.Config
	States  *StateManager
	LAN     Screen
	Lobby   ServerJoiner
	Dialog  AddressDialog
	// CreateHost prepares a fresh client connection for the lobby.
	CreateHost func()
	// LobbyScreens is the stack to show once a server was chosen, lobby last.
	LobbyScreens func() []Screen
}

// OnlineScreen is the entry point to networked play: join a LAN server or
// enter a server address.
type OnlineScreen struct {
	deps OnlineDeps

	entered           *network.ServerInfo
	enteredServerName string
}

func NewOnlineScreen(deps OnlineDeps) *OnlineScreen {
	return &OnlineScreen{deps: deps}
}

func (s *OnlineScreen) Name() string { return "online" }

func (s *OnlineScreen) Init() {}

// EventCallback handles a ribbon button. Unknown names are ignored.
func (s *OnlineScreen) EventCallback(name string) {
	switch name {
	case EventBack:
		s.deps.States.EscapePressed()
	case EventLAN:
		s.deps.States.Push(s.deps.LAN)
	case EventEnterAddress:
		s.entered = nil
		s.deps.Dialog.Open(s.enteredServerName, s.SetEnteredServer)
	default:
		logging.Log.Debugf("[online] ignoring event %q", name)
	}
}

// SetEnteredServer records the server to join. The switch to the lobby
// happens on the next update.
func (s *OnlineScreen) SetEnteredServer(server network.ServerInfo) {
	s.entered = &server
	s.enteredServerName = server.Name
}

// EnteredServerName is the last address typed into the dialog.
func (s *OnlineScreen) EnteredServerName() string {
	return s.enteredServerName
}

func (s *OnlineScreen) OnUpdate(dt float64) {
	if s.entered == nil {
		return
	}
	server := *s.entered
	s.entered = nil

	logging.Log.Infof("[online] joining %s", server.Address())
	s.deps.Network.SetIsLAN()
	s.deps.Network.SetIsServer(false)
	s.deps.Network.SetServerPassword("")
	s.deps.CreateHost()
	s.deps.Lobby.SetJoinedServer(server)
	s.deps.States.ResetAndSetStack(s.deps.LobbyScreens()...)
}

// OnEscapePressed leaves networked mode.
func (s *OnlineScreen) OnEscapePressed() bool {
	s.deps.Network.CleanNetworkPlayers()
	s.deps.Network.UnsetNetworking()
	return true
}
