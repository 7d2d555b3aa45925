package menu

import (
	"github.com/automoto/kartrace-mp/logging"
	"github.com/automoto/kartrace-mp/network"
	"github.com/pkg/errors"
)

// Joiner is the client connection the lobby drives.
type Joiner interface {
	Connect(address, version, playerName, track string)
	State() network.ClientState
	LastError() error
	Disconnect()
}

// LobbyOptions configure the lobby screen.
type LobbyOptions struct {
	Network *network.Config
	// Host returns the connection created for the current join attempt.
	Host          func() Joiner
	Version       string
	DefaultPlayer string
	Track         string
	Timeout       float64 // Seconds to wait for the join handshake
	OnJoined      func()
	OnFailed      func(err error)
}

// LobbyScreen connects to the chosen server and waits for the join
// handshake.
type LobbyScreen struct {
	opts    LobbyOptions
	server  *network.ServerInfo
	started bool
	joined  bool
	waited  float64
	status  string
}

func NewLobbyScreen(opts LobbyOptions) *LobbyScreen {
	return &LobbyScreen{opts: opts}
}

func (s *LobbyScreen) Name() string { return "lobby" }

// SetJoinedServer sets the server to connect to when the lobby is shown.
func (s *LobbyScreen) SetJoinedServer(server network.ServerInfo) {
	s.server = &server
	s.started = false
	s.joined = false
	s.waited = 0
}

func (s *LobbyScreen) Init() {
	if s.server == nil || s.started {
		return
	}
	s.started = true
	s.status = "Connecting to " + s.server.Address()
	s.opts.Host().Connect(s.server.Address(), s.opts.Version, s.playerName(), s.opts.Track)
}

func (s *LobbyScreen) playerName() string {
	if players := s.opts.Network.NetworkPlayers(); len(players) > 0 {
		return players[0].Name
	}
	return s.opts.DefaultPlayer
}

// Status is a line of text describing the join progress.
func (s *LobbyScreen) Status() string {
	return s.status
}

func (s *LobbyScreen) OnUpdate(dt float64) {
	if !s.started || s.joined {
		return
	}

	host := s.opts.Host()
	switch host.State() {
	case network.StateJoined:
		s.joined = true
		s.status = "Joined " + s.server.Address()
		s.opts.OnJoined()
		return
	case network.StateFailed:
		s.fail(host.LastError())
		return
	}

	s.waited += dt
	if s.opts.Timeout > 0 && s.waited > s.opts.Timeout {
		s.fail(errors.Errorf("no answer from %s", s.server.Address()))
	}
}

func (s *LobbyScreen) fail(err error) {
	if err == nil {
		err = errors.New("connection failed")
	}
	logging.Log.Warnf("[lobby] %v", err)
	s.started = false
	s.status = err.Error()
	s.opts.Host().Disconnect()
	s.opts.OnFailed(err)
}

// OnEscapePressed abandons the join and leaves networked mode.
func (s *LobbyScreen) OnEscapePressed() bool {
	if s.started {
		s.opts.Host().Disconnect()
	}
	s.started = false
	s.opts.Network.CleanNetworkPlayers()
	s.opts.Network.UnsetNetworking()
	return true
}
