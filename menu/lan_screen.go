package menu

import "github.com/automoto/kartrace-mp/network"

// LANScreen lists servers on the local network to pick from.
type LANScreen struct {
	states   *StateManager
	discover func() []network.ServerInfo
	onSelect func(network.ServerInfo)
	servers  []network.ServerInfo
}

// NewLANScreen creates the LAN list. discover is asked for the servers every
// time the screen is shown; onSelect receives the picked server after the
// screen has closed.
func NewLANScreen(states *StateManager, discover func() []network.ServerInfo, onSelect func(network.ServerInfo)) *LANScreen {
	return &LANScreen{states: states, discover: discover, onSelect: onSelect}
}

func (s *LANScreen) Name() string { return "lan" }

func (s *LANScreen) Init() {
	s.servers = s.discover()
}

func (s *LANScreen) Servers() []network.ServerInfo {
	return s.servers
}

// Select picks the i-th server. It returns false for an invalid index.
func (s *LANScreen) Select(i int) bool {
	if i < 0 || i >= len(s.servers) {
		return false
	}
	server := s.servers[i]
	s.states.Pop()
	s.onSelect(server)
	return true
}

func (s *LANScreen) OnUpdate(dt float64) {}

func (s *LANScreen) OnEscapePressed() bool { return true }
