package menu

import "github.com/automoto/kartrace-mp/network"

type fakeScreen struct {
	name     string
	inits    int
	updates  int
	escapes  int
	popOnEsc bool
}

func (s *fakeScreen) Name() string          { return s.name }
func (s *fakeScreen) Init()                 { s.inits++ }
func (s *fakeScreen) OnUpdate(dt float64)   { s.updates++ }
func (s *fakeScreen) OnEscapePressed() bool { s.escapes++; return s.popOnEsc }

type fakeDialog struct {
	opened   int
	defaults []string
	done     func(network.ServerInfo)
}

func (d *fakeDialog) Open(defaultAddress string, done func(network.ServerInfo)) {
	d.opened++
	d.defaults = append(d.defaults, defaultAddress)
	d.done = done
}

type fakeJoiner struct {
	state       network.ClientState
	err         error
	connects    []string
	players     []string
	disconnects int
}

func (j *fakeJoiner) Connect(address, version, playerName, track string) {
	j.connects = append(j.connects, address)
	j.players = append(j.players, playerName)
	j.state = network.StateConnecting
}

func (j *fakeJoiner) State() network.ClientState { return j.state }
func (j *fakeJoiner) LastError() error           { return j.err }
func (j *fakeJoiner) Disconnect() {
	j.disconnects++
	j.state = network.StateDisconnected
}

type fakeLobby struct {
	servers []network.ServerInfo
}

func (l *fakeLobby) SetJoinedServer(server network.ServerInfo) {
	l.servers = append(l.servers, server)
}
