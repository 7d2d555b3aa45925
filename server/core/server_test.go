package core

import (
	"testing"

	"github.com/automoto/kartrace-mp/shared/messages"
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"github.com/automoto/kartrace-mp/shared/trackdata"
	"github.com/automoto/kartrace-mp/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"go.uber.org/zap/zaptest"
)

type fakePeer struct {
	sent []any
}

func (p *fakePeer) SendMessage(msg any) error {
	p.sent = append(p.sent, msg)
	return nil
}

func (p *fakePeer) last() any {
	if len(p.sent) == 0 {
		return nil
	}
	return p.sent[len(p.sent)-1]
}

func (p *fakePeer) accepted(t *testing.T) messages.JoinAccepted {
	t.Helper()
	for _, msg := range p.sent {
		if accepted, ok := msg.(messages.JoinAccepted); ok {
			return accepted
		}
	}
	t.Fatalf("no JoinAccepted in %#v", p.sent)
	return messages.JoinAccepted{}
}

func newTestServer(t *testing.T, maxPlayers int) *Server {
	t.Helper()
	s := NewServer(Options{
		Name:       "test",
		Version:    "1",
		TickRate:   60,
		MaxPlayers: maxPlayers,
		Track: &trackdata.Track{
			Name:   "flat",
			Width:  640,
			Height: 480,
			Starts: []trackdata.StartPoint{{X: 96, Y: 240}, {X: 96, Y: 320}},
		},
		Logger: zaptest.NewLogger(t),
	})
	s.netSync = func(donburi.Entity, ...any) error { return nil }
	return s
}

func join(s *Server, p *fakePeer, req messages.JoinRequest) {
	s.inbox <- command{peer: p, join: &req}
	s.ProcessCommands()
}

func TestJoinAccepted(t *testing.T) {
	s := newTestServer(t, 4)
	p := &fakePeer{}

	join(s, p, messages.JoinRequest{Version: "1", PlayerName: "Tux"})

	accepted := p.accepted(t)
	assert.Equal(t, 0, accepted.WorldKartID)
	assert.Equal(t, "flat", accepted.Track)
	assert.Equal(t, "test", accepted.ServerName)
	assert.Equal(t, 60, accepted.TickRate)
	assert.NotEmpty(t, accepted.ReconnectToken)
	assert.Equal(t, 1, s.PlayerCount())

	e, ok := systems.FindKart(s.World(), 0)
	require.True(t, ok)
	pc, _ := s.sim.Controller(0)
	assert.False(t, pc.IsLocal())
	assert.Equal(t, "Tux", pc.Name(false))
	assert.True(t, e.Valid())
}

func TestJoinRejected(t *testing.T) {
	s := newTestServer(t, 1)

	old := &fakePeer{}
	join(s, old, messages.JoinRequest{Version: "0.9"})
	rejected, ok := old.last().(messages.JoinRejected)
	require.True(t, ok)
	assert.Contains(t, rejected.Reason, "version")

	join(s, &fakePeer{}, messages.JoinRequest{Version: "1"})
	late := &fakePeer{}
	join(s, late, messages.JoinRequest{Version: "1"})
	rejected, ok = late.last().(messages.JoinRejected)
	require.True(t, ok)
	assert.Equal(t, "server full", rejected.Reason)
	assert.Equal(t, 1, s.PlayerCount())
}

func TestReconnectKeepsKartID(t *testing.T) {
	s := newTestServer(t, 4)
	a, b := &fakePeer{}, &fakePeer{}
	join(s, a, messages.JoinRequest{Version: "1", PlayerName: "A"})
	join(s, b, messages.JoinRequest{Version: "1", PlayerName: "B"})
	tokenB := b.accepted(t).ReconnectToken

	s.inbox <- command{peer: b, leave: true}
	s.ProcessCommands()
	assert.Equal(t, 1, s.PlayerCount())
	_, ok := systems.FindKart(s.World(), 1)
	assert.False(t, ok)

	again := &fakePeer{}
	join(s, again, messages.JoinRequest{Version: "1", PlayerName: "B", ReconnectToken: tokenB})
	accepted := again.accepted(t)
	assert.Equal(t, 1, accepted.WorldKartID)
	assert.Equal(t, tokenB, accepted.ReconnectToken)

	// A made-up token gets the next free kart
	other := &fakePeer{}
	join(s, other, messages.JoinRequest{Version: "1", ReconnectToken: "bogus"})
	accepted = other.accepted(t)
	assert.Equal(t, 2, accepted.WorldKartID)
	assert.NotEqual(t, "bogus", accepted.ReconnectToken)
}

func TestActionRelayedToOthers(t *testing.T) {
	s := newTestServer(t, 4)
	a, b := &fakePeer{}, &fakePeer{}
	join(s, a, messages.JoinRequest{Version: "1"})
	join(s, b, messages.JoinRequest{Version: "1"})
	a.sent, b.sent = nil, nil

	// Clients may only drive their own kart
	action := messages.ControllerAction{KartID: 1, Action: netconfig.ActionSteerLeft, Value: netconfig.MaxValue}
	s.inbox <- command{peer: a, action: &action}
	s.ProcessCommands()

	assert.Empty(t, a.sent)
	require.Len(t, b.sent, 1)
	relayed := b.sent[0].(messages.ControllerAction)
	assert.Equal(t, 0, relayed.KartID)
	assert.Equal(t, netconfig.ActionSteerLeft, relayed.Action)

	pc, _ := s.sim.Controller(0)
	assert.Equal(t, netconfig.MaxValue, pc.SteerLeft())
}

func TestPauseNotRelayed(t *testing.T) {
	s := newTestServer(t, 4)
	a, b := &fakePeer{}, &fakePeer{}
	join(s, a, messages.JoinRequest{Version: "1"})
	join(s, b, messages.JoinRequest{Version: "1"})
	b.sent = nil

	pause := messages.ControllerAction{KartID: 0, Action: netconfig.ActionPauseRace, Value: netconfig.MaxValue}
	s.inbox <- command{peer: a, action: &pause}
	s.ProcessCommands()

	assert.Empty(t, b.sent)
	assert.False(t, systems.IsPaused(s.World()))
}

func TestPhaseChangesBroadcastOnce(t *testing.T) {
	s := newTestServer(t, 4)
	p := &fakePeer{}
	join(s, p, messages.JoinRequest{Version: "1"})

	s.loop.tick()
	s.loop.tick()

	var phases []netconfig.Phase
	for _, msg := range p.sent {
		if evt, ok := msg.(messages.PhaseChangeEvent); ok {
			phases = append(phases, evt.Phase)
		}
	}
	require.NotEmpty(t, phases)
	assert.Equal(t, netconfig.PhaseSetup, phases[0])
	for i := 1; i < len(phases); i++ {
		assert.NotEqual(t, phases[i-1], phases[i])
	}
}

func TestFalseStartMessageBroadcast(t *testing.T) {
	s := newTestServer(t, 4)
	p := &fakePeer{}
	join(s, p, messages.JoinRequest{Version: "1"})

	for i := 0; i < 500; i++ {
		if race, _ := systems.GetRace(s.World()); race.Phase == netconfig.PhaseReady {
			break
		}
		s.loop.tick()
	}
	accel := messages.ControllerAction{KartID: 0, Action: netconfig.ActionAccel, Value: netconfig.MaxValue, Ticks: s.sim.Frame()}
	s.inbox <- command{peer: p, action: &accel}
	p.sent = nil
	s.loop.tick()

	var got []messages.RaceMessageEvent
	for _, msg := range p.sent {
		if evt, ok := msg.(messages.RaceMessageEvent); ok {
			got = append(got, evt)
		}
	}
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].KartID)
	assert.NotEmpty(t, got[0].Text)
}
