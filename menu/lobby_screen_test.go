package menu

import (
	"testing"

	"github.com/automoto/kartrace-mp/network"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lobbyHarness struct {
	net    *network.Config
	joiner *fakeJoiner
	joined int
	failed []error
	lobby  *LobbyScreen
}

func newLobbyHarness() *lobbyHarness {
	h := &lobbyHarness{net: network.NewConfig(), joiner: &fakeJoiner{}}
	h.lobby = NewLobbyScreen(LobbyOptions{
		Network:       h.net,
		Host:          func() Joiner { return h.joiner },
		Version:       "test",
		DefaultPlayer: "Player",
		Track:         "oval",
		Timeout:       1,
		OnJoined:      func() { h.joined++ },
		OnFailed:      func(err error) { h.failed = append(h.failed, err) },
	})
	return h
}

var testServer = network.ServerInfo{Host: "10.1.1.1", Port: 2759}

func TestLobbyJoins(t *testing.T) {
	h := newLobbyHarness()
	h.net.AddNetworkPlayer(network.PlayerProfile{Name: "Tux"})
	h.lobby.SetJoinedServer(testServer)
	h.lobby.Init()
	h.lobby.Init()

	require.Equal(t, []string{"10.1.1.1:2759"}, h.joiner.connects, "connects once")
	assert.Equal(t, []string{"Tux"}, h.joiner.players)

	h.lobby.OnUpdate(0.1)
	assert.Zero(t, h.joined)

	h.joiner.state = network.StateJoined
	h.lobby.OnUpdate(0.1)
	h.lobby.OnUpdate(0.1)
	assert.Equal(t, 1, h.joined)
	assert.Contains(t, h.lobby.Status(), "Joined")
}

func TestLobbyDefaultPlayerName(t *testing.T) {
	h := newLobbyHarness()
	h.lobby.SetJoinedServer(testServer)
	h.lobby.Init()
	assert.Equal(t, []string{"Player"}, h.joiner.players)
}

func TestLobbyWithoutServerDoesNothing(t *testing.T) {
	h := newLobbyHarness()
	h.lobby.Init()
	h.lobby.OnUpdate(5)
	assert.Empty(t, h.joiner.connects)
	assert.Empty(t, h.failed)
}

func TestLobbyRejected(t *testing.T) {
	h := newLobbyHarness()
	h.lobby.SetJoinedServer(testServer)
	h.lobby.Init()

	h.joiner.state = network.StateFailed
	h.joiner.err = errors.New("join rejected: server full")
	h.lobby.OnUpdate(0.1)

	require.Len(t, h.failed, 1)
	assert.EqualError(t, h.failed[0], "join rejected: server full")
	assert.Equal(t, 1, h.joiner.disconnects)
	assert.Equal(t, "join rejected: server full", h.lobby.Status())
}

func TestLobbyTimeout(t *testing.T) {
	h := newLobbyHarness()
	h.lobby.SetJoinedServer(testServer)
	h.lobby.Init()

	h.lobby.OnUpdate(0.6)
	assert.Empty(t, h.failed)
	h.lobby.OnUpdate(0.6)
	require.Len(t, h.failed, 1)
	assert.Contains(t, h.failed[0].Error(), "no answer from 10.1.1.1:2759")

	h.lobby.OnUpdate(5)
	assert.Len(t, h.failed, 1, "fails once")
}

func TestLobbyEscape(t *testing.T) {
	h := newLobbyHarness()
	h.net.SetIsLAN()
	h.lobby.SetJoinedServer(testServer)
	h.lobby.Init()

	assert.True(t, h.lobby.OnEscapePressed())
	assert.Equal(t, 1, h.joiner.disconnects)
	assert.False(t, h.net.IsNetworking())
}
