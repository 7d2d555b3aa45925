package network

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigNetworkingModes(t *testing.T) {
	c := NewConfig()
	assert.False(t, c.IsNetworking())

	c.SetIsLAN()
	c.SetIsServer(true)
	assert.True(t, c.IsNetworking())
	assert.True(t, c.IsLAN())
	assert.False(t, c.IsWAN())
	assert.True(t, c.IsServer())

	c.SetIsWAN()
	assert.True(t, c.IsWAN())

	c.UnsetNetworking()
	assert.False(t, c.IsNetworking())
	assert.False(t, c.IsServer())
}

func TestConfigPlayers(t *testing.T) {
	c := NewConfig()
	c.AddNetworkPlayer(PlayerProfile{Name: "Tux"})
	c.AddNetworkPlayer(PlayerProfile{Name: "Gnu"})

	players := c.NetworkPlayers()
	assert.Len(t, players, 2)
	players[0].Name = "changed"
	assert.Equal(t, "Tux", c.NetworkPlayers()[0].Name, "returns a copy")

	c.CleanNetworkPlayers()
	assert.Empty(t, c.NetworkPlayers())
}

func TestConfigConcurrentAccess(t *testing.T) {
	c := NewConfig()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.SetIsLAN()
			c.AddNetworkPlayer(PlayerProfile{Name: "p"})
			_ = c.IsNetworking()
			c.SetServerPassword("x")
		}()
	}
	wg.Wait()
	assert.Len(t, c.NetworkPlayers(), 8)
	assert.Equal(t, "x", c.ServerPassword())
}
