package network

import "sync"

type networkType int

const (
	networkNone networkType = iota
	networkLAN
	networkWAN
)

// PlayerProfile is a local player taking part in a networked race.
type PlayerProfile struct {
	Name string
}

// Config is the process-wide networking state: whether a networked race is
// being set up or played, whether this process is the server and which local
// players join. It is safe for concurrent use.
type Config struct {
	mu sync.RWMutex

	kind     networkType
	isServer bool
	password string
	players  []PlayerProfile
}

func NewConfig() *Config {
	return &Config{}
}

// IsNetworking reports whether a LAN or WAN game is active.
func (c *Config) IsNetworking() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.kind != networkNone
}

func (c *Config) IsLAN() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.kind == networkLAN
}

func (c *Config) IsWAN() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.kind == networkWAN
}

func (c *Config) SetIsLAN() {
	c.mu.Lock()
	c.kind = networkLAN
	c.mu.Unlock()
}

func (c *Config) SetIsWAN() {
	c.mu.Lock()
	c.kind = networkWAN
	c.mu.Unlock()
}

// UnsetNetworking returns to offline play.
func (c *Config) UnsetNetworking() {
	c.mu.Lock()
	c.kind = networkNone
	c.isServer = false
	c.mu.Unlock()
}

func (c *Config) IsServer() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isServer
}

func (c *Config) SetIsServer(server bool) {
	c.mu.Lock()
	c.isServer = server
	c.mu.Unlock()
}

// SetServerPassword sets the password sent when joining a private server.
// Empty means a public server.
func (c *Config) SetServerPassword(password string) {
	c.mu.Lock()
	c.password = password
	c.mu.Unlock()
}

func (c *Config) ServerPassword() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.password
}

func (c *Config) AddNetworkPlayer(p PlayerProfile) {
	c.mu.Lock()
	c.players = append(c.players, p)
	c.mu.Unlock()
}

func (c *Config) CleanNetworkPlayers() {
	c.mu.Lock()
	c.players = nil
	c.mu.Unlock()
}

// NetworkPlayers returns a copy of the joined local players.
func (c *Config) NetworkPlayers() []PlayerProfile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]PlayerProfile(nil), c.players...)
}
