package network

import (
	"context"
	"sync"

	"github.com/automoto/kartrace-mp/logging"
	"github.com/automoto/kartrace-mp/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/pkg/errors"
)

// ErrNotConnected is returned when sending without a live connection.
var ErrNotConnected = errors.New("network: not connected")

// ClientState is where a client is in its connection lifecycle.
type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateJoining // Socket up, waiting for JoinAccepted
	StateJoined
	StateFailed
)

var clientStateNames = [...]string{"disconnected", "connecting", "joining", "joined", "failed"}

func (s ClientState) String() string {
	if s < 0 || int(s) >= len(clientStateNames) {
		return "unknown"
	}
	return clientStateNames[s]
}

// joinInfo is what the server told us when it accepted the join.
type joinInfo struct {
	networkID   esync.NetworkId
	worldKartID int
	serverName  string
	tickRate    int
	track       string
}

// Client is the race connection of a game client. necs delivers messages on
// its own goroutines; they are parked in channels until the game tick drains
// them.
type Client struct {
	mu     sync.RWMutex
	state  ClientState
	err    error
	joined joinInfo
	token  string // Kept across connections to reclaim our kart
	conn   *websocket.Conn

	snapshots chan esync.WorldSnapshot // Holds only the newest
	actions   chan messages.ControllerAction
	phases    chan messages.PhaseChangeEvent
	raceMsgs  chan messages.RaceMessageEvent
}

func NewClient() *Client {
	return &Client{
		snapshots: make(chan esync.WorldSnapshot, 1),
		actions:   make(chan messages.ControllerAction, 64),
		phases:    make(chan messages.PhaseChangeEvent, 8),
		raceMsgs:  make(chan messages.RaceMessageEvent, 8),
	}
}

// Connect starts connecting to address and returns immediately. Progress is
// visible through State.
func (c *Client) Connect(address, version, playerName, track string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.err = nil
	c.mu.Unlock()
	req := c.joinRequest(version, playerName, track)

	logging.Log.Infof("[client] connecting to %s as %q", address, playerName)
	c.registerHandlers(req)

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.fail(errors.Wrapf(err, "connect to %s", address))
		}
	}()
}

func (c *Client) registerHandlers(req messages.JoinRequest) {
	router.OnConnect(func(*router.NetworkClient) {
		c.setState(StateJoining)
		if err := c.SendMessage(req); err != nil {
			c.fail(errors.Wrap(err, "send join request"))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		c.acceptJoin(msg)
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		c.fail(errors.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, snapshot esync.WorldSnapshot) {
		replaceLatest(c.snapshots, snapshot)
	})
	router.On(func(_ *router.NetworkClient, msg messages.ControllerAction) {
		if !offer(c.actions, msg) {
			logging.Log.Warnf("[client] action queue full, dropping %s for kart %d", msg.Action, msg.KartID)
		}
	})
	router.On(func(_ *router.NetworkClient, evt messages.PhaseChangeEvent) {
		offer(c.phases, evt)
	})
	router.On(func(_ *router.NetworkClient, evt messages.RaceMessageEvent) {
		offer(c.raceMsgs, evt)
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		logging.Log.Infof("[client] connection closed: %v", err)
		c.mu.Lock()
		if c.state != StateFailed {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})
	router.OnError(func(_ *router.NetworkClient, err error) {
		logging.Log.Errorf("[client] router: %v", err)
	})
}

// joinRequest builds the handshake message, carrying the token of an
// earlier join so the server can give our kart back.
func (c *Client) joinRequest(version, playerName, track string) messages.JoinRequest {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return messages.JoinRequest{
		Version:        version,
		PlayerName:     playerName,
		Track:          track,
		ReconnectToken: c.token,
	}
}

func (c *Client) acceptJoin(msg messages.JoinAccepted) {
	logging.Log.Infof("[client] joined %q as kart %d (%s, %d ticks/s)",
		msg.ServerName, msg.WorldKartID, msg.Track, msg.TickRate)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.joined = joinInfo{
		networkID:   msg.NetworkID,
		worldKartID: msg.WorldKartID,
		serverName:  msg.ServerName,
		tickRate:    msg.TickRate,
		track:       msg.Track,
	}
	c.token = msg.ReconnectToken
	c.state = StateJoined
}

// Disconnect closes the connection and forgets all message handlers. The
// reconnect token survives for the next Connect.
func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.state = StateDisconnected
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}
	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Connected reports whether the join handshake completed and the connection
// is still up.
func (c *Client) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state == StateJoined && c.conn != nil
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

func (c *Client) NetworkID() esync.NetworkId {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.joined.networkID
}

// WorldKartID is the id of the kart the server assigned to this client.
func (c *Client) WorldKartID() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.joined.worldKartID
}

func (c *Client) ServerName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.joined.serverName
}

func (c *Client) Track() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.joined.track
}

func (c *Client) TickRate() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.joined.tickRate
}

// LatestSnapshot returns the newest world snapshot not seen yet, or nil.
func (c *Client) LatestSnapshot() *esync.WorldSnapshot {
	select {
	case snap := <-c.snapshots:
		return &snap
	default:
		return nil
	}
}

// SendMessage serializes msg with the necs router and writes it as one
// binary frame.
func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()
	if conn == nil {
		return ErrNotConnected
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return errors.Wrapf(err, "serialize %T", msg)
	}
	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) setState(s ClientState) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

func (c *Client) fail(err error) {
	logging.Log.Errorf("[client] %v", err)
	c.mu.Lock()
	c.state = StateFailed
	c.err = err
	c.mu.Unlock()
}

// DrainActions returns the actions of other karts received since the last call.
func (c *Client) DrainActions() []messages.ControllerAction {
	return drain(c.actions)
}

func (c *Client) DrainPhaseEvents() []messages.PhaseChangeEvent {
	return drain(c.phases)
}

func (c *Client) DrainRaceMessages() []messages.RaceMessageEvent {
	return drain(c.raceMsgs)
}

// offer queues v unless ch is full.
func offer[T any](ch chan T, v T) bool {
	select {
	case ch <- v:
		return true
	default:
		return false
	}
}

// replaceLatest leaves v as the only value in a one-slot channel.
func replaceLatest[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	offer(ch, v)
}

func drain[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
