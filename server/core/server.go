package core

import (
	"sync/atomic"

	"github.com/automoto/kartrace-mp/logging"
	"github.com/automoto/kartrace-mp/shared/messages"
	"github.com/automoto/kartrace-mp/shared/netcomponents"
	"github.com/automoto/kartrace-mp/shared/trackdata"
	"github.com/automoto/kartrace-mp/systems"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Options configure a race server.
type Options struct {
	Name       string
	Version    string // Required client version, empty accepts any
	TickRate   int
	MaxPlayers int
	Track      *trackdata.Track
	Logger     *zap.Logger
}

// peer is the connection of one client. *router.NetworkClient satisfies it.
type peer interface {
	SendMessage(msg any) error
}

type player struct {
	kartID int
	name   string
	token  string
}

// Server runs the authoritative race simulation. Router callbacks only queue
// commands; the world is touched by the game loop alone.
type Server struct {
	opts      Options
	sim       *systems.Simulation
	loop      *GameLoop
	transport *transports.WsServerTransport
	log       *zap.Logger

	inbox   chan command
	players map[peer]*player
	tokens  map[string]int // Reconnect token -> kart id
	count   atomic.Int32

	lastPhase  int
	lastMsgSeq int

	// netSync registers an entity for snapshot sync.
	netSync func(entity donburi.Entity, components ...any) error
}

// NewServer creates a server racing on opts.Track.
func NewServer(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = logging.Named("server")
	}

	s := &Server{
		opts:      opts,
		log:       opts.Logger,
		inbox:     make(chan command, 256),
		players:   make(map[peer]*player),
		tokens:    make(map[string]int),
		lastPhase: -1,
	}
	s.sim = systems.NewSimulation(systems.SimulationOptions{
		Track:    opts.Track,
		TickRate: opts.TickRate,
		Logger:   opts.Logger.Named("sim"),
	})
	s.netSync = func(entity donburi.Entity, components ...any) error {
		return srvsync.NetworkSync(s.sim.World(), &entity, components...)
	}
	s.loop = NewGameLoop(s, opts.TickRate)
	return s
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	srvsync.UseEsync(s.sim.World())
	s.syncNewEntities()
	s.setupRouterCallbacks()

	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.log.Info("client connected", zap.Any("client", client.Id()))
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.log.Info("client disconnected", zap.Any("client", client.Id()), zap.Error(err))
		s.inbox <- command{peer: client, leave: true}
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.inbox <- command{peer: client, join: &req}
	})

	router.On(func(client *router.NetworkClient, action messages.ControllerAction) {
		s.inbox <- command{peer: client, action: &action}
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		s.log.Warn("client error", zap.Any("client", client.Id()), zap.Error(err))
	})
}

// syncNewEntities adds the synced components to the race and to karts that
// joined since the last call and registers them with necs.
func (s *Server) syncNewEntities() {
	w := s.sim.World()
	for _, entity := range systems.AttachNetComponents(w) {
		entry := w.Entry(entity)
		var err error
		if entry.HasComponent(netcomponents.NetKart) {
			err = s.netSync(entity, srvsync.WithInterp(netcomponents.NetKart), netcomponents.NetControl)
		} else {
			err = s.netSync(entity, netcomponents.NetRace)
		}
		if err != nil {
			s.log.Error("network sync setup failed", zap.Error(err))
		}
	}
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.sim.World()
}

// PlayerCount returns the number of karts driven by connected clients. It is
// safe to call from any goroutine.
func (s *Server) PlayerCount() int {
	return int(s.count.Load())
}
