package core

import (
	"time"

	"github.com/automoto/kartrace-mp/systems"
	"github.com/leap-fish/necs/esync/srvsync"
	"go.uber.org/zap"
)

type GameLoop struct {
	server   *Server
	tickRate int
	stopChan chan struct{}
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.server.log.Info("game loop started", zap.Int("tickRate", g.tickRate))

	for {
		select {
		case <-g.stopChan:
			g.server.log.Info("game loop stopped")
			return
		case <-ticker.C:
			g.tick()
			if err := srvsync.DoSync(); err != nil {
				g.server.log.Warn("sync error", zap.Error(err))
			}
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

// tick advances the race one step: queued client messages first, then the
// simulation, then the state clients see.
func (g *GameLoop) tick() {
	s := g.server
	s.ProcessCommands()
	s.sim.Tick()
	systems.ExportNetState(s.sim.World(), s.sim.Frame())
	s.publishEvents()
}
