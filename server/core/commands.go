package core

import (
	"fmt"

	"github.com/automoto/kartrace-mp/shared/messages"
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"github.com/automoto/kartrace-mp/systems"
	"github.com/leap-fish/necs/esync"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"
)

// command is one message from a client, queued for the game loop.
type command struct {
	peer   peer
	join   *messages.JoinRequest
	action *messages.ControllerAction
	leave  bool
}

// ProcessCommands handles everything queued since the last tick.
func (s *Server) ProcessCommands() {
	for {
		select {
		case cmd := <-s.inbox:
			switch {
			case cmd.join != nil:
				s.handleJoin(cmd.peer, *cmd.join)
			case cmd.action != nil:
				s.handleAction(cmd.peer, *cmd.action)
			case cmd.leave:
				s.handleLeave(cmd.peer)
			}
		default:
			return
		}
	}
}

func (s *Server) handleJoin(p peer, req messages.JoinRequest) {
	if _, ok := s.players[p]; ok {
		s.log.Debug("duplicate join request ignored")
		return
	}
	if s.opts.Version != "" && req.Version != s.opts.Version {
		s.reject(p, fmt.Sprintf("version mismatch: server runs %s", s.opts.Version))
		return
	}
	if s.opts.MaxPlayers > 0 && len(s.players) >= s.opts.MaxPlayers {
		s.reject(p, "server full")
		return
	}

	kartID, token := s.kartFor(req.ReconnectToken)
	name := req.PlayerName
	if name == "" {
		name = fmt.Sprintf("Kart %d", kartID)
	}

	firstDriver := len(s.players) == 0
	if _, err := s.sim.AddKart(kartID, name, false); err != nil {
		s.log.Error("add kart failed", zap.Int("kart", kartID), zap.Error(err))
		s.reject(p, "could not add kart")
		return
	}
	if firstDriver {
		s.sim.Restart()
	}
	s.syncNewEntities()

	s.players[p] = &player{kartID: kartID, name: name, token: token}
	s.tokens[token] = kartID
	s.count.Store(int32(len(s.players)))

	var netID esync.NetworkId
	if e, ok := systems.FindKart(s.sim.World(), kartID); ok && e.HasComponent(esync.NetworkIdComponent) {
		if id := esync.GetNetworkId(e); id != nil {
			netID = *id
		}
	}

	s.log.Info("player joined",
		zap.String("name", name),
		zap.Int("kart", kartID),
		zap.Bool("reconnect", req.ReconnectToken == token))
	s.send(p, messages.JoinAccepted{
		NetworkID:      netID,
		WorldKartID:    kartID,
		ReconnectToken: token,
		ServerName:     s.opts.Name,
		TickRate:       s.opts.TickRate,
		Track:          s.opts.Track.Name,
	})
	s.publishEvents()
}

// kartFor picks the kart id for a joining client. A known reconnect token
// gets its old kart id back while that id is free.
func (s *Server) kartFor(token string) (int, string) {
	if id, ok := s.tokens[token]; ok && !s.kartTaken(id) {
		return id, token
	}

	id := 0
	for s.kartTaken(id) {
		id++
	}
	return id, uuid.Must(uuid.NewV4()).String()
}

func (s *Server) kartTaken(id int) bool {
	for _, pl := range s.players {
		if pl.kartID == id {
			return true
		}
	}
	return false
}

func (s *Server) reject(p peer, reason string) {
	s.log.Info("join rejected", zap.String("reason", reason))
	s.send(p, messages.JoinRejected{Reason: reason})
}

// handleAction applies a client's input to its own kart and forwards it to
// every other client.
func (s *Server) handleAction(p peer, a messages.ControllerAction) {
	pl, ok := s.players[p]
	if !ok {
		return
	}
	if a.KartID != pl.kartID {
		s.log.Warn("action for another kart",
			zap.String("player", pl.name),
			zap.Int("kart", a.KartID),
			zap.Int("own", pl.kartID))
		a.KartID = pl.kartID
	}
	// Pausing never reaches the shared race.
	if a.Action == netconfig.ActionPauseRace {
		return
	}

	s.sim.ApplyAction(a)
	for other := range s.players {
		if other != p {
			s.send(other, a)
		}
	}
}

func (s *Server) handleLeave(p peer) {
	pl, ok := s.players[p]
	if !ok {
		return
	}
	delete(s.players, p)
	s.count.Store(int32(len(s.players)))
	s.sim.RemoveKart(pl.kartID)
	s.log.Info("player left", zap.String("name", pl.name), zap.Int("kart", pl.kartID))
}

// publishEvents broadcasts phase changes and new race messages.
func (s *Server) publishEvents() {
	w := s.sim.World()
	if race, ok := systems.GetRace(w); ok && int(race.Phase) != s.lastPhase {
		s.lastPhase = int(race.Phase)
		s.broadcast(messages.PhaseChangeEvent{
			Phase:           race.Phase,
			TicksSinceStart: race.TicksSinceStart,
		})
	}

	if msg, ok := systems.CurrentRaceMessage(w); ok && msg.Seq != s.lastMsgSeq {
		s.lastMsgSeq = msg.Seq
		s.broadcast(messages.RaceMessageEvent{
			KartID:  msg.KartID,
			Text:    msg.Text,
			Seconds: msg.Remaining,
		})
	}
}

func (s *Server) broadcast(msg any) {
	for p := range s.players {
		s.send(p, msg)
	}
}

func (s *Server) send(p peer, msg any) {
	if err := p.SendMessage(msg); err != nil {
		s.log.Warn("send failed", zap.String("msg", fmt.Sprintf("%T", msg)), zap.Error(err))
	}
}
