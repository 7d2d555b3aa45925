package systems

import (
	"fmt"

	"github.com/automoto/kartrace-mp/components"
	cfg "github.com/automoto/kartrace-mp/config"
	"github.com/automoto/kartrace-mp/controller"
	"github.com/automoto/kartrace-mp/logging"
	"github.com/automoto/kartrace-mp/network"
	"github.com/automoto/kartrace-mp/shared/messages"
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"github.com/automoto/kartrace-mp/shared/rewind"
	"github.com/automoto/kartrace-mp/shared/trackdata"
	"github.com/automoto/kartrace-mp/systems/factory"
	"github.com/pkg/errors"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// ErrKartExists is returned by AddKart for an id that is already racing.
var ErrKartExists = errors.New("kart already exists")

// SimulationOptions configures a race simulation.
type SimulationOptions struct {
	Track    *trackdata.Track
	TickRate int
	// Network and Protocol are handed to every controller. Leave them nil
	// for an offline race or the authoritative server.
	Network  controller.NetworkMode
	Protocol controller.ProtocolLocker
	// Escape handles PAUSE_RACE. Nil pauses the race locally.
	Escape controller.EscapeHandler
	Logger *zap.Logger
}

// Simulation owns a race world and steps it one tick at a time. Every tick
// is snapshotted so that late network actions can be applied at the tick
// they happened at and the following ticks replayed.
type Simulation struct {
	world   donburi.World
	opts    SimulationOptions
	rewind  *rewind.Manager
	actions network.ActionLog
	frame   int // Last completed tick
	log     *zap.Logger

	// Penalty deadline last announced per remote kart
	penalties map[int]int
}

func NewSimulation(opts SimulationOptions) *Simulation {
	if opts.TickRate <= 0 {
		opts.TickRate = cfg.Network.TickRate
	}
	if opts.Logger == nil {
		opts.Logger = logging.Named("sim")
	}

	w := donburi.NewWorld()
	factory.CreateRace(w, opts.Track, opts.TickRate)
	if opts.Escape == nil {
		opts.Escape = NewPauseToggle(w)
	}

	s := &Simulation{
		world:     w,
		opts:      opts,
		rewind:    rewind.NewManager(opts.Logger),
		log:       opts.Logger,
		penalties: make(map[int]int),
	}
	s.rewind.Register("race", raceRewinder{world: w})
	s.rewind.SaveState(s.frame)
	return s
}

func (s *Simulation) World() donburi.World {
	return s.world
}

// Frame is the number of completed ticks.
func (s *Simulation) Frame() int {
	return s.frame
}

// Session builds the controller session of a kart in this race.
func (s *Simulation) Session(kartID int) controller.Session {
	return controller.Session{
		World:    NewRaceWorld(s.world),
		Network:  s.opts.Network,
		Protocol: s.opts.Protocol,
		Rescue:   NewRescueFactory(s.world),
		SFX:      NewSFXQueue(s.world),
		GUI:      NewMessageBoard(s.world, kartID),
		Escape:   s.opts.Escape,
		Config:   cfg.Race.ControllerConfig(),
		Logger:   s.log,
	}
}

// AddKart puts a kart on the next free grid spot and gives it a controller.
func (s *Simulation) AddKart(id int, name string, local bool) (*controller.PlayerController, error) {
	if _, exists := FindKart(s.world, id); exists {
		return nil, errors.Wrapf(ErrKartExists, "kart %d", id)
	}

	race, _ := GetRace(s.world)
	start := race.Track.Start(len(karts(s.world)))
	e := factory.CreateKart(s.world, id, name, start, local)
	pc := controller.New(NewKartHandle(s.world, e.Entity()), s.Session(id), local)
	components.Controller.SetValue(e, components.ControllerData{PlayerController: pc})

	s.rewind.Register(rewinderName("kart", id), kartRewinder{world: s.world, entity: e.Entity()})
	s.rewind.Register(rewinderName("controller", id), pc)
	s.rewind.Register(rewinderName("control", id), controlRewinder{world: s.world, entity: e.Entity()})
	s.restartHistory()

	s.log.Info("kart added", zap.Int("kart", id), zap.String("name", name), zap.Bool("local", local))
	return pc, nil
}

// RemoveKart takes a kart out of the race. It returns false for unknown ids.
func (s *Simulation) RemoveKart(id int) bool {
	e, ok := FindKart(s.world, id)
	if !ok {
		return false
	}

	if spaceEntry, ok := components.Space.First(s.world); ok {
		components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
	}
	for _, kind := range []string{"kart", "control", "controller"} {
		s.rewind.Unregister(rewinderName(kind, id))
	}
	s.world.Remove(e.Entity())
	delete(s.penalties, id)
	s.restartHistory()

	s.log.Info("kart removed", zap.Int("kart", id))
	return true
}

// Restart puts every kart back on the grid and starts the countdown again.
func (s *Simulation) Restart() {
	race, ok := GetRace(s.world)
	if !ok {
		return
	}
	SetPhase(race, netconfig.PhaseSetup)
	race.TicksSinceStart = 0

	for i, e := range karts(s.world) {
		start := race.Track.Start(i)
		PlaceKart(e, start.X, start.Y)
		kart := components.Kart.Get(e)
		kart.Heading = start.Heading
		kart.Speed = 0
		kart.ZipperTicks = 0
		kart.OnZipper = false
		components.Skidding.SetValue(e, components.SkiddingData{})
		if e.HasComponent(components.Rescue) {
			e.RemoveComponent(components.Rescue)
		}
		if pc := kartController(e); pc != nil {
			pc.Reset()
			pc.ResetInputState()
		}
	}
	s.restartHistory()
	s.log.Info("race restarted", zap.Int("karts", len(karts(s.world))))
}

func rewinderName(kind string, id int) string {
	return fmt.Sprintf("%s/%d", kind, id)
}

// restartHistory drops the snapshots taken with a different set of
// rewinders and saves the current state in their place.
func (s *Simulation) restartHistory() {
	s.rewind.Forget()
	s.rewind.SaveState(s.frame)
}

// Controller returns the controller of a kart.
func (s *Simulation) Controller(id int) (*controller.PlayerController, bool) {
	e, ok := FindKart(s.world, id)
	if !ok {
		return nil, false
	}
	pc := kartController(e)
	return pc, pc != nil
}

// Tick simulates one tick and snapshots the result.
func (s *Simulation) Tick() {
	s.frame++
	s.simulate()
	s.announcePenalties()
	s.rewind.SaveState(s.frame)
}

// announcePenalties posts the false-start message for remote karts. Their
// controllers stay quiet, so the server shows it on their behalf and the
// message reaches the driver as a race message event.
func (s *Simulation) announcePenalties() {
	for _, e := range karts(s.world) {
		pc := kartController(e)
		if pc == nil || pc.IsLocal() {
			continue
		}
		id := components.Kart.Get(e).ID
		deadline := pc.PenaltyTicks()
		if deadline > 0 && deadline != s.penalties[id] {
			c := pc.Config()
			ShowRaceMessage(s.world, id, c.PenaltyMessage, c.FalseStartPenalty)
		}
		s.penalties[id] = deadline
	}
}

func (s *Simulation) simulate() {
	UpdateRace(s.world)
	UpdateControllers(s.world)
	UpdateSkidding(s.world)
	UpdateKartPhysics(s.world)
	UpdateRescue(s.world)
	UpdateRaceMessages(s.world)
}

// ApplyAction applies an authoritative controller action. An action stamped
// with an earlier tick is inserted at that tick and the ticks after it are
// replayed. Actions too old to replay, or stamped in the future, take effect
// now.
func (s *Simulation) ApplyAction(a messages.ControllerAction) {
	e, ok := FindKart(s.world, a.KartID)
	if !ok || kartController(e) == nil {
		s.log.Debug("action for unknown kart", zap.Int("kart", a.KartID))
		return
	}
	if a.Action == netconfig.ActionRescue && a.Value != 0 && e.HasComponent(components.Rescue) {
		s.log.Debug("rescue request for kart already rescuing", zap.Int("kart", a.KartID))
		return
	}

	if a.Ticks >= s.frame || !s.canReplayFrom(a.Ticks) {
		if a.Ticks < s.frame {
			s.log.Debug("late action applied now",
				zap.Int("kart", a.KartID),
				zap.Int("tick", a.Ticks),
				zap.Int("frame", s.frame))
		}
		a.Ticks = s.frame
		s.actions.Store(a)
		s.applyOne(a)
		return
	}

	s.actions.Store(a)
	err := s.rewind.Replay(a.Ticks, s.frame, func(tick int) {
		s.applyLogged(tick - 1)
		s.simulate()
	})
	if err != nil {
		s.log.Warn("replay failed", zap.Error(err), zap.Int("from", a.Ticks))
		s.applyOne(a)
		return
	}
	// Actions of the current frame were applied after its snapshot
	s.applyLogged(s.frame)
}

func (s *Simulation) canReplayFrom(tick int) bool {
	if !s.actions.Covers(tick, s.frame) {
		return false
	}
	_, ok := s.rewind.History().Get(tick)
	return ok
}

func (s *Simulation) applyLogged(tick int) {
	for _, a := range s.actions.At(tick) {
		s.applyOne(a)
	}
}

func (s *Simulation) applyOne(a messages.ControllerAction) {
	if pc, ok := s.Controller(a.KartID); ok {
		pc.ActionFromNetwork(a.Action, a.Value, a.ValueL, a.ValueR)
	}
}
