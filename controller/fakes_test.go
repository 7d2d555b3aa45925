package controller

import (
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeSkid struct{ skidding bool }

func (s *fakeSkid) IsSkidding() bool { return s.skidding }

type fakeKart struct {
	speed     float64
	animating bool
	skid      fakeSkid
	name      string
	id        int
	zippers   int
}

func (k *fakeKart) Speed() float64      { return k.speed }
func (k *fakeKart) KartAnimation() bool { return k.animating }
func (k *fakeKart) Skidding() Skidding  { return &k.skid }
func (k *fakeKart) DriverName() string  { return k.name }
func (k *fakeKart) WorldKartID() int    { return k.id }
func (k *fakeKart) ShowZipperFire()     { k.zippers++ }

// fakeWorld ticks at 60Hz. ticks counts from GO.
type fakeWorld struct {
	phase netconfig.Phase
	ticks int
}

func (w *fakeWorld) IsStartPhase() bool                 { return w.phase.IsStart() }
func (w *fakeWorld) Phase() netconfig.Phase             { return w.phase }
func (w *fakeWorld) TicksSinceStart() int               { return w.ticks }
func (w *fakeWorld) TicksToTime(ticks int) float64      { return float64(ticks) / 60 }
func (w *fakeWorld) SecondsToTicks(seconds float64) int { return int(seconds*60 + 0.5) }

type fakeNetwork struct{ networking bool }

func (n *fakeNetwork) IsNetworking() bool { return n.networking }

type sentAction struct {
	kartID                int
	action                netconfig.PlayerAction
	value, valueL, valueR int
}

type fakeProtocol struct {
	available bool
	sent      []sentAction
}

func (p *fakeProtocol) LockGameProtocol() (GameProtocol, bool) {
	if !p.available {
		return nil, false
	}
	return p, true
}

func (p *fakeProtocol) ControllerAction(kartID int, action netconfig.PlayerAction, value, valueL, valueR int) {
	p.sent = append(p.sent, sentAction{kartID, action, value, valueL, valueR})
}

type fakeRescue struct{ karts []Kart }

func (r *fakeRescue) CreateRescue(kart Kart) { r.karts = append(r.karts, kart) }

type fakeSFX struct{ played []string }

func (s *fakeSFX) QuickSound(name string) { s.played = append(s.played, name) }

type shownMessage struct {
	text    string
	seconds float64
}

type fakeGUI struct{ messages []shownMessage }

func (g *fakeGUI) DisplayGeneralRaceMessage(text string, seconds float64) {
	g.messages = append(g.messages, shownMessage{text, seconds})
}

type fakeEscape struct{ presses int }

func (e *fakeEscape) EscapePressed() { e.presses++ }

type harness struct {
	kart     *fakeKart
	world    *fakeWorld
	network  *fakeNetwork
	protocol *fakeProtocol
	rescue   *fakeRescue
	sfx      *fakeSFX
	gui      *fakeGUI
	escape   *fakeEscape
	logs     *observer.ObservedLogs
	pc       *PlayerController
}

func newHarness(local bool) *harness {
	core, logs := observer.New(zap.DebugLevel)
	h := &harness{
		kart:     &fakeKart{speed: 10, name: "Tux", id: 3},
		world:    &fakeWorld{phase: netconfig.PhaseRace, ticks: 600},
		network:  &fakeNetwork{},
		protocol: &fakeProtocol{available: true},
		rescue:   &fakeRescue{},
		sfx:      &fakeSFX{},
		gui:      &fakeGUI{},
		escape:   &fakeEscape{},
		logs:     logs,
	}
	h.pc = New(h.kart, Session{
		World:    h.world,
		Network:  h.network,
		Protocol: h.protocol,
		Rescue:   h.rescue,
		SFX:      h.sfx,
		GUI:      h.gui,
		Escape:   h.escape,
		Config:   DefaultConfig(),
		Logger:   zap.New(core),
	}, local)
	return h
}

// snapshot captures every observable field for state comparisons.
type snapshot struct {
	steerLeft, steerRight, steerValue int
	prevAccel, prevBrake              uint16
	prevNitro                         bool
	controls                          KartControl
	penaltyTicks                      int
	stuckTime                         float64
}

func snap(pc *PlayerController) snapshot {
	return snapshot{
		steerLeft:    pc.steerLeft,
		steerRight:   pc.steerRight,
		steerValue:   pc.steerValue,
		prevAccel:    pc.prevAccel,
		prevBrake:    pc.prevBrake,
		prevNitro:    pc.prevNitro,
		controls:     pc.controls,
		penaltyTicks: pc.penaltyTicks,
		stuckTime:    pc.stuckTime,
	}
}
