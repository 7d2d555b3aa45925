package controller

import (
	"testing"

	"github.com/automoto/kartrace-mp/shared/netconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFalseStart(t *testing.T) {
	h := newHarness(true)
	h.world.phase = netconfig.PhaseReady
	h.world.ticks = 0

	h.pc.Action(netconfig.ActionAccel, netconfig.MaxValue, false)
	h.pc.Update(1)

	require.Len(t, h.gui.messages, 1)
	assert.Equal(t, DefaultConfig().PenaltyMessage, h.gui.messages[0].text)
	assert.Equal(t, 120, h.pc.PenaltyTicks())
	assert.Equal(t, 1, h.logs.FilterMessage("false start").Len())

	// A second update in READY does not extend the penalty.
	h.pc.Update(1)
	assert.Equal(t, 120, h.pc.PenaltyTicks())
	assert.Len(t, h.gui.messages, 1)

	h.world.phase = netconfig.PhaseGo
	for _, tick := range []int{0, 60, 119} {
		h.world.ticks = tick
		h.pc.Controls().SetBrake(true)
		h.pc.Action(netconfig.ActionAccel, netconfig.MaxValue, false)
		h.pc.Update(1)
		assert.False(t, h.pc.Controls().Brake(), "tick %d", tick)
		assert.Zero(t, h.pc.Controls().Accel(), "tick %d", tick)
	}

	h.world.ticks = 120
	h.pc.Action(netconfig.ActionAccel, netconfig.MaxValue, false)
	h.pc.Update(1)
	assert.Equal(t, float32(1), h.pc.Controls().Accel())
}

func TestNoFalseStartOutsideReady(t *testing.T) {
	for _, phase := range []netconfig.Phase{netconfig.PhaseSetup, netconfig.PhaseTrackIntro, netconfig.PhaseSet} {
		t.Run(phase.String(), func(t *testing.T) {
			h := newHarness(true)
			h.world.phase = phase
			h.world.ticks = 0
			h.pc.Action(netconfig.ActionAccel, netconfig.MaxValue, false)
			h.pc.Controls().SetBrake(true)

			h.pc.Update(1)

			assert.Zero(t, h.pc.PenaltyTicks())
			assert.Empty(t, h.gui.messages)
			assert.False(t, h.pc.Controls().Brake())
		})
	}
}

func TestNoFalseStartWhenNetworked(t *testing.T) {
	h := newHarness(true)
	h.network.networking = true
	h.world.phase = netconfig.PhaseReady
	h.world.ticks = 0

	h.pc.Action(netconfig.ActionNitro, netconfig.MaxValue, false)
	h.pc.Action(netconfig.ActionAccel, netconfig.MaxValue, false)
	h.pc.Update(1)

	assert.Zero(t, h.pc.PenaltyTicks())
	assert.Empty(t, h.gui.messages)
}

func TestFalseStartRemoteHasNoMessage(t *testing.T) {
	h := newHarness(false)
	h.world.phase = netconfig.PhaseReady
	h.world.ticks = 0

	h.pc.Controls().SetBrake(true)
	h.pc.Update(1)

	assert.Equal(t, 120, h.pc.PenaltyTicks())
	assert.Empty(t, h.gui.messages)
}

func TestStartPhaseSkipsStuckAndRescue(t *testing.T) {
	h := newHarness(true)
	h.world.phase = netconfig.PhaseSet
	h.kart.speed = 0
	h.pc.Action(netconfig.ActionRescue, netconfig.MaxValue, false)

	h.pc.Update(600)

	assert.Zero(t, h.pc.StuckTime())
	assert.Empty(t, h.rescue.karts)
	assert.True(t, h.pc.Controls().Rescue())
}

func TestStuckRescueLocal(t *testing.T) {
	h := newHarness(true)
	h.kart.speed = 1.0

	h.pc.Update(60)
	h.pc.Update(60)
	assert.Empty(t, h.rescue.karts, "exactly two seconds is not stuck yet")
	assert.InDelta(t, 2.0, h.pc.StuckTime(), 1e-9)

	h.pc.Update(1)
	require.Len(t, h.rescue.karts, 1)
	assert.Same(t, h.kart, h.rescue.karts[0])
	assert.Zero(t, h.pc.StuckTime())
	assert.Empty(t, h.protocol.sent)
}

func TestStuckRescueNetworked(t *testing.T) {
	h := newHarness(true)
	h.network.networking = true
	h.kart.speed = 0
	h.pc.Action(netconfig.ActionSteerLeft, 4000, false)
	h.pc.Action(netconfig.ActionSteerRight, 100, false)

	h.pc.Update(121)

	assert.Empty(t, h.rescue.karts)
	require.Len(t, h.protocol.sent, 1)
	assert.Equal(t, sentAction{
		kartID: 3,
		action: netconfig.ActionRescue,
		value:  netconfig.MaxValue,
		valueL: 4000,
		valueR: -100,
	}, h.protocol.sent[0])
	assert.Zero(t, h.pc.StuckTime())
}

func TestStuckRescueDroppedWithoutProtocol(t *testing.T) {
	h := newHarness(true)
	h.network.networking = true
	h.protocol.available = false
	h.kart.speed = 0

	h.pc.Update(121)

	assert.Empty(t, h.protocol.sent)
	assert.Empty(t, h.rescue.karts)
	assert.Zero(t, h.pc.StuckTime())
	assert.Equal(t, 1, h.logs.FilterMessage("stuck rescue dropped, no game protocol").Len())
}

func TestStuckTimeResets(t *testing.T) {
	h := newHarness(true)
	h.kart.speed = 0.5
	h.pc.Update(60)
	assert.InDelta(t, 1.0, h.pc.StuckTime(), 1e-9)

	h.kart.speed = 2.0
	h.pc.Update(1)
	assert.Zero(t, h.pc.StuckTime(), "speed at the threshold is moving")

	h.kart.speed = 0
	h.pc.Update(60)
	h.kart.animating = true
	h.pc.Update(60)
	assert.Zero(t, h.pc.StuckTime(), "animations do not count as stuck")
	assert.Empty(t, h.rescue.karts)
}

func TestManualRescue(t *testing.T) {
	h := newHarness(true)
	h.pc.Action(netconfig.ActionRescue, netconfig.MaxValue, false)

	h.kart.animating = true
	h.pc.Update(1)
	assert.Empty(t, h.rescue.karts)
	assert.True(t, h.pc.Controls().Rescue(), "held until the animation ends")

	h.kart.animating = false
	h.pc.Update(1)
	assert.Len(t, h.rescue.karts, 1)
	assert.False(t, h.pc.Controls().Rescue())
}

func TestReset(t *testing.T) {
	h := newHarness(true)
	h.world.phase = netconfig.PhaseReady
	h.world.ticks = 0
	h.pc.Action(netconfig.ActionSteerLeft, 900, false)
	h.pc.Action(netconfig.ActionAccel, netconfig.MaxValue, false)
	h.pc.Action(netconfig.ActionNitro, netconfig.MaxValue, false)
	h.pc.Update(1)
	require.NotZero(t, h.pc.PenaltyTicks())

	h.pc.ResetInputState()
	assert.Zero(t, h.pc.SteerValue())
	assert.Zero(t, h.pc.SteerLeft())
	assert.Zero(t, h.pc.PrevAccel())
	assert.False(t, h.pc.PrevNitro())
	assert.Equal(t, KartControl{}, *h.pc.Controls())
	assert.Equal(t, 120, h.pc.PenaltyTicks(), "penalty survives an input reset")

	h.pc.Reset()
	assert.Zero(t, h.pc.PenaltyTicks())
	assert.Zero(t, h.pc.StuckTime())
}
