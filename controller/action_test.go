package controller

import (
	"testing"

	"github.com/automoto/kartrace-mp/shared/netconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteerOpposingRelease(t *testing.T) {
	h := newHarness(true)
	pc := h.pc

	pc.Action(netconfig.ActionSteerLeft, netconfig.MaxValue, false)
	assert.Equal(t, netconfig.MaxValue, pc.SteerValue())
	assert.Equal(t, netconfig.SkidLeft, pc.Controls().SkidControl())

	pc.Action(netconfig.ActionSteerRight, netconfig.MaxValue, false)
	assert.Equal(t, -netconfig.MaxValue, pc.SteerValue())
	assert.Equal(t, netconfig.SkidLeft, pc.Controls().SkidControl(), "skid direction is only set from neutral")

	pc.Action(netconfig.ActionSteerRight, 0, false)
	assert.Equal(t, netconfig.MaxValue, pc.SteerValue(), "left is still held")

	pc.Action(netconfig.ActionSteerLeft, 0, false)
	assert.Equal(t, 0, pc.SteerValue())
	assert.Equal(t, 0, pc.SteerLeft())
	assert.Equal(t, 0, pc.SteerRight())
}

func TestSteerRightStoresNegatedValue(t *testing.T) {
	h := newHarness(true)
	h.pc.Action(netconfig.ActionSteerRight, 1000, false)

	assert.Equal(t, -1000, h.pc.SteerRight())
	assert.Equal(t, -1000, h.pc.SteerValue())
	assert.Equal(t, netconfig.SkidRight, h.pc.Controls().SkidControl())
}

func TestSteerValueIsOneOfTheSides(t *testing.T) {
	h := newHarness(true)
	pc := h.pc
	events := []struct {
		action netconfig.PlayerAction
		value  int
	}{
		{netconfig.ActionSteerLeft, 200},
		{netconfig.ActionSteerRight, 32768},
		{netconfig.ActionSteerLeft, 0},
		{netconfig.ActionSteerLeft, 9000},
		{netconfig.ActionSteerRight, 0},
		{netconfig.ActionSteerRight, 12},
		{netconfig.ActionSteerRight, 0},
		{netconfig.ActionSteerLeft, 0},
	}
	for _, e := range events {
		pc.Action(e.action, e.value, false)
		v := pc.SteerValue()
		assert.True(t, v == pc.SteerLeft() || v == pc.SteerRight() || v == 0,
			"steer %d not in {%d, %d, 0}", v, pc.SteerLeft(), pc.SteerRight())
	}
}

func TestAccelAnalog(t *testing.T) {
	h := newHarness(true)
	h.pc.Action(netconfig.ActionAccel, 16384, false)

	assert.Equal(t, uint16(16384), h.pc.PrevAccel())
	assert.InDelta(t, 0.5, h.pc.Controls().Accel(), 1e-6)

	h.pc.Action(netconfig.ActionAccel, 0, false)
	assert.Zero(t, h.pc.Controls().Accel())
}

func TestNitroRequiresAccel(t *testing.T) {
	h := newHarness(true)
	pc := h.pc

	pc.Action(netconfig.ActionNitro, netconfig.MaxValue, false)
	assert.True(t, pc.PrevNitro())
	assert.False(t, pc.Controls().Nitro())

	pc.Action(netconfig.ActionAccel, netconfig.MaxValue, false)
	pc.Action(netconfig.ActionNitro, netconfig.MaxValue, false)
	assert.True(t, pc.Controls().Nitro())

	pc.Action(netconfig.ActionNitro, 0, false)
	assert.False(t, pc.PrevNitro())
	assert.False(t, pc.Controls().Nitro())
}

func TestRescueAction(t *testing.T) {
	h := newHarness(true)
	h.pc.Action(netconfig.ActionRescue, netconfig.MaxValue, false)
	assert.True(t, h.pc.Controls().Rescue())
	h.pc.Action(netconfig.ActionRescue, 0, false)
	assert.False(t, h.pc.Controls().Rescue())
}

func TestDryRunDoesNotMutate(t *testing.T) {
	tests := []struct {
		name   string
		action netconfig.PlayerAction
		value  int
		want   bool
	}{
		{"steer left press", netconfig.ActionSteerLeft, netconfig.MaxValue, true},
		{"steer left release when idle", netconfig.ActionSteerLeft, 0, false},
		{"steer right press", netconfig.ActionSteerRight, 500, true},
		{"accel press", netconfig.ActionAccel, netconfig.MaxValue, true},
		{"accel release when idle", netconfig.ActionAccel, 0, false},
		{"nitro press", netconfig.ActionNitro, netconfig.MaxValue, true},
		{"rescue release when idle", netconfig.ActionRescue, 0, false},
		{"pause", netconfig.ActionPauseRace, netconfig.MaxValue, false},
		{"unrecognized", netconfig.ActionFire, netconfig.MaxValue, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(true)
			before := snap(h.pc)

			got := h.pc.Action(tt.action, tt.value, true)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, before, snap(h.pc))
			assert.Zero(t, h.escape.presses)
		})
	}
}

func TestDryRunThenApplyMatchesApply(t *testing.T) {
	seq := []struct {
		action netconfig.PlayerAction
		value  int
	}{
		{netconfig.ActionAccel, 20000},
		{netconfig.ActionSteerLeft, netconfig.MaxValue},
		{netconfig.ActionNitro, netconfig.MaxValue},
		{netconfig.ActionSteerRight, 300},
		{netconfig.ActionSteerRight, 0},
		{netconfig.ActionAccel, 20000},
		{netconfig.ActionRescue, netconfig.MaxValue},
	}

	direct := newHarness(true)
	checked := newHarness(true)
	for _, e := range seq {
		direct.pc.Action(e.action, e.value, false)

		before := snap(checked.pc)
		changed := checked.pc.Action(e.action, e.value, true)
		checked.pc.Action(e.action, e.value, false)
		if !changed {
			assert.Equal(t, before, snap(checked.pc), "%s %d", e.action, e.value)
		}
		require.Equal(t, snap(direct.pc), snap(checked.pc), "%s %d", e.action, e.value)
	}
}

func TestUnrecognizedActionIgnored(t *testing.T) {
	h := newHarness(true)
	before := snap(h.pc)

	assert.True(t, h.pc.Action(netconfig.ActionLookBack, netconfig.MaxValue, false))
	assert.True(t, h.pc.Action(netconfig.ActionBrake, netconfig.MaxValue, false))
	assert.Equal(t, before, snap(h.pc))
}

func TestPauseRace(t *testing.T) {
	h := newHarness(true)

	assert.True(t, h.pc.Action(netconfig.ActionPauseRace, 0, false))
	assert.Zero(t, h.escape.presses, "release does not pause")

	assert.True(t, h.pc.Action(netconfig.ActionPauseRace, netconfig.MaxValue, false))
	assert.Equal(t, 1, h.escape.presses)
}

func TestActionFromNetworkRestoresSides(t *testing.T) {
	h := newHarness(false)
	pc := h.pc

	// The sender still had left held when it released right.
	pc.ActionFromNetwork(netconfig.ActionSteerRight, 0, 7000, 0)

	assert.Equal(t, 7000, pc.SteerLeft())
	assert.Equal(t, 0, pc.SteerRight())
	assert.Equal(t, 7000, pc.SteerValue())
}

func TestActionLogsAtDebug(t *testing.T) {
	h := newHarness(true)
	h.pc.Action(netconfig.ActionAccel, netconfig.MaxValue, false)

	entries := h.logs.FilterMessage("action").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "accel", entries[0].ContextMap()["action"])
}

func TestSteer(t *testing.T) {
	h := newHarness(true)
	h.pc.Steer(1, -16384)
	assert.InDelta(t, -0.5, h.pc.Controls().Steer(), 1e-6)

	h.pc.session.Config.DisableSteerWhileUnskid = true
	h.kart.skid.skidding = true
	h.pc.Steer(1, netconfig.MaxValue)
	assert.InDelta(t, -0.5, h.pc.Controls().Steer(), 1e-6, "steering held while skidding")

	h.kart.skid.skidding = false
	h.pc.Steer(1, netconfig.MaxValue)
	assert.InDelta(t, 1.0, h.pc.Controls().Steer(), 1e-6)
}

func TestAuxiliaryContracts(t *testing.T) {
	local := newHarness(true)
	local.pc.SkidBonusTriggered()
	assert.Equal(t, []string{"skid_bonus"}, local.sfx.played)

	remote := newHarness(false)
	remote.pc.SkidBonusTriggered()
	assert.Empty(t, remote.sfx.played)

	local.pc.HandleZipper(true)
	assert.Equal(t, 1, local.kart.zippers)

	assert.Equal(t, "Tux", local.pc.Name(true))
	assert.Equal(t, "Tux", local.pc.Name(false))
}

func TestNewFillsNilSinks(t *testing.T) {
	w := &fakeWorld{phase: netconfig.PhaseRace}
	pc := New(&fakeKart{}, Session{World: w, Config: DefaultConfig()}, true)

	assert.NotPanics(t, func() {
		pc.Action(netconfig.ActionPauseRace, netconfig.MaxValue, false)
		pc.SkidBonusTriggered()
		pc.Update(200)
	})
}
