package systems

import (
	"testing"

	"github.com/automoto/kartrace-mp/components"
	cfg "github.com/automoto/kartrace-mp/config"
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skidFor holds the kart at a skidding speed for ticks updates.
func skidFor(s *Simulation, kart *components.KartData, ticks int) {
	for i := 0; i < ticks; i++ {
		kart.Speed = cfg.Kart.SkidMinSpeed + 0.5
		UpdateSkidding(s.World())
	}
}

func TestLongSkidPaysBonus(t *testing.T) {
	s := newTestSim(t)
	pc := addTestKart(t, s, 1, true)
	e, _ := FindKart(s.World(), 1)
	kart := components.Kart.Get(e)
	skid := components.Skidding.Get(e)

	pc.Action(netconfig.ActionSteerLeft, netconfig.MaxValue, false)
	require.Equal(t, netconfig.SkidLeft, pc.Controls().SkidControl())

	skidFor(s, kart, cfg.Kart.SkidBonusTicks)
	assert.True(t, skid.IsSkidding())
	assert.Equal(t, netconfig.SkidLeft, skid.Direction)
	assert.Equal(t, cfg.Kart.SkidBonusTicks, skid.Ticks)
	assert.True(t, pc.Kart().Skidding().IsSkidding())

	pc.Action(netconfig.ActionSteerLeft, 0, false)
	speed := kart.Speed
	UpdateSkidding(s.World())

	assert.InDelta(t, speed+cfg.Kart.SkidBonusSpeed, kart.Speed, 1e-9)
	assert.False(t, skid.IsSkidding())
	assert.Equal(t, netconfig.SkidNone, pc.Controls().SkidControl())
	assert.Equal(t, []string{cfg.SoundSkidBonus}, DrainSounds(s.World()))
}

func TestShortSkidNoBonus(t *testing.T) {
	s := newTestSim(t)
	pc := addTestKart(t, s, 1, true)
	e, _ := FindKart(s.World(), 1)
	kart := components.Kart.Get(e)

	pc.Action(netconfig.ActionSteerRight, netconfig.MaxValue, false)
	skidFor(s, kart, 10)
	pc.Action(netconfig.ActionSteerRight, 0, false)
	speed := kart.Speed
	UpdateSkidding(s.World())

	assert.Equal(t, speed, kart.Speed)
	assert.Empty(t, DrainSounds(s.World()))
}

func TestSkidNeedsSpeed(t *testing.T) {
	s := newTestSim(t)
	pc := addTestKart(t, s, 1, true)
	e, _ := FindKart(s.World(), 1)

	pc.Action(netconfig.ActionSteerLeft, netconfig.MaxValue, false)
	UpdateSkidding(s.World())

	assert.False(t, components.Skidding.Get(e).IsSkidding())
	// The request stays until the steering is released
	assert.Equal(t, netconfig.SkidLeft, pc.Controls().SkidControl())
}
