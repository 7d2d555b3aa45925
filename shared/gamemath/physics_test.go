package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyFriction(t *testing.T) {
	tests := []struct {
		name            string
		speed, friction float64
		want            float64
	}{
		{"forward", 5, 1, 4},
		{"reverse", -5, 1, -4},
		{"stops", 0.5, 1, 0},
		{"stops reversing", -0.5, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyFriction(tt.speed, tt.friction))
		})
	}
}

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, 3.0, ClampSpeed(10, 3))
	assert.Equal(t, -3.0, ClampSpeed(-10, 3))
	assert.Equal(t, 1.0, ClampSpeed(1, 3))
}

func TestTurnRate(t *testing.T) {
	assert.Zero(t, TurnRate(1, 0, 10, 0.1), "no turning while stopped")
	assert.InDelta(t, -0.05, TurnRate(1, 5, 10, 0.1), 1e-9)
	assert.InDelta(t, -0.1, TurnRate(1, 50, 10, 0.1), 1e-9)
	assert.InDelta(t, 0.05, TurnRate(1, -5, 10, 0.1), 1e-9, "reversing flips steering")
	assert.Zero(t, TurnRate(1, 5, 0, 0.1))
}

func TestForward(t *testing.T) {
	x, y := Forward(math.Pi / 2)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 1, y, 1e-9)
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0.5, NormalizeAngle(0.5+4*math.Pi), 1e-9)
	assert.InDelta(t, math.Pi, NormalizeAngle(-math.Pi), 1e-9)
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), 1e-9)
}
