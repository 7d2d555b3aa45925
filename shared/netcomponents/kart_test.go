package netcomponents

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerpNetKart(t *testing.T) {
	from := NetKartData{X: 0, Y: 10, Heading: 0, Speed: 4}
	to := NetKartData{X: 10, Y: 20, Heading: 1, Speed: 8, Animating: true}

	got := LerpNetKart(from, to, 0.5)

	assert.InDelta(t, 5.0, got.X, 1e-9)
	assert.InDelta(t, 15.0, got.Y, 1e-9)
	assert.InDelta(t, 0.5, got.Heading, 1e-9)
	assert.InDelta(t, 6.0, got.Speed, 1e-9)
	assert.True(t, got.Animating)
}

func TestLerpAngleShortestArc(t *testing.T) {
	got := lerpAngle(math.Pi-0.1, -math.Pi+0.1, 0.5)
	assert.InDelta(t, math.Pi, math.Abs(got), 1e-9)
}
