// Package gamemath holds the pure arcade kart math shared by the client
// simulation and the dedicated server.
package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// TurnRate returns the heading change per tick for a steer value in [-1, 1].
// Positive steer turns left (counter-clockwise on screen). A kart turns
// harder as it picks up speed, up to maxTurn at fullSpeed, and not at all
// when standing still. Reversing flips the direction like a real car.
func TurnRate(steer float32, speed, fullSpeed, maxTurn float64) float64 {
	if fullSpeed <= 0 {
		return 0
	}
	factor := math.Min(math.Abs(speed)/fullSpeed, 1)
	rate := -float64(steer) * maxTurn * factor
	if speed < 0 {
		rate = -rate
	}
	return rate
}

// Forward returns the unit vector of heading in screen coordinates (y down).
func Forward(heading float64) (x, y float64) {
	return math.Cos(heading), math.Sin(heading)
}

// NormalizeAngle maps an angle into (-Pi, Pi].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
