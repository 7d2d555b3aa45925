// Package trackdata provides TMX track parsing shared between client and server.
// It has no dependencies on ebitengine, donburi, or resolv, pure data only.
package trackdata

import "math"

// Track holds everything the simulation needs from a TMX track file.
type Track struct {
	Name         string
	Walls        []Rect
	Starts       []StartPoint
	RescuePoints []RescuePoint
	Zippers      []Rect // Boost pads
	Width        int    // Pixels
	Height       int
}

// Rect is a solid wall tile.
type Rect struct {
	X, Y, W, H float64
}

// StartPoint is a grid position on the start line.
type StartPoint struct {
	X, Y    float64
	Heading float64 // Radians, 0 points along +X
	Index   int
}

// RescuePoint is where a rescued kart is dropped back onto the track.
type RescuePoint struct {
	X, Y    float64
	Heading float64
}

// Start returns the start position for the i-th kart. Karts beyond the grid
// wrap around and get the same spots as earlier karts.
func (t *Track) Start(i int) StartPoint {
	if len(t.Starts) == 0 {
		return StartPoint{X: float64(t.Width) / 2, Y: float64(t.Height) / 2}
	}
	return t.Starts[i%len(t.Starts)]
}

// NearestRescuePoint returns the rescue point closest to (x, y). The second
// result is false when the track has none.
func (t *Track) NearestRescuePoint(x, y float64) (RescuePoint, bool) {
	best := -1
	bestDist := math.MaxFloat64
	for i, p := range t.RescuePoints {
		d := math.Hypot(p.X-x, p.Y-y)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return RescuePoint{}, false
	}
	return t.RescuePoints[best], true
}
