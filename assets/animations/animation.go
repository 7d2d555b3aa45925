// Package animations holds tick-driven frame counters for sprite effects.
package animations

// Animation steps through frames First..Last, advancing every SpeedInTicks
// ticks. With FreezeOnComplete it stops on Last instead of looping.
type Animation struct {
	First            int
	Last             int
	SpeedInTicks     int
	FreezeOnComplete bool
	Looped           bool

	counter int
	frame   int
}

func NewAnimation(first, last, speed int) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		SpeedInTicks: speed,
		counter:      speed,
		frame:        first,
	}
}

func (a *Animation) Update() {
	a.counter--
	if a.counter > 0 {
		return
	}
	a.counter = a.SpeedInTicks
	a.frame++
	if a.frame > a.Last {
		a.Looped = true
		if a.FreezeOnComplete {
			a.frame = a.Last
		} else {
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.counter = a.SpeedInTicks
	a.Looped = false
}
