package systems

import (
	"github.com/automoto/kartrace-mp/components"
	"github.com/yohamta/donburi"
)

// SFXQueue collects quick sounds in the world. The client drains and plays
// them after each tick; a headless server never plays anything.
type SFXQueue struct {
	world donburi.World
}

func NewSFXQueue(w donburi.World) SFXQueue {
	return SFXQueue{world: w}
}

func (q SFXQueue) QuickSound(name string) {
	QueueSound(q.world, name)
}

func QueueSound(w donburi.World, name string) {
	entry, ok := components.SoundQueue.First(w)
	if !ok {
		return
	}
	queue := components.SoundQueue.Get(entry)
	queue.Pending = append(queue.Pending, name)
}

// DrainSounds returns and clears the queued sounds.
func DrainSounds(w donburi.World) []string {
	entry, ok := components.SoundQueue.First(w)
	if !ok {
		return nil
	}
	queue := components.SoundQueue.Get(entry)
	pending := queue.Pending
	queue.Pending = nil
	return pending
}
