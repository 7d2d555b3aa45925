package rewind

const historySize = 128

// stateRecord stores the snapshot taken at the end of a tick.
type stateRecord struct {
	tick  int
	valid bool
	data  []byte
}

// History is a ring buffer of per-tick state snapshots. A slot is reused
// every historySize ticks, so only recent ticks can be rewound to.
type History struct {
	records  [historySize]stateRecord
	lastTick int
	hasAny   bool
}

// Store saves a copy of data as the state at tick.
func (h *History) Store(tick int, data []byte) {
	idx := slot(tick)
	rec := &h.records[idx]
	rec.tick = tick
	rec.valid = true
	rec.data = append(rec.data[:0], data...)
	if !h.hasAny || tick > h.lastTick {
		h.lastTick = tick
	}
	h.hasAny = true
}

// Get retrieves the snapshot stored for tick. Returns false if not found or
// if the slot has been overwritten by a later tick.
func (h *History) Get(tick int) ([]byte, bool) {
	rec := h.records[slot(tick)]
	if !rec.valid || rec.tick != tick {
		return nil, false
	}
	return rec.data, true
}

// LastTick returns the newest stored tick and whether anything was stored.
func (h *History) LastTick() (int, bool) {
	return h.lastTick, h.hasAny
}

// OldestTick returns the oldest tick still retrievable.
func (h *History) OldestTick() (int, bool) {
	if !h.hasAny {
		return 0, false
	}
	oldest := h.lastTick
	for t := h.lastTick; t > h.lastTick-historySize && t >= 0; t-- {
		if _, ok := h.Get(t); !ok {
			break
		}
		oldest = t
	}
	return oldest, true
}

// DiscardAfter invalidates every snapshot newer than tick. Used after a
// rewind, when the future is about to be re-simulated.
func (h *History) DiscardAfter(tick int) {
	for i := range h.records {
		if h.records[i].valid && h.records[i].tick > tick {
			h.records[i].valid = false
		}
	}
	if h.hasAny && h.lastTick > tick {
		h.lastTick = tick
	}
}

// Clear drops every snapshot.
func (h *History) Clear() {
	for i := range h.records {
		h.records[i].valid = false
	}
	h.lastTick = 0
	h.hasAny = false
}

func slot(tick int) int {
	idx := tick % historySize
	if idx < 0 {
		idx += historySize
	}
	return idx
}
