package rewind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryStoreCopies(t *testing.T) {
	var h History
	data := []byte{1, 2}
	h.Store(5, data)
	data[0] = 9

	got, ok := h.Get(5)
	assert.True(t, ok)
	assert.Equal(t, []byte{1, 2}, got)
}

func TestHistoryOverwrite(t *testing.T) {
	var h History
	h.Store(3, []byte{3})
	h.Store(3+historySize, []byte{4})

	_, ok := h.Get(3)
	assert.False(t, ok, "slot reused by a later tick")

	got, ok := h.Get(3 + historySize)
	assert.True(t, ok)
	assert.Equal(t, []byte{4}, got)
}

func TestHistoryTicks(t *testing.T) {
	var h History
	_, ok := h.LastTick()
	assert.False(t, ok)

	for tick := 0; tick < historySize+10; tick++ {
		h.Store(tick, []byte{byte(tick)})
	}
	last, _ := h.LastTick()
	oldest, _ := h.OldestTick()
	assert.Equal(t, historySize+9, last)
	assert.Equal(t, 10, oldest)
}

func TestHistoryDiscardAfter(t *testing.T) {
	var h History
	for tick := 1; tick <= 5; tick++ {
		h.Store(tick, []byte{byte(tick)})
	}
	h.DiscardAfter(3)

	_, ok := h.Get(4)
	assert.False(t, ok)
	_, ok = h.Get(3)
	assert.True(t, ok)
	last, _ := h.LastTick()
	assert.Equal(t, 3, last)
}

func TestHistoryClear(t *testing.T) {
	var h History
	h.Store(3, []byte{1})
	h.Store(4, []byte{2})

	h.Clear()

	_, ok := h.Get(3)
	assert.False(t, ok)
	_, ok = h.LastTick()
	assert.False(t, ok)
}
