package rewind

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type counter struct {
	n    uint32
	skip bool
}

func (c *counter) SaveState(buf *Buffer) bool {
	if c.skip {
		return false
	}
	buf.AddUint32(c.n)
	return true
}

func (c *counter) RewindTo(buf *Buffer) { c.n = buf.GetUint32() }

// sloppy writes more than it reads back.
type sloppy struct{ v uint8 }

func (s *sloppy) SaveState(buf *Buffer) bool {
	buf.AddUint8(s.v).AddUint8(0xee)
	return true
}

func (s *sloppy) RewindTo(buf *Buffer) { s.v = buf.GetUint8() }

func TestManagerRewind(t *testing.T) {
	a, b := &counter{}, &counter{n: 100}
	m := NewManager(nil)
	m.Register("a", a)
	m.Register("b", b)
	require.Equal(t, 2, m.Len())

	for tick := 1; tick <= 3; tick++ {
		a.n++
		b.n += 10
		m.SaveState(tick)
	}

	require.NoError(t, m.RewindTo(2))
	assert.Equal(t, uint32(2), a.n)
	assert.Equal(t, uint32(120), b.n)
}

func TestManagerUnknownTick(t *testing.T) {
	m := NewManager(nil)
	err := m.RewindTo(42)
	assert.True(t, errors.Is(err, ErrUnknownTick))
}

func TestManagerSkippedRewinder(t *testing.T) {
	a := &counter{n: 1, skip: true}
	b := &counter{n: 2}
	m := NewManager(nil)
	m.Register("a", a)
	m.Register("b", b)
	m.SaveState(1)

	a.n, b.n = 7, 7
	require.NoError(t, m.RewindTo(1))
	assert.Equal(t, uint32(7), a.n, "nothing saved, nothing restored")
	assert.Equal(t, uint32(2), b.n)
}

func TestManagerFramingIsolatesRewinders(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s := &sloppy{v: 5}
	c := &counter{n: 77}
	m := NewManager(zap.New(core))
	m.Register("sloppy", s)
	m.Register("counter", c)
	m.SaveState(1)

	s.v, c.n = 0, 0
	require.NoError(t, m.RewindTo(1))
	assert.Equal(t, uint8(5), s.v)
	assert.Equal(t, uint32(77), c.n)
	assert.Equal(t, 1, logs.FilterMessage("rewinder left unread bytes").Len())
}

func TestManagerReplay(t *testing.T) {
	c := &counter{}
	m := NewManager(nil)
	m.Register("c", c)
	for tick := 1; tick <= 5; tick++ {
		c.n = uint32(tick)
		m.SaveState(tick)
	}

	var stepped []int
	err := m.Replay(2, 5, func(tick int) {
		stepped = append(stepped, tick)
		c.n += 100
	})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5}, stepped)
	assert.Equal(t, uint32(302), c.n)

	require.NoError(t, m.RewindTo(4))
	assert.Equal(t, uint32(202), c.n)
}

func TestManagerUnregister(t *testing.T) {
	m := NewManager(nil)
	m.Register("a", &counter{})
	m.Register("b", &counter{})
	m.Unregister("a")
	assert.Equal(t, 1, m.Len())
}
