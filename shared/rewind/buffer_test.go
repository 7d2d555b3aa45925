package rewind

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferBigEndian(t *testing.T) {
	var b Buffer
	b.AddUint8(0x01).AddUint16(0x0203).AddUint32(0x04050607)

	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7}, b.Bytes())
	assert.Equal(t, 7, b.Size())
}

func TestBufferReadBack(t *testing.T) {
	var w Buffer
	w.AddUint16(65535).AddFloat32(-1.25).AddUint8(9)

	r := NewBuffer(w.Bytes())
	assert.Equal(t, uint16(65535), r.GetUint16())
	assert.Equal(t, float32(-1.25), r.GetFloat32())
	assert.Equal(t, uint8(9), r.GetUint8())
	assert.Zero(t, r.Remaining())
	assert.NoError(t, r.Err())
}

func TestBufferFloat64(t *testing.T) {
	var w Buffer
	w.AddFloat64(123.456).AddFloat64(-0.5)
	assert.Equal(t, 16, w.Size())

	r := NewBuffer(w.Bytes())
	assert.Equal(t, 123.456, r.GetFloat64())
	assert.Equal(t, -0.5, r.GetFloat64())
	assert.NoError(t, r.Err())
}

func TestBufferUnderflow(t *testing.T) {
	r := NewBuffer([]byte{0xff})

	assert.Zero(t, r.GetUint16())
	require.Error(t, r.Err())
	assert.True(t, errors.Is(r.Err(), ErrBufferUnderflow))

	// Later reads keep returning zero and the first error.
	first := r.Err()
	assert.Zero(t, r.GetUint8())
	assert.Equal(t, first, r.Err())
}

func TestBufferReset(t *testing.T) {
	b := NewBuffer([]byte{1})
	b.GetUint32()
	b.Reset()

	assert.Zero(t, b.Size())
	assert.NoError(t, b.Err())
	b.AddUint8(4)
	assert.Equal(t, uint8(4), b.GetUint8())
}
