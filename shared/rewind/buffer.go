// Package rewind holds the byte buffer, per-tick history and rollback manager
// used to replay ticks when late network events arrive. It has no dependencies
// on ebiten or donburi.
package rewind

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// ErrBufferUnderflow is recorded when a read runs past the written bytes.
var ErrBufferUnderflow = errors.New("rewind: buffer underflow")

// Buffer is an append/read byte buffer in network byte order. Writes append at
// the end, reads advance a cursor from the start. A read past the end returns
// zero and records ErrBufferUnderflow; callers check Err once after a batch of
// reads.
type Buffer struct {
	data []byte
	pos  int
	err  error
}

// NewBuffer returns a buffer that reads from data.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

func (b *Buffer) AddUint8(v uint8) *Buffer {
	b.data = append(b.data, v)
	return b
}

func (b *Buffer) AddUint16(v uint16) *Buffer {
	b.data = binary.BigEndian.AppendUint16(b.data, v)
	return b
}

func (b *Buffer) AddUint32(v uint32) *Buffer {
	b.data = binary.BigEndian.AppendUint32(b.data, v)
	return b
}

func (b *Buffer) AddFloat32(v float32) *Buffer {
	return b.AddUint32(math.Float32bits(v))
}

func (b *Buffer) AddUint64(v uint64) *Buffer {
	b.data = binary.BigEndian.AppendUint64(b.data, v)
	return b
}

func (b *Buffer) AddFloat64(v float64) *Buffer {
	return b.AddUint64(math.Float64bits(v))
}

func (b *Buffer) GetUint8() uint8 {
	p, ok := b.take(1)
	if !ok {
		return 0
	}
	return p[0]
}

func (b *Buffer) GetUint16() uint16 {
	p, ok := b.take(2)
	if !ok {
		return 0
	}
	return binary.BigEndian.Uint16(p)
}

func (b *Buffer) GetUint32() uint32 {
	p, ok := b.take(4)
	if !ok {
		return 0
	}
	return binary.BigEndian.Uint32(p)
}

func (b *Buffer) GetFloat32() float32 {
	return math.Float32frombits(b.GetUint32())
}

func (b *Buffer) GetUint64() uint64 {
	p, ok := b.take(8)
	if !ok {
		return 0
	}
	return binary.BigEndian.Uint64(p)
}

func (b *Buffer) GetFloat64() float64 {
	return math.Float64frombits(b.GetUint64())
}

func (b *Buffer) take(n int) ([]byte, bool) {
	if b.pos+n > len(b.data) {
		if b.err == nil {
			b.err = errors.Wrapf(ErrBufferUnderflow, "read %d bytes at offset %d of %d", n, b.pos, len(b.data))
		}
		b.pos = len(b.data)
		return nil, false
	}
	p := b.data[b.pos : b.pos+n]
	b.pos += n
	return p, true
}

// Bytes returns the written bytes. The slice aliases the buffer.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Size is the number of written bytes.
func (b *Buffer) Size() int {
	return len(b.data)
}

// Remaining is the number of bytes not yet read.
func (b *Buffer) Remaining() int {
	return len(b.data) - b.pos
}

// Err returns the first underflow error, if any.
func (b *Buffer) Err() error {
	return b.err
}

// Reset empties the buffer and keeps its capacity.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
	b.pos = 0
	b.err = nil
}
