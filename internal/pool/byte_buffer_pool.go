// Package pool provides pooled byte buffers for the document encode path.
package pool

import "sync"

const (
	// DocBufferDefaultSize is the initial capacity of a pooled document buffer.
	DocBufferDefaultSize = 1024

	// DocBufferMaxThreshold is the largest buffer returned to the pool.
	// Oversized buffers from pathological documents are dropped so the pool
	// does not pin large allocations.
	DocBufferMaxThreshold = 1024 * 256 // 256KiB
)

// ByteBuffer is a growable byte slice used as the target of document
// encoding. It exposes the raw slice so codec code can backpatch
// length placeholders in place.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, capacity),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the number of bytes written so far.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset resets the buffer to be empty, retaining allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// MustWriteByte appends a single byte to the buffer.
func (bb *ByteBuffer) MustWriteByte(b byte) {
	bb.B = append(bb.B, b)
}

// Slice returns the buffer contents between start and end.
// Panics if the indices are out of bounds; the encoder computes both from
// positions it recorded itself, so a violation is a programmer error.
func (bb *ByteBuffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > len(bb.B) {
		panic("pool: Slice indices out of range")
	}

	return bb.B[start:end]
}

// Extend grows the buffer length by n zeroed bytes and returns the offset of
// the first extended byte. Used to reserve length placeholders that are
// backpatched once a frame is complete.
func (bb *ByteBuffer) Extend(n int) int {
	offset := len(bb.B)
	bb.B = append(bb.B, make([]byte, n)...)

	return offset
}

var docBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(DocBufferDefaultSize)
	},
}

// GetDocBuffer retrieves an empty ByteBuffer from the pool.
func GetDocBuffer() *ByteBuffer {
	bb, _ := docBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutDocBuffer returns a ByteBuffer to the pool. Buffers that grew beyond
// DocBufferMaxThreshold are discarded.
func PutDocBuffer(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > DocBufferMaxThreshold {
		return
	}

	docBufferPool.Put(bb)
}
