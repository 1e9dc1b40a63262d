// Package pool provides pooled scratch buffers for digest encoding.
//
// Encoding a set renders the whole buffer as hex text before the base64
// pass, which needs a scratch region twice the raw buffer size on every
// call. Pooling that scratch keeps steady-state encoding allocation-free
// for the gossip use case, where the same sets are re-advertised often.
package pool

import "sync"

const (
	// DigestBufferDefaultSize covers the hex rendering of a default
	// 773-byte set buffer with room to spare.
	DigestBufferDefaultSize = 2048

	// DigestBufferMaxThreshold is the largest buffer the pool retains.
	// Oversized one-off buffers are dropped rather than cached.
	DigestBufferMaxThreshold = 64 * 1024
)

// ByteBuffer is a reusable byte slice wrapper.
type ByteBuffer struct {
	B []byte
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the current length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Sized returns the buffer resized to exactly n bytes, reallocating only
// when the capacity is insufficient.
func (bb *ByteBuffer) Sized(n int) []byte {
	if cap(bb.B) < n {
		bb.B = make([]byte, n)
	}
	bb.B = bb.B[:n]

	return bb.B
}

var digestPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, DigestBufferDefaultSize)}
	},
}

// GetDigestBuffer retrieves a scratch buffer from the pool.
func GetDigestBuffer() *ByteBuffer {
	bb, _ := digestPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutDigestBuffer returns a scratch buffer to the pool, dropping buffers
// that grew past the retention threshold.
func PutDigestBuffer(bb *ByteBuffer) {
	if cap(bb.B) > DigestBufferMaxThreshold {
		return
	}
	digestPool.Put(bb)
}
