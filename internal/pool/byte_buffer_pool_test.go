package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferSized(t *testing.T) {
	bb := &ByteBuffer{B: make([]byte, 0, 16)}

	b := bb.Sized(8)
	require.Len(t, b, 8)
	require.Equal(t, 16, cap(bb.B), "within capacity, no reallocation")

	b = bb.Sized(32)
	require.Len(t, b, 32)
	require.GreaterOrEqual(t, cap(bb.B), 32)
}

func TestDigestBufferReuse(t *testing.T) {
	bb := GetDigestBuffer()
	require.Equal(t, 0, bb.Len())

	bb.B = append(bb.B, 1, 2, 3)
	PutDigestBuffer(bb)

	again := GetDigestBuffer()
	require.Equal(t, 0, again.Len(), "pooled buffers come back reset")
	PutDigestBuffer(again)
}

func TestPutDropsOversizedBuffers(t *testing.T) {
	bb := &ByteBuffer{B: make([]byte, 0, DigestBufferMaxThreshold+1)}
	// Must not panic; the buffer is simply discarded.
	PutDigestBuffer(bb)
}
