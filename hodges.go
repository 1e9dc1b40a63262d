// Package hodges provides a lossy, compressed probabilistic set: a
// fixed-size binary structure answering membership queries with a very low
// false positive rate and a moderate, tunable false negative rate.
//
// The design follows Jeff Hodges' "The Opposite of a Bloom Filter": each
// key hashes to one slot in a fixed array, and the slot stores a truncated
// second hash of the key. Colliding keys overwrite one another, which is
// where false negatives come from; a false positive needs another key's
// fingerprint to match exactly, which is vanishingly rare at three or more
// bytes per slot.
//
// The intended use is advertising a working set over a constrained
// channel, such as cache-state gossip, where the receiver only needs a
// conservative and occasionally stale answer.
//
// # Basic Usage
//
// Creating a set, adding keys, and exchanging it as a digest:
//
//	import "github.com/arloliu/hodges"
//
//	s, _ := hodges.New()
//	s.Add("item:1001").Add("item:1002")
//
//	d := s.Encode() // transport-safe digest string
//
//	// on the receiving side
//	remote, _ := hodges.Decode(d)
//	if remote.Contains("item:1001") {
//	    // probably cached by the sender
//	}
//
// Tuning the error rates:
//
//	s, _ := hodges.New(
//	    set.WithSlotCount(1024), // more slots, fewer false negatives
//	    set.WithSlotWidth(4),    // wider fingerprints, fewer false positives
//	)
//
// # Package Structure
//
// This package wraps the set and digest packages for the common cases. Use
// the set package directly for fine-grained construction, and the digest
// package for the raw string transforms.
package hodges

import (
	"github.com/arloliu/hodges/format"
	"github.com/arloliu/hodges/internal/hash"
	"github.com/arloliu/hodges/set"
)

// New creates a fresh Set. Without options it uses the default geometry of
// 256 slots of 3 bytes each, a 773-byte buffer that encodes to a digest of
// about 2061 characters.
func New(opts ...set.Option) (*set.Set, error) {
	return set.New(opts...)
}

// FromBytes constructs a Set from a raw buffer, validating the header,
// size fields, and total length. The Set takes sole ownership of the
// buffer.
func FromBytes(data []byte) (*set.Set, error) {
	return set.FromBytes(data)
}

// Decode reconstructs a Set from a canonical digest produced by
// Set.Encode. It performs the same validation as FromBytes, so digests
// received from remote parties are safe to decode.
func Decode(digest string) (*set.Set, error) {
	return set.Decode(digest)
}

// DecodeCompact reconstructs a Set from a compact digest produced by
// Set.EncodeCompact.
func DecodeCompact(digest string) (*set.Set, error) {
	return set.DecodeCompact(digest)
}

// CompressionType re-exports the compact digest codec selector so simple
// callers need not import the format package.
type CompressionType = format.CompressionType

const (
	CompressionNone = format.CompressionNone
	CompressionZstd = format.CompressionZstd
	CompressionS2   = format.CompressionS2
	CompressionLZ4  = format.CompressionLZ4
)

// KeyHash returns the 32-bit placement hash of a key: the value whose low
// bits select the key's slot. Exposed for callers that shard or trace keys
// by placement.
func KeyHash(key string) uint32 {
	return hash.Sum32(key)
}
