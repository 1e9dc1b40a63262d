// Package hash derives slot placements from string keys.
//
// Placement uses double hashing: the first hash picks the slot index, and
// a second hash over the hex text of the first produces the fingerprint
// stored in the slot. Hashing the rendered text rather than the original
// key decorrelates the stored value from the index, which is what keeps
// the false positive rate low when two keys collide on a slot.
//
// xxHash64 truncated to 32 bits serves both rounds; the format makes no
// cryptographic claims.
package hash

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Sum32 computes the 32-bit placement hash of a key.
func Sum32(key string) uint32 {
	return uint32(xxhash.Sum64String(key))
}

// Fingerprint computes the double hash of a placement hash: the 32-bit
// hash of h rendered as lower-case hexadecimal text.
func Fingerprint(h uint32) uint32 {
	var buf [8]byte
	hex := strconv.AppendUint(buf[:0], uint64(h), 16)

	return uint32(xxhash.Sum64(hex))
}
