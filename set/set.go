// Package set implements a lossy, compressed probabilistic set.
//
// A Set answers membership queries with asymmetric error rates: false
// positives are astronomically rare, false negatives happen whenever a
// later Add evicts an earlier key's slot. The whole structure is a single
// fixed-size byte buffer, so one side can advertise "my working set looks
// like this" over a constrained channel and the receiver reconstructs an
// equivalent Set from the bytes.
//
// Placement uses double hashing: a 32-bit hash of the key picks the slot,
// and a second hash over the first hash's hex text yields the fingerprint
// written there. Collisions overwrite; there is no chaining.
package set

import (
	"fmt"

	"github.com/arloliu/hodges/endian"
	"github.com/arloliu/hodges/internal/hash"
	"github.com/arloliu/hodges/internal/options"
	"github.com/arloliu/hodges/section"
)

// Set is a fixed-size probabilistic membership structure over string keys.
//
// The buffer is owned exclusively by one Set instance and its length never
// changes. A Set is not safe for concurrent mutation; callers that share
// an instance across goroutines must serialize access themselves.
type Set struct {
	buf    []byte
	layout section.Layout

	// derived from the layout at construction
	dataOff   int
	slotWidth int
	indexMask uint64
	valueMask uint64
}

// New creates a fresh Set with a zeroed slot region.
//
// Without options it uses the default geometry: 256 slots of 3 bytes, a
// 773-byte buffer. See WithSlotCount and WithSlotWidth for tuning the
// false negative and false positive rates.
func New(opts ...Option) (*Set, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	layout, err := cfg.layout()
	if err != nil {
		return nil, err
	}

	buf := make([]byte, layout.BufferSize())
	copy(buf, layout.Bytes())

	return newSet(buf, layout), nil
}

// FromBytes constructs a Set from an externally produced buffer, typically
// one decoded from a digest. The buffer is fully validated: header version,
// size-field widths, power-of-two slot count, and an exact match between
// the declared layout and the actual buffer length. The Set becomes the
// buffer's sole logical owner; callers must not retain aliases.
func FromBytes(data []byte) (*Set, error) {
	layout, err := section.ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("set: %w", err)
	}

	return newSet(data, layout), nil
}

func newSet(buf []byte, layout *section.Layout) *Set {
	return &Set{
		buf:       buf,
		layout:    *layout,
		dataOff:   layout.DataOffset(),
		slotWidth: int(layout.SlotWidth),
		indexMask: layout.IndexMask(),
		valueMask: layout.ValueMask(),
	}
}

// slot derives the placement of a key: the byte range of its slot within
// the buffer and the fingerprint expected there.
func (s *Set) slot(key string) (start, end int, fingerprint uint64) {
	h := hash.Sum32(key)
	start = s.dataOff + int(uint64(h)&s.indexMask)*s.slotWidth
	end = start + s.slotWidth
	fingerprint = uint64(hash.Fingerprint(h)) & s.valueMask

	return start, end, fingerprint
}

// Add inserts a key, overwriting whatever fingerprint its slot held
// before. Two keys that map to the same slot silently evict one another;
// this is the structure's defining lossy behavior. Returns the Set for
// chaining.
func (s *Set) Add(key string) *Set {
	start, end, fingerprint := s.slot(key)
	endian.PutUint(s.buf[start:end], fingerprint)

	return s
}

// Contains reports whether the key's slot currently holds exactly the
// key's fingerprint. A true result can be a false positive only when a
// different key's fingerprint at the same slot happens to match. A false
// result can be a false negative when a later Add evicted this key.
func (s *Set) Contains(key string) bool {
	start, end, fingerprint := s.slot(key)

	return endian.Uint(s.buf[start:end]) == fingerprint
}

// Remove clears the key's slot only if the slot still holds this key's
// fingerprint. When a different key has since overwritten the slot, Remove
// is a strict no-op rather than an eviction of the other key's entry.
// Returns the Set for chaining.
func (s *Set) Remove(key string) *Set {
	start, end, fingerprint := s.slot(key)
	if endian.Uint(s.buf[start:end]) == fingerprint {
		clear(s.buf[start:end])
	}

	return s
}

// Occupied counts the slots that currently hold a fingerprint. A slot
// whose fingerprint happens to be all zero is indistinguishable from an
// empty one and is not counted.
func (s *Set) Occupied() int {
	n := 0
	for off := s.dataOff; off < len(s.buf); off += s.slotWidth {
		if endian.Uint(s.buf[off:off+s.slotWidth]) != 0 {
			n++
		}
	}

	return n
}

// SlotCount returns the number of addressable slots (M).
func (s *Set) SlotCount() uint64 {
	return s.layout.SlotCount
}

// SlotWidth returns the fingerprint width in bytes (N).
func (s *Set) SlotWidth() uint64 {
	return s.layout.SlotWidth
}

// Size returns the total buffer length in bytes.
func (s *Set) Size() int {
	return len(s.buf)
}

// Bytes returns the underlying buffer. The slice aliases the Set's own
// storage; callers that need an independent copy must make one.
func (s *Set) Bytes() []byte {
	return s.buf
}
