// Package endian provides byte order utilities for the hodges wire format.
//
// The wire format stores every multi-byte field as a big-endian unsigned
// integer whose width is chosen at runtime (the header's p and q fields
// decide how many bytes encode the slot count and slot width). The standard
// encoding/binary package only offers fixed 2/4/8-byte accessors, so this
// package adds variable-width reads and writes over 1..8 byte fields, plus
// the EndianEngine interface for callers that want fixed-width access in
// the style of binary.ByteOrder.
//
// All functions are pure and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface. binary.BigEndian and binary.LittleEndian both
// satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine. The hodges wire format
// is big-endian throughout.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// Uint reads a big-endian unsigned integer spanning the whole of b.
// The width is len(b), which must be between 1 and 8; wider slices are a
// programming error and panic.
func Uint(b []byte) uint64 {
	if len(b) == 0 || len(b) > 8 {
		panic("endian: field width out of range")
	}

	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}

	return v
}

// PutUint writes v as a big-endian unsigned integer spanning the whole of b.
// The width is len(b), which must be between 1 and 8; v is truncated to the
// field width, matching the permissive packing policy of the format.
func PutUint(b []byte, v uint64) {
	if len(b) == 0 || len(b) > 8 {
		panic("endian: field width out of range")
	}

	for i := len(b) - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}

// UintLen returns the minimum number of bytes needed to encode v as an
// unsigned big-endian integer. Zero still occupies one byte.
func UintLen(v uint64) int {
	n := 1
	for v >>= 8; v != 0; v >>= 8 {
		n++
	}

	return n
}
