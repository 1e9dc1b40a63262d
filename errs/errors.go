// Package errs defines the sentinel errors shared across the hodges packages.
//
// All validation failures surface as one of these sentinels, optionally
// wrapped with additional context via fmt.Errorf and %w. Callers should
// match with errors.Is rather than comparing messages.
package errs

import "errors"

var (
	// ErrBufferTooShort is returned when a buffer is shorter than the
	// 2-byte minimum required to hold the header.
	ErrBufferTooShort = errors.New("buffer shorter than minimum header length of 2 bytes")

	// ErrUnknownVersion is returned when the header carries a format
	// version this implementation does not understand.
	ErrUnknownVersion = errors.New("unknown format version")

	// ErrInvalidFieldWidth is returned when a size-field width in the
	// header is zero or wider than 8 bytes.
	ErrInvalidFieldWidth = errors.New("size field width must be between 1 and 8 bytes")

	// ErrSlotCountNotPowerOfTwo is returned when the slot count is not a
	// power of two. Index masking requires it.
	ErrSlotCountNotPowerOfTwo = errors.New("slot count must be a power of two")

	// ErrZeroSlotCount is returned when the slot count field is zero.
	ErrZeroSlotCount = errors.New("slot count must not be zero")

	// ErrZeroSlotWidth is returned when the slot width field is zero.
	ErrZeroSlotWidth = errors.New("slot width must not be zero")

	// ErrSlotWidthTooLarge is returned when the slot width exceeds the
	// 8-byte fingerprint limit.
	ErrSlotWidthTooLarge = errors.New("slot width exceeds 8 bytes")

	// ErrBufferSizeMismatch is returned when a buffer's actual length does
	// not match the length implied by its declared slot count and width.
	ErrBufferSizeMismatch = errors.New("buffer length does not match declared layout")

	// ErrLayoutTooLarge is returned when the declared slot region size
	// M*N overflows the addressable range.
	ErrLayoutTooLarge = errors.New("declared layout exceeds addressable size")

	// ErrFieldOverflow is returned when a configured value does not fit in
	// the field width chosen to encode it.
	ErrFieldOverflow = errors.New("value does not fit in configured field width")

	// ErrInvalidDigest is returned when a digest string cannot be decoded
	// back into a buffer.
	ErrInvalidDigest = errors.New("invalid digest")

	// ErrInvalidCompression is returned when a compact digest names a
	// compression codec this implementation does not support.
	ErrInvalidCompression = errors.New("invalid compression type")
)
