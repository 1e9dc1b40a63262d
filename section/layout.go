package section

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/arloliu/hodges/endian"
	"github.com/arloliu/hodges/errs"
)

// Layout is the parsed view of a complete set buffer prefix: the fixed
// header plus the two variable-width size fields it locates.
//
// Parsing is two-phase: the 2-byte header is decoded first, then its
// CountWidth and WidthWidth nibbles position the slot count and slot width
// fields that immediately follow.
type Layout struct {
	Header Header

	// SlotCount is the number of addressable slots (M). Must be a power of
	// two so that SlotCount-1 works as an index mask.
	SlotCount uint64
	// SlotWidth is the width in bytes of each slot's fingerprint (N).
	SlotWidth uint64
}

// NewLayout builds a Layout from explicit parameters and validates it.
func NewLayout(countWidth, widthWidth uint8, slotCount, slotWidth uint64) (*Layout, error) {
	header, err := NewHeader(countWidth, widthWidth)
	if err != nil {
		return nil, err
	}

	l := &Layout{
		Header:    *header,
		SlotCount: slotCount,
		SlotWidth: slotWidth,
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}

	return l, nil
}

// ParseLayout parses a Layout from the leading bytes of a set buffer and
// verifies that the buffer's actual length exactly matches the length the
// size fields declare. A buffer that passes never triggers an out-of-range
// slot access later.
func ParseLayout(data []byte) (*Layout, error) {
	l := &Layout{}
	if err := l.Header.Parse(data); err != nil {
		return nil, err
	}

	countEnd := HeaderSize + int(l.Header.CountWidth)
	widthEnd := countEnd + int(l.Header.WidthWidth)
	if len(data) < widthEnd {
		return nil, fmt.Errorf("%w: %d byte buffer truncates the size fields", errs.ErrBufferSizeMismatch, len(data))
	}

	l.SlotCount = endian.Uint(data[HeaderSize:countEnd])
	l.SlotWidth = endian.Uint(data[countEnd:widthEnd])

	if err := l.Validate(); err != nil {
		return nil, err
	}

	if uint64(len(data)) != l.BufferSize() {
		return nil, fmt.Errorf("%w: declared %d bytes, got %d", errs.ErrBufferSizeMismatch, l.BufferSize(), len(data))
	}

	return l, nil
}

// Validate checks the layout fields against the format invariants.
func (l *Layout) Validate() error {
	if err := l.Header.Validate(); err != nil {
		return err
	}

	if l.SlotCount == 0 {
		return errs.ErrZeroSlotCount
	}

	if bits.OnesCount64(l.SlotCount) != 1 {
		return fmt.Errorf("%w: got %d", errs.ErrSlotCountNotPowerOfTwo, l.SlotCount)
	}

	if l.SlotWidth == 0 {
		return errs.ErrZeroSlotWidth
	}

	if l.SlotWidth > MaxSlotWidth {
		return fmt.Errorf("%w: got %d", errs.ErrSlotWidthTooLarge, l.SlotWidth)
	}

	if endian.UintLen(l.SlotCount) > int(l.Header.CountWidth) {
		return fmt.Errorf("%w: slot count %d needs %d bytes, field is %d",
			errs.ErrFieldOverflow, l.SlotCount, endian.UintLen(l.SlotCount), l.Header.CountWidth)
	}

	if endian.UintLen(l.SlotWidth) > int(l.Header.WidthWidth) {
		return fmt.Errorf("%w: slot width %d needs %d bytes, field is %d",
			errs.ErrFieldOverflow, l.SlotWidth, endian.UintLen(l.SlotWidth), l.Header.WidthWidth)
	}

	// M*N plus the prefix must not wrap uint64, or BufferSize would lie
	// about the slot region and a crafted buffer could pass the length
	// check with slots pointing past its end.
	if l.SlotCount > (math.MaxUint64-uint64(l.DataOffset()))/l.SlotWidth {
		return fmt.Errorf("%w: %d slots of %d bytes", errs.ErrLayoutTooLarge, l.SlotCount, l.SlotWidth)
	}

	return nil
}

// Bytes serializes the header and size fields into the buffer prefix.
func (l *Layout) Bytes() []byte {
	b := make([]byte, l.DataOffset())
	copy(b, l.Header.Bytes())

	countEnd := HeaderSize + int(l.Header.CountWidth)
	endian.PutUint(b[HeaderSize:countEnd], l.SlotCount)
	endian.PutUint(b[countEnd:l.DataOffset()], l.SlotWidth)

	return b
}

// DataOffset returns the byte offset of the slot region.
func (l *Layout) DataOffset() int {
	return HeaderSize + int(l.Header.CountWidth) + int(l.Header.WidthWidth)
}

// DataSize returns the slot region length in bytes (M*N).
func (l *Layout) DataSize() uint64 {
	return l.SlotCount * l.SlotWidth
}

// BufferSize returns the total buffer length the layout implies.
func (l *Layout) BufferSize() uint64 {
	return uint64(l.DataOffset()) + l.DataSize()
}

// IndexMask returns the mask applied to the placement hash to derive a
// slot index. Valid because SlotCount is a power of two.
func (l *Layout) IndexMask() uint64 {
	return l.SlotCount - 1
}

// ValueMask returns the mask that truncates a fingerprint hash to
// SlotWidth bytes. Widths of 8 or more keep the full 64 bits.
func (l *Layout) ValueMask() uint64 {
	if l.SlotWidth >= 8 {
		return ^uint64(0)
	}

	return (uint64(1) << (l.SlotWidth * 8)) - 1
}
