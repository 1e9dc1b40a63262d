package section

import (
	"fmt"

	"github.com/arloliu/hodges/errs"
)

// Header represents the fixed-size header at the start of a set buffer.
//
// Layout (2 bytes, nibble granularity):
//
//	byte 0: [ version:4 | reserved:4 ]
//	byte 1: [ countWidth:4 | widthWidth:4 ]
//
// The two width nibbles decide how many bytes encode the slot count and
// slot width fields that follow the header, so the format carries no fixed
// upper bound on the array length.
type Header struct {
	// Version is the wire format version, 4 bits. Only FormatVersion is
	// accepted by Parse.
	Version uint8
	// Reserved is the unused low nibble of byte 0. It carries no meaning
	// but must round-trip as written.
	Reserved uint8
	// CountWidth is the width in bytes of the slot count field (p), 1..8.
	CountWidth uint8
	// WidthWidth is the width in bytes of the slot width field (q), 1..8.
	WidthWidth uint8
}

// NewHeader creates a Header for the current format version with the given
// size-field widths.
func NewHeader(countWidth, widthWidth uint8) (*Header, error) {
	h := &Header{
		Version:    FormatVersion,
		CountWidth: countWidth,
		WidthWidth: widthWidth,
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}

	return h, nil
}

// Parse parses the header from the leading bytes of data.
// It returns an error if data is shorter than HeaderSize, if the version
// is unknown, or if either size-field width is out of range.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: got %d", errs.ErrBufferTooShort, len(data))
	}

	h.Version = HighNibble(data[0])
	h.Reserved = LowNibble(data[0])
	h.CountWidth = HighNibble(data[1])
	h.WidthWidth = LowNibble(data[1])

	return h.Validate()
}

// Bytes serializes the Header into a 2-byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	b[0] = PutHighNibble(b[0], h.Version)
	b[0] = PutLowNibble(b[0], h.Reserved)
	b[1] = PutHighNibble(b[1], h.CountWidth)
	b[1] = PutLowNibble(b[1], h.WidthWidth)

	return b
}

// Validate checks the header fields against the format invariants.
func (h *Header) Validate() error {
	if h.Version != FormatVersion {
		return fmt.Errorf("%w: %d", errs.ErrUnknownVersion, h.Version)
	}

	if h.CountWidth < 1 || h.CountWidth > MaxFieldWidth {
		return fmt.Errorf("%w: slot count field is %d bytes", errs.ErrInvalidFieldWidth, h.CountWidth)
	}

	if h.WidthWidth < 1 || h.WidthWidth > MaxFieldWidth {
		return fmt.Errorf("%w: slot width field is %d bytes", errs.ErrInvalidFieldWidth, h.WidthWidth)
	}

	return nil
}
