package section

const (
	// HeaderSize is the fixed header size in bytes: one byte packing the
	// version and reserved nibbles, one byte packing the two size-field
	// widths. It is also the minimum length of any valid buffer.
	HeaderSize = 2

	// FormatVersion is the only wire format version this implementation
	// understands. Parsing rejects anything else.
	FormatVersion = 1

	// MaxFieldWidth bounds the p and q header nibbles: size fields are
	// decoded into a uint64, so no field may span more than 8 bytes.
	MaxFieldWidth = 8

	// MaxSlotWidth bounds the per-slot fingerprint width. Fingerprints are
	// compared through a uint64, so slots wider than 8 bytes would only
	// ever hold zero padding beyond the hash.
	MaxSlotWidth = 8

	// Default layout parameters: a 256-slot array of 3-byte fingerprints,
	// with a 2-byte slot count field and a 1-byte slot width field.
	// Total buffer size: 2 + 2 + 1 + 256*3 = 773 bytes.
	DefaultSlotCount       = 256
	DefaultSlotWidth       = 3
	DefaultCountFieldWidth = 2
	DefaultWidthFieldWidth = 1
)
