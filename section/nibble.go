package section

// Nibble accessors for the packed header bytes. Writes preserve the
// sibling nibble and silently truncate values to 4 bits, matching the
// permissive packing policy used throughout the format.

// HighNibble returns the upper 4 bits of b.
func HighNibble(b byte) uint8 {
	return (b >> 4) & 0x0F
}

// LowNibble returns the lower 4 bits of b.
func LowNibble(b byte) uint8 {
	return b & 0x0F
}

// PutHighNibble sets the upper 4 bits of b to v, keeping the lower nibble.
func PutHighNibble(b byte, v uint8) byte {
	return (b & 0x0F) | ((v & 0x0F) << 4)
}

// PutLowNibble sets the lower 4 bits of b to v, keeping the upper nibble.
func PutLowNibble(b byte, v uint8) byte {
	return (b & 0xF0) | (v & 0x0F)
}
