package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNibbleRead(t *testing.T) {
	require.Equal(t, uint8(0xA), HighNibble(0xA5))
	require.Equal(t, uint8(0x5), LowNibble(0xA5))
	require.Equal(t, uint8(0x0), HighNibble(0x0F))
	require.Equal(t, uint8(0xF), LowNibble(0x0F))
}

func TestNibbleWritePreservesSibling(t *testing.T) {
	b := byte(0xA5)

	b = PutHighNibble(b, 0x3)
	require.Equal(t, byte(0x35), b)

	b = PutLowNibble(b, 0xC)
	require.Equal(t, byte(0x3C), b)
}

func TestNibbleWriteTruncates(t *testing.T) {
	// Values above 15 are masked to 4 bits, not rejected.
	require.Equal(t, byte(0x10), PutHighNibble(0x00, 0xF1))
	require.Equal(t, byte(0x01), PutLowNibble(0x00, 0xF1))
}

func TestNibbleRoundTrip(t *testing.T) {
	for hi := uint8(0); hi < 16; hi++ {
		for lo := uint8(0); lo < 16; lo++ {
			b := PutLowNibble(PutHighNibble(0, hi), lo)
			require.Equal(t, hi, HighNibble(b))
			require.Equal(t, lo, LowNibble(b))
		}
	}
}
