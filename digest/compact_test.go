package digest

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/arloliu/hodges/errs"
	"github.com/arloliu/hodges/format"
	"github.com/stretchr/testify/require"
)

func TestCompactRoundTrip(t *testing.T) {
	data := append(bytes.Repeat([]byte{0x00}, 700), 0xDE, 0xAD, 0xBE, 0xEF)

	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			d, err := EncodeCompact(data, compression)
			require.NoError(t, err)

			decoded, err := DecodeCompact(d)
			require.NoError(t, err)
			require.Equal(t, data, decoded)
		})
	}
}

func TestCompactFraming(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}

	d, err := EncodeCompact(data, format.CompressionNone)
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(d)
	require.NoError(t, err)
	require.Equal(t, byte(format.CompressionNone), raw[0])
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04}, raw[1:9], "big-endian raw length")
	require.Equal(t, data, raw[9:], "no-op codec passes the buffer through")
}

func TestEncodeCompactUnknownCompression(t *testing.T) {
	_, err := EncodeCompact([]byte{0x01}, format.CompressionType(0x7F))

	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestDecodeCompactErrors(t *testing.T) {
	t.Run("Invalid base64", func(t *testing.T) {
		_, err := DecodeCompact("!!!")

		require.ErrorIs(t, err, errs.ErrInvalidDigest)
	})

	t.Run("Shorter than the framing prefix", func(t *testing.T) {
		_, err := DecodeCompact(base64.RawURLEncoding.EncodeToString([]byte{0x01, 0x00, 0x00, 0x00}))

		require.ErrorIs(t, err, errs.ErrInvalidDigest)
	})

	t.Run("Unknown compression marker", func(t *testing.T) {
		raw := []byte{0x7F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0xAA}

		_, err := DecodeCompact(base64.RawURLEncoding.EncodeToString(raw))

		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})

	t.Run("Recorded length mismatch", func(t *testing.T) {
		// No-op framing claiming 5 bytes over a 4-byte payload.
		raw := []byte{byte(format.CompressionNone), 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x05, 0x01, 0x02, 0x03, 0x04}

		_, err := DecodeCompact(base64.RawURLEncoding.EncodeToString(raw))

		require.ErrorIs(t, err, errs.ErrInvalidDigest)
	})

	t.Run("Corrupt compressed payload", func(t *testing.T) {
		raw := []byte{byte(format.CompressionZstd), 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0xDE, 0xAD, 0xBE, 0xEF}

		_, err := DecodeCompact(base64.RawURLEncoding.EncodeToString(raw))

		require.ErrorIs(t, err, errs.ErrInvalidDigest)
	})
}
