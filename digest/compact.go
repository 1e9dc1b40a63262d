package digest

import (
	"encoding/base64"
	"fmt"

	"github.com/arloliu/hodges/compress"
	"github.com/arloliu/hodges/endian"
	"github.com/arloliu/hodges/errs"
	"github.com/arloliu/hodges/format"
)

// Compact digest layout, before the base64 pass:
//
//	byte 0:       compression type (format.CompressionType)
//	bytes 1-8:    uncompressed buffer length, big-endian uint64
//	bytes 9..:    compressed buffer
//
// The stored length lets decoding verify the round trip regardless of the
// codec, and the full 64-bit width keeps the framing honest for any buffer
// a layout can declare. Compact digests are not interchangeable with
// canonical ones; the two sides of a channel must agree on which form they
// exchange.
const compactPrefixSize = 9

// EncodeCompact renders data as a compact digest: the raw buffer is
// compressed with the given codec and wrapped in URL-safe unpadded base64.
// A mostly-empty slot region compresses extremely well, which makes this
// the better choice on constrained channels.
func EncodeCompact(data []byte, compression format.CompressionType) (string, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return "", err
	}

	payload, err := codec.Compress(data)
	if err != nil {
		return "", fmt.Errorf("compact digest: %w", err)
	}

	out := make([]byte, compactPrefixSize+len(payload))
	out[0] = byte(compression)
	endian.GetBigEndianEngine().PutUint64(out[1:compactPrefixSize], uint64(len(data)))
	copy(out[compactPrefixSize:], payload)

	return base64.RawURLEncoding.EncodeToString(out), nil
}

// DecodeCompact inverts EncodeCompact, returning a freshly allocated
// buffer. It fails if the compression marker is unknown or the
// decompressed length disagrees with the recorded one.
func DecodeCompact(digest string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(digest)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidDigest, err)
	}

	if len(raw) < compactPrefixSize {
		return nil, fmt.Errorf("%w: compact digest of %d bytes", errs.ErrInvalidDigest, len(raw))
	}

	codec, err := compress.GetCodec(format.CompressionType(raw[0]))
	if err != nil {
		return nil, err
	}

	data, err := codec.Decompress(raw[compactPrefixSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidDigest, err)
	}

	want := endian.GetBigEndianEngine().Uint64(raw[1:compactPrefixSize])
	if uint64(len(data)) != want {
		return nil, fmt.Errorf("%w: decompressed %d bytes, recorded %d", errs.ErrInvalidDigest, len(data), want)
	}

	return data, nil
}
