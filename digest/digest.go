// Package digest implements the text-safe serialization of set buffers.
//
// The canonical digest is produced in two stages: the raw buffer is
// rendered as lower-case hex text, then the hex text is encoded with
// URL-safe, unpadded base64. Encoding the hex rather than the raw bytes is
// deliberate, if size-inefficient: the intermediate form stays human
// inspectable when debugging gossip traffic. For bandwidth-sensitive paths
// the compact digest in this package compresses the raw buffer instead.
//
// The codec is pure: it transforms bytes to strings and back, and never
// interprets the buffer's contents.
package digest

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/arloliu/hodges/errs"
	"github.com/arloliu/hodges/internal/pool"
)

// Encode renders data as a canonical digest string: lower-case hex, then
// URL-safe unpadded base64 over the hex text.
func Encode(data []byte) string {
	bb := pool.GetDigestBuffer()
	defer pool.PutDigestBuffer(bb)

	hexText := bb.Sized(hex.EncodedLen(len(data)))
	hex.Encode(hexText, data)

	return base64.RawURLEncoding.EncodeToString(hexText)
}

// Decode inverts Encode, returning a freshly allocated buffer. The result
// aliases nothing, so the caller may hand it straight to set.FromBytes.
func Decode(digest string) ([]byte, error) {
	hexText, err := base64.RawURLEncoding.DecodeString(digest)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidDigest, err)
	}

	data := make([]byte, hex.DecodedLen(len(hexText)))
	if _, err := hex.Decode(data, hexText); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidDigest, err)
	}

	return data, nil
}
