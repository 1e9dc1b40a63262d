package set

import (
	"github.com/arloliu/hodges/digest"
	"github.com/arloliu/hodges/format"
)

// Encode renders the Set as its canonical transport digest: lower-case hex
// of the raw buffer wrapped in URL-safe unpadded base64. Encoding the same
// Set twice yields byte-identical digests.
func (s *Set) Encode() string {
	return digest.Encode(s.buf)
}

// EncodeCompact renders the Set as a compact digest, compressing the raw
// buffer with the given codec before the base64 pass. Decode it with
// DecodeCompact; the canonical and compact forms are not interchangeable.
func (s *Set) EncodeCompact(compression format.CompressionType) (string, error) {
	return digest.EncodeCompact(s.buf, compression)
}

// Decode reconstructs a Set from a canonical digest. The result is an
// independent instance over a freshly allocated buffer, validated exactly
// as FromBytes validates, and answers Contains identically to the Set that
// produced the digest.
func Decode(d string) (*Set, error) {
	data, err := digest.Decode(d)
	if err != nil {
		return nil, err
	}

	return FromBytes(data)
}

// DecodeCompact reconstructs a Set from a compact digest.
func DecodeCompact(d string) (*Set, error) {
	data, err := digest.DecodeCompact(d)
	if err != nil {
		return nil, err
	}

	return FromBytes(data)
}
