package compress

// ZstdCompressor provides Zstandard compression for compact digests.
//
// Zstd gives the best compression ratio of the built-in codecs and is the
// right default when digests travel over a constrained channel. Two
// implementations back it: a cgo build uses valyala/gozstd for raw speed,
// and a pure-Go build falls back to klauspost/compress/zstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
