// Package compress provides the compression codecs used by compact
// digests.
//
// Set buffers are dominated by the slot region, which is mostly zero at
// typical occupancy, so even fast codecs shrink a digest dramatically.
// Zstd gives the best ratio, S2 and LZ4 trade ratio for speed, and the
// no-op codec keeps the compact framing without any compression.
package compress

import (
	"fmt"

	"github.com/arloliu/hodges/errs"
	"github.com/arloliu/hodges/format"
)

// Compressor compresses a complete set buffer into a newly allocated
// slice. The input is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor inverts the matching Compressor. Implementations validate
// the input framing and fail on corrupt or mismatched data.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. All implementations in this package are
// stateless values and safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the given compression type.
func GetCodec(compression format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compression]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compression)
}
