package compress

import "github.com/arloliu/ninepack/format"

// ZstdCompressor produces single Zstandard frames at level 3.
//
// The pure Go implementation from klauspost/compress is used by default. Building
// with cgo and the gozstd tag switches to the valyala/gozstd bindings.
type ZstdCompressor struct{}

var _ Codec = ZstdCompressor{}

// zstdLevel is the reference zstd default level, used by both implementations.
const zstdLevel = 3

// NewZstdCompressor creates a Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// Type returns format.CompressionZstd.
func (ZstdCompressor) Type() format.CompressionType {
	return format.CompressionZstd
}
