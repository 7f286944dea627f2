package compress

import "github.com/arloliu/ninepack/format"

// NoOpCompressor is the identity baseline: the naive text as is.
//
// Both methods return the input slice itself, so the result aliases the input.
type NoOpCompressor struct{}

var _ Codec = NoOpCompressor{}

// NewNoOpCompressor creates the identity codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Type returns format.CompressionNone.
func (NoOpCompressor) Type() format.CompressionType {
	return format.CompressionNone
}

func (NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
