package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/ninepack/format"
)

// S2Compressor produces S2 blocks with the "better" encoder.
//
// Baselines are measured once per run, so the slower, denser encoder is the fairer
// comparison against a fixed-width layout.
type S2Compressor struct{}

var _ Codec = S2Compressor{}

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Type returns format.CompressionS2.
func (S2Compressor) Type() format.CompressionType {
	return format.CompressionS2
}

// Compress encodes data as a single S2 block. The empty input gives an empty block.
func (S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bound := s2.MaxEncodedLen(len(data))
	if bound < 0 {
		return nil, fmt.Errorf("s2: input of %d bytes is too large", len(data))
	}

	return s2.EncodeBetter(make([]byte, bound), data), nil
}

// Decompress decodes a single S2 block into a buffer of exactly the declared size.
func (S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if err := checkDecompressedSize(format.CompressionS2, size); err != nil {
		return nil, err
	}

	return s2.Decode(make([]byte, size), data)
}
