package compress

import (
	"bytes"
	"fmt"

	"github.com/arloliu/ninepack/errs"
	"github.com/arloliu/ninepack/format"
)

// maxDecompressedSize bounds what any codec is willing to restore.
const maxDecompressedSize = 64 * 1024 * 1024

// Compressor compresses a complete payload.
//
// The returned slice is owned by the caller; the input is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// It returns an error if data is corrupted or was produced by another algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression for one algorithm.
type Codec interface {
	Compressor
	Decompressor

	// Type returns the algorithm implemented by the codec.
	Type() format.CompressionType
}

// Stats describes one baseline measurement.
type Stats struct {
	// Algorithm identifies the compression algorithm used.
	Algorithm format.CompressionType
	// OriginalSize is the input size in bytes.
	OriginalSize int
	// CompressedSize is the output size in bytes.
	CompressedSize int
	// Lossless reports whether decompressing the output gave back the input.
	Lossless bool
}

// Ratio returns CompressedSize / OriginalSize, or 0 for an empty input.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage of the original size.
func (s Stats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.Ratio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in codec for compressionType.
//
// Parameters:
//   - compressionType: The baseline algorithm to look up
//
// Returns:
//   - Codec: A shared, stateless codec
//   - error: errs.ErrUnsupportedCompression for unknown types
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

// Measure runs data through the built-in codec for compressionType and reports the sizes.
//
// See MeasureCodec for the round-trip check.
func Measure(compressionType format.CompressionType, data []byte) (Stats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return Stats{}, err
	}

	return MeasureCodec(codec, data)
}

// MeasureCodec compresses data, decompresses the result and compares it with data.
//
// A codec that fails to restore its own output does not abort the measurement; the
// mismatch is reported through Stats.Lossless instead. Only a compression failure, or
// a decompression error, is returned as an error.
//
// Parameters:
//   - codec: The codec to measure
//   - data: The input, typically the naive text of a sequence
//
// Returns:
//   - Stats: Sizes and the round-trip outcome
//   - error: The codec error, wrapped with the algorithm name
func MeasureCodec(codec Codec, data []byte) (Stats, error) {
	algorithm := codec.Type()

	compressed, err := codec.Compress(data)
	if err != nil {
		return Stats{}, fmt.Errorf("%s compression failed: %w", algorithm, err)
	}

	restored, err := codec.Decompress(compressed)
	if err != nil {
		return Stats{}, fmt.Errorf("%s decompression failed: %w", algorithm, err)
	}

	return Stats{
		Algorithm:      algorithm,
		OriginalSize:   len(data),
		CompressedSize: len(compressed),
		Lossless:       bytes.Equal(restored, data),
	}, nil
}

func checkDecompressedSize(algorithm format.CompressionType, size int) error {
	if size < 0 || size > maxDecompressedSize {
		return fmt.Errorf("%s: decompressed size %d outside [0, %d]", algorithm, size, maxDecompressedSize)
	}

	return nil
}
