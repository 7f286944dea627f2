// Package compress provides general-purpose compression codecs used as size baselines.
//
// ninepack never compresses its own payload: fixed-width packing is the whole format.
// The codecs in this package exist so the comparison harness can report how packing
// fares against running the naive decimal text through a real compressor.
//
// Supported algorithms, selected by format.CompressionType:
//   - None: returns the input unchanged
//   - Zstd: klauspost/compress/zstd, or valyala/gozstd when built with the gozstd tag and cgo
//   - S2: klauspost/compress/s2
//   - LZ4: pierrec/lz4 block format
//
// All codecs are stateless values and safe for concurrent use. Measure runs a codec
// both ways and reports, besides the sizes, whether the input came back intact.
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(data)
package compress
