package compress

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/ninepack/format"
)

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor produces LZ4 blocks prefixed with the original size.
//
// The block format does not record the decompressed size, so every compressed payload
// starts with it as a uvarint:
//
//	uvarint(len(data)) | LZ4 block
//	uvarint(len(data)) | data       (when the block would not be smaller)
//
// The two layouts are told apart by length: a stored payload is exactly as long as
// the size it declares, a block never is.
type LZ4Compressor struct{}

var _ Codec = LZ4Compressor{}

// NewLZ4Compressor creates an LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Type returns format.CompressionLZ4.
func (LZ4Compressor) Type() format.CompressionType {
	return format.CompressionLZ4
}

// Compress encodes data using a pooled compressor. The empty input gives an empty payload.
func (LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out := make([]byte, 0, binary.MaxVarintLen64+lz4.CompressBlockBound(len(data)))
	out = binary.AppendUvarint(out, uint64(len(data)))
	prefixLen := len(out)

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, out[prefixLen:cap(out)])
	if err != nil {
		return nil, fmt.Errorf("lz4: %w", err)
	}
	if n == 0 || n >= len(data) {
		return append(out, data...), nil
	}

	return out[:prefixLen+n], nil
}

// Decompress restores a payload produced by Compress.
func (LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, prefixLen := binary.Uvarint(data)
	if prefixLen <= 0 {
		return nil, fmt.Errorf("lz4: invalid size prefix")
	}
	if size > maxDecompressedSize {
		return nil, fmt.Errorf("lz4: declared size %d exceeds %d", size, maxDecompressedSize)
	}

	body := data[prefixLen:]
	if len(body) == int(size) {
		return append([]byte(nil), body...), nil
	}

	out := make([]byte, size)
	n, err := lz4.UncompressBlock(body, out)
	if err != nil {
		return nil, fmt.Errorf("lz4: %w", err)
	}
	if n != int(size) {
		return nil, fmt.Errorf("lz4: block holds %d bytes, prefix declares %d", n, size)
	}

	return out, nil
}
