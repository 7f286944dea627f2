//go:build cgo && gozstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/arloliu/ninepack/format"
)

func (ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

func (ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	restored, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd: %w", err)
	}
	if err := checkDecompressedSize(format.CompressionZstd, len(restored)); err != nil {
		return nil, err
	}

	return restored, nil
}
