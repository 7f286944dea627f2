package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/ninepack/errs"
)

type (
	// RangeMode selects how the encoder treats values that do not fit in 9 bits.
	RangeMode uint8
	// PayloadMode selects how the decoder treats a payload shorter than its header declares.
	PayloadMode uint8
	// TextEncoding identifies a binary-to-text transport for encoded buffers.
	TextEncoding uint8
	// CompressionType identifies a general-purpose compressor used for size baselines.
	CompressionType uint8
)

const (
	RangeTruncate RangeMode = 0x1 // RangeTruncate keeps the low 9 bits of every value.
	RangeStrict   RangeMode = 0x2 // RangeStrict rejects values above 511.

	PayloadLenient PayloadMode = 0x1 // PayloadLenient returns the values decoded before the payload ran out.
	PayloadStrict  PayloadMode = 0x2 // PayloadStrict reports a short payload as an error.

	TextBase64    TextEncoding = 0x1 // TextBase64 is standard padded base64 (RFC 4648).
	TextBase64URL TextEncoding = 0x2 // TextBase64URL is unpadded URL-safe base64.
	TextBase32    TextEncoding = 0x3 // TextBase32 is unpadded standard base32.
	TextBase36    TextEncoding = 0x4 // TextBase36 is lower-case base36.
	TextBase58    TextEncoding = 0x5 // TextBase58 uses the Bitcoin alphabet.
	TextHex       TextEncoding = 0x6 // TextHex is lower-case hexadecimal.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (m RangeMode) String() string {
	switch m {
	case RangeTruncate:
		return "Truncate"
	case RangeStrict:
		return "Strict"
	default:
		return "Unknown"
	}
}

func (m PayloadMode) String() string {
	switch m {
	case PayloadLenient:
		return "Lenient"
	case PayloadStrict:
		return "Strict"
	default:
		return "Unknown"
	}
}

func (t TextEncoding) String() string {
	switch t {
	case TextBase64:
		return "base64"
	case TextBase64URL:
		return "base64url"
	case TextBase32:
		return "base32"
	case TextBase36:
		return "base36"
	case TextBase58:
		return "base58"
	case TextHex:
		return "hex"
	default:
		return "unknown"
	}
}

// TextEncodings lists all built-in text encodings.
func TextEncodings() []TextEncoding {
	return []TextEncoding{TextBase64, TextBase64URL, TextBase32, TextBase36, TextBase58, TextHex}
}

// ParseTextEncoding returns the text encoding with the given name, case-insensitively.
func ParseTextEncoding(name string) (TextEncoding, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range TextEncodings() {
		if t.String() == name {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrUnknownTextEncoding, name)
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType returns the compression type with the given name, case-insensitively.
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedCompression, name)
	}
}
