// Package transport converts encoded ninepack buffers to and from printable text.
//
// The codec core works on raw bytes only; a transport is layered on top when a buffer
// has to travel through a text channel (URLs, JSON fields, logs, clipboards).
//
//	codec, err := transport.Get(format.TextBase64URL)
//	if err != nil {
//	    return err
//	}
//	text := codec.EncodeToString(buf)
//	buf, err = codec.DecodeString(text)
//
// Every codec maps the empty buffer to the empty string and back, matching the
// empty-sequence rule of the binary format.
package transport

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/multiformats/go-base32"
	"github.com/multiformats/go-base36"

	"github.com/arloliu/ninepack/errs"
	"github.com/arloliu/ninepack/format"
)

// Codec is a reversible binary-to-text encoding.
type Codec interface {
	// Type returns the text encoding implemented by the codec.
	Type() format.TextEncoding
	// EncodeToString renders data as text.
	EncodeToString(data []byte) string
	// DecodeString parses text produced by EncodeToString.
	DecodeString(text string) ([]byte, error)
}

type funcCodec struct {
	typ    format.TextEncoding
	encode func([]byte) string
	decode func(string) ([]byte, error)
}

var _ Codec = funcCodec{}

func (c funcCodec) Type() format.TextEncoding {
	return c.typ
}

func (c funcCodec) EncodeToString(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	return c.encode(data)
}

func (c funcCodec) DecodeString(text string) ([]byte, error) {
	if text == "" {
		return []byte{}, nil
	}

	data, err := c.decode(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errs.ErrInvalidText, c.typ, err)
	}

	return data, nil
}

var base32Encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

var builtinCodecs = map[format.TextEncoding]Codec{
	format.TextBase64: funcCodec{
		typ:    format.TextBase64,
		encode: base64.StdEncoding.EncodeToString,
		decode: base64.StdEncoding.DecodeString,
	},
	format.TextBase64URL: funcCodec{
		typ:    format.TextBase64URL,
		encode: base64.RawURLEncoding.EncodeToString,
		decode: base64.RawURLEncoding.DecodeString,
	},
	format.TextBase32: funcCodec{
		typ:    format.TextBase32,
		encode: base32Encoding.EncodeToString,
		decode: base32Encoding.DecodeString,
	},
	format.TextBase36: funcCodec{
		typ:    format.TextBase36,
		encode: base36.EncodeToStringLc,
		decode: base36.DecodeString,
	},
	format.TextBase58: funcCodec{
		typ:    format.TextBase58,
		encode: base58.Encode,
		decode: base58.Decode,
	},
	format.TextHex: funcCodec{
		typ:    format.TextHex,
		encode: hex.EncodeToString,
		decode: hex.DecodeString,
	},
}

// Get returns the built-in codec for textEncoding.
//
// Parameters:
//   - textEncoding: One of the format.Text* constants
//
// Returns:
//   - Codec: A shared, stateless codec
//   - error: errs.ErrUnknownTextEncoding for unsupported types
func Get(textEncoding format.TextEncoding) (Codec, error) {
	if codec, ok := builtinCodecs[textEncoding]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %d", errs.ErrUnknownTextEncoding, textEncoding)
}

// Default returns the base64 codec.
func Default() Codec {
	return builtinCodecs[format.TextBase64]
}
