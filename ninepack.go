// Package ninepack packs sequences of small unsigned integers (0-511) into a compact
// binary buffer, 9 bits per value.
//
// Ninepack targets short sequences of bounded values (game moves, board cells,
// palette indices, sensor buckets) that would otherwise travel as comma-separated
// decimal text. Packed, each value costs 9 bits instead of up to 4 bytes.
//
// # Wire Format
//
//	+----------------+-----------------------------------------+
//	| count (uint16) | values, 9 bits each, MSB first, padded |
//	+----------------+-----------------------------------------+
//	     2 bytes               ceil(9 * count / 8) bytes
//
// The count is big-endian. The empty sequence encodes to the empty buffer, without
// a header.
//
// # Basic Usage
//
//	data, err := ninepack.Encode([]uint16{5, 511, 0})
//	if err != nil {
//	    return err
//	}
//	// data = 00 03 02 FF C0 00
//
//	values, err := ninepack.Decode(data)
//
// Buffers that need to travel as text can be rendered with any of the built-in
// transports:
//
//	text, err := ninepack.EncodeToString(values, format.TextBase58)
//	values, err = ninepack.DecodeString(text, format.TextBase58)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the blob and transport
// packages. For incremental encoding, random access and strict modes, use the blob
// package directly.
package ninepack

import (
	"github.com/arloliu/ninepack/blob"
	"github.com/arloliu/ninepack/format"
	"github.com/arloliu/ninepack/internal/hash"
	"github.com/arloliu/ninepack/transport"
)

// Encode packs values into a new buffer.
//
// Values above 511 keep their low 9 bits unless blob.WithStrictRange is passed.
// More than 65535 values fail with errs.ErrSequenceTooLong.
//
// Example:
//
//	data, err := ninepack.Encode(moves, blob.WithStrictRange())
func Encode(values []uint16, opts ...blob.EncoderOption) ([]byte, error) {
	b, err := blob.Encode(values, opts...)
	if err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// Decode unpacks a buffer produced by Encode.
//
// The empty buffer decodes to an empty, non-nil slice. A one-byte buffer fails with
// errs.ErrTruncatedHeader. When the payload is shorter than the header declares, the
// values it does hold are returned, unless blob.WithStrictPayload is passed.
func Decode(data []byte, opts ...blob.DecoderOption) ([]uint16, error) {
	return blob.Decode(data, opts...)
}

// EncodeToString packs values and renders the buffer with the given text encoding.
func EncodeToString(values []uint16, textEncoding format.TextEncoding, opts ...blob.EncoderOption) (string, error) {
	codec, err := transport.Get(textEncoding)
	if err != nil {
		return "", err
	}

	data, err := Encode(values, opts...)
	if err != nil {
		return "", err
	}

	return codec.EncodeToString(data), nil
}

// DecodeString reverses EncodeToString.
//
// Malformed text fails with errs.ErrInvalidText.
func DecodeString(text string, textEncoding format.TextEncoding, opts ...blob.DecoderOption) ([]uint16, error) {
	codec, err := transport.Get(textEncoding)
	if err != nil {
		return nil, err
	}

	data, err := codec.DecodeString(text)
	if err != nil {
		return nil, err
	}

	return Decode(data, opts...)
}

// Fingerprint returns the 64-bit xxHash of an encoded buffer.
//
// Encoding is deterministic, so equal sequences always share a fingerprint.
func Fingerprint(data []byte) uint64 {
	return hash.Sum(data)
}
