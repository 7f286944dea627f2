package blob

import (
	"fmt"

	"github.com/arloliu/ninepack/errs"
	"github.com/arloliu/ninepack/format"
	"github.com/arloliu/ninepack/internal/options"
)

// Decoder reads values back from ninepack buffers.
//
// A Decoder holds only its configuration and can be shared between goroutines.
type Decoder struct {
	config *DecoderConfig
}

// NewDecoder creates a decoder with the given options.
//
// Available options:
//   - WithPayloadMode(format.PayloadLenient|format.PayloadStrict)
//   - WithStrictPayload()
//
// Parameters:
//   - opts: Optional decoder configuration (payload mode)
//
// Returns:
//   - *Decoder: New decoder instance, safe for concurrent use
//   - error: ErrInvalidPayloadMode if an option carries an unknown mode
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	config := newDecoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Decoder{config: config}, nil
}

// Parse wraps data as a Blob, applying the decoder's payload mode.
//
// Parameters:
//   - data: The encoded buffer; it is referenced, not copied
//
// Returns:
//   - Blob: A read view over data
//   - error: ErrTruncatedHeader for a one-byte buffer, or ErrInsufficientPayload
//     for a short payload in PayloadStrict mode
func (d *Decoder) Parse(data []byte) (Blob, error) {
	b, err := Parse(data)
	if err != nil {
		return Blob{}, err
	}

	if d.config.payloadMode == format.PayloadStrict && b.IsTruncated() {
		return Blob{}, fmt.Errorf("%w: header declares %d values, payload holds %d",
			errs.ErrInsufficientPayload, b.Count(), b.Available())
	}

	return b, nil
}

// Decode returns the values stored in data.
//
// The empty buffer yields an empty, non-nil slice. In lenient mode a short payload
// yields only the values it holds.
func (d *Decoder) Decode(data []byte) ([]uint16, error) {
	b, err := d.Parse(data)
	if err != nil {
		return nil, err
	}

	return b.Values(), nil
}

// Decode returns the values stored in data using a decoder built from opts.
func Decode(data []byte, opts ...DecoderOption) ([]uint16, error) {
	decoder, err := NewDecoder(opts...)
	if err != nil {
		return nil, err
	}

	return decoder.Decode(data)
}
