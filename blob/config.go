package blob

import (
	"fmt"

	"github.com/arloliu/ninepack/errs"
	"github.com/arloliu/ninepack/format"
	"github.com/arloliu/ninepack/internal/options"
)

// EncoderConfig holds the encoder settings applied by EncoderOption values.
type EncoderConfig struct {
	rangeMode format.RangeMode
}

func newEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		rangeMode: format.RangeTruncate,
	}
}

// RangeMode returns the configured range mode.
func (c *EncoderConfig) RangeMode() format.RangeMode {
	return c.rangeMode
}

func (c *EncoderConfig) setRangeMode(mode format.RangeMode) error {
	switch mode {
	case format.RangeTruncate, format.RangeStrict:
		c.rangeMode = mode
		return nil
	default:
		return fmt.Errorf("%w: %v", errs.ErrInvalidRangeMode, mode)
	}
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithRangeMode sets how values above 511 are handled.
func WithRangeMode(mode format.RangeMode) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setRangeMode(mode)
	})
}

// WithStrictRange rejects values above 511 instead of truncating them.
func WithStrictRange() EncoderOption {
	return WithRangeMode(format.RangeStrict)
}

// DecoderConfig holds the decoder settings applied by DecoderOption values.
type DecoderConfig struct {
	payloadMode format.PayloadMode
}

func newDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		payloadMode: format.PayloadLenient,
	}
}

// PayloadMode returns the configured payload mode.
func (c *DecoderConfig) PayloadMode() format.PayloadMode {
	return c.payloadMode
}

func (c *DecoderConfig) setPayloadMode(mode format.PayloadMode) error {
	switch mode {
	case format.PayloadLenient, format.PayloadStrict:
		c.payloadMode = mode
		return nil
	default:
		return fmt.Errorf("%w: %v", errs.ErrInvalidPayloadMode, mode)
	}
}

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*DecoderConfig]

// WithPayloadMode sets how a payload shorter than its header declares is handled.
func WithPayloadMode(mode format.PayloadMode) DecoderOption {
	return options.New(func(c *DecoderConfig) error {
		return c.setPayloadMode(mode)
	})
}

// WithStrictPayload reports a short payload as errs.ErrInsufficientPayload.
func WithStrictPayload() DecoderOption {
	return WithPayloadMode(format.PayloadStrict)
}
