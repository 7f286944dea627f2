package blob

import (
	"fmt"

	"github.com/arloliu/ninepack/encoding"
	"github.com/arloliu/ninepack/errs"
	"github.com/arloliu/ninepack/format"
	"github.com/arloliu/ninepack/internal/options"
	"github.com/arloliu/ninepack/section"
)

// Encoder builds a ninepack buffer from values written one at a time or in batches.
//
// An Encoder is single-use: once Finish has been called, every further call fails
// with errs.ErrEncoderFinished.
type Encoder struct {
	config *EncoderConfig
	values *encoding.BitPackEncoder
}

// NewEncoder creates an encoder with the given options.
//
// Available options:
//   - WithRangeMode(format.RangeTruncate|format.RangeStrict)
//   - WithStrictRange()
//
// Parameters:
//   - opts: Optional encoder configuration (range mode)
//
// Returns:
//   - *Encoder: New encoder instance backed by a pooled buffer
//   - error: ErrInvalidRangeMode if an option carries an unknown mode
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	config := newEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Encoder{
		config: config,
		values: encoding.NewBitPackEncoder(),
	}, nil
}

// Write appends a single value.
//
// Parameters:
//   - val: The value to append; only its low 9 bits are kept in RangeTruncate mode
//
// Returns:
//   - error: ErrEncoderFinished, ErrSequenceTooLong once 65535 values were written,
//     or ErrValueOutOfRange for values above 511 in RangeStrict mode
func (e *Encoder) Write(val uint16) error {
	if e.values == nil {
		return errs.ErrEncoderFinished
	}

	if err := e.checkCount(1); err != nil {
		return err
	}
	if err := e.checkValue(val, e.values.Len()); err != nil {
		return err
	}

	e.values.Write(val)

	return nil
}

// WriteSlice appends values in order.
//
// The values are validated before any of them is written, so a failed call leaves
// the encoder unchanged.
//
// Parameters:
//   - values: The values to append, in order
//
// Returns:
//   - error: ErrEncoderFinished, ErrSequenceTooLong if the total would exceed 65535,
//     or ErrValueOutOfRange naming the first offending index in RangeStrict mode
func (e *Encoder) WriteSlice(values []uint16) error {
	if e.values == nil {
		return errs.ErrEncoderFinished
	}

	if err := e.checkCount(len(values)); err != nil {
		return err
	}

	if e.config.rangeMode == format.RangeStrict {
		base := e.values.Len()
		for i, val := range values {
			if err := e.checkValue(val, base+i); err != nil {
				return err
			}
		}
	}

	e.values.WriteSlice(values)

	return nil
}

// Len returns the number of values written so far.
func (e *Encoder) Len() int {
	if e.values == nil {
		return 0
	}

	return e.values.Len()
}

// Finish assembles the buffer and releases the encoder's resources.
//
// With no values written, the result is the empty blob: no header is emitted.
// The returned blob owns a newly allocated buffer.
//
// Returns:
//   - Blob: The encoded buffer, header included
//   - error: ErrEncoderFinished if Finish was already called
func (e *Encoder) Finish() (Blob, error) {
	if e.values == nil {
		return Blob{}, errs.ErrEncoderFinished
	}
	defer func() {
		e.values.Finish()
		e.values = nil
	}()

	count := e.values.Len()
	if count == 0 {
		return Blob{}, nil
	}

	header, err := section.NewHeader(count)
	if err != nil {
		return Blob{}, err
	}

	data := make([]byte, 0, section.EncodedSize(count))
	data = header.Append(data)
	data = append(data, e.values.Bytes()...)

	return Blob{
		data:    data,
		header:  header,
		payload: data[section.HeaderSize:],
	}, nil
}

func (e *Encoder) checkCount(n int) error {
	if total := e.values.Len() + n; total > section.MaxCount {
		return fmt.Errorf("%w: %d values", errs.ErrSequenceTooLong, total)
	}

	return nil
}

func (e *Encoder) checkValue(val uint16, index int) error {
	if e.config.rangeMode == format.RangeStrict && val > section.MaxValue {
		return fmt.Errorf("%w: value %d at index %d", errs.ErrValueOutOfRange, val, index)
	}

	return nil
}

// Encode packs values into a new blob.
//
// The empty or nil sequence yields the empty blob. More than 65535 values fail with
// errs.ErrSequenceTooLong.
func Encode(values []uint16, opts ...EncoderOption) (Blob, error) {
	if len(values) > section.MaxCount {
		return Blob{}, fmt.Errorf("%w: %d values", errs.ErrSequenceTooLong, len(values))
	}

	encoder, err := NewEncoder(opts...)
	if err != nil {
		return Blob{}, err
	}

	if err := encoder.WriteSlice(values); err != nil {
		_, _ = encoder.Finish()
		return Blob{}, err
	}

	return encoder.Finish()
}
