// Package errs defines the sentinel errors returned by ninepack.
//
// Callers match them with errors.Is; the packages that return them usually wrap
// them with additional context.
package errs

import "errors"

var (
	// ErrSequenceTooLong is returned when a sequence has more values than the
	// 16-bit count header can represent.
	ErrSequenceTooLong = errors.New("sequence too long: count exceeds 65535")
	// ErrTruncatedHeader is returned when a non-empty buffer is too short to hold the count header.
	ErrTruncatedHeader = errors.New("truncated buffer: missing count header")
	// ErrInsufficientPayload is returned in strict payload mode when the payload
	// holds fewer values than the header declares.
	ErrInsufficientPayload = errors.New("insufficient payload for declared count")
	// ErrValueOutOfRange is returned in strict range mode for values that do not fit in 9 bits.
	ErrValueOutOfRange = errors.New("value out of 9-bit range")
	// ErrEncoderFinished is returned when an encoder is used after Finish.
	ErrEncoderFinished = errors.New("encoder already finished")

	ErrInvalidRangeMode   = errors.New("invalid range mode")
	ErrInvalidPayloadMode = errors.New("invalid payload mode")

	// ErrUnknownTextEncoding is returned for unsupported text transport types.
	ErrUnknownTextEncoding = errors.New("unknown text encoding")
	// ErrInvalidText is returned when a text transport cannot decode its input.
	ErrInvalidText = errors.New("invalid encoded text")

	// ErrUnsupportedCompression is returned for unknown baseline compression types.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
