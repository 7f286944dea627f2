package section

import (
	"encoding/binary"

	"github.com/arloliu/ninepack/errs"
)

// Header is the count prefix of an encoded buffer.
type Header struct {
	// Count is the number of packed values declared by the buffer.
	Count uint16
}

// NewHeader creates a header for count values.
//
// Returns errs.ErrSequenceTooLong if count does not fit in 16 bits.
func NewHeader(count int) (Header, error) {
	if count < 0 || count > MaxCount {
		return Header{}, errs.ErrSequenceTooLong
	}

	return Header{Count: uint16(count)}, nil //nolint:gosec // G115: bounds checked above
}

// Parse parses the header from the first HeaderSize bytes of data.
//
// Returns errs.ErrTruncatedHeader if data is shorter than HeaderSize.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrTruncatedHeader
	}

	h.Count = binary.BigEndian.Uint16(data[:HeaderSize])

	return nil
}

// Bytes serializes the header into a new byte slice.
func (h Header) Bytes() []byte {
	return h.Append(make([]byte, 0, HeaderSize))
}

// Append appends the serialized header to dst and returns the extended slice.
func (h Header) Append(dst []byte) []byte {
	return binary.BigEndian.AppendUint16(dst, h.Count)
}

// PayloadSize returns the payload size in bytes the header requires.
func (h Header) PayloadSize() int {
	return PayloadSize(int(h.Count))
}

// ParseHeader parses a Header from the start of data.
func ParseHeader(data []byte) (Header, error) {
	var h Header
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}

// PayloadSize returns the number of payload bytes needed to pack count values.
func PayloadSize(count int) int {
	return (count*BitWidth + 7) / 8
}

// EncodedSize returns the full buffer size for count values, header included.
// The empty sequence has no header and encodes to zero bytes.
func EncodedSize(count int) int {
	if count == 0 {
		return 0
	}

	return HeaderSize + PayloadSize(count)
}

// Capacity returns how many whole values a payload of payloadLen bytes can hold.
func Capacity(payloadLen int) int {
	return payloadLen * 8 / BitWidth
}
