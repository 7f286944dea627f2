package blob

import (
	"fmt"
	"iter"

	"github.com/arloliu/ninepack/encoding"
	"github.com/arloliu/ninepack/internal/hash"
	"github.com/arloliu/ninepack/section"
)

// Blob is a read-only view of an encoded ninepack buffer.
//
// The zero value is the empty blob: it has no header and holds no values.
type Blob struct {
	data    []byte
	header  section.Header
	payload []byte
}

// Parse wraps data as a Blob after reading its header.
//
// The empty buffer yields the empty blob. A one-byte buffer fails with
// errs.ErrTruncatedHeader. Payload shortfalls are not errors here; see Available.
// The blob references data without copying it.
func Parse(data []byte) (Blob, error) {
	if len(data) == 0 {
		return Blob{}, nil
	}

	header, err := section.ParseHeader(data)
	if err != nil {
		return Blob{}, fmt.Errorf("%w: got %d byte(s)", err, len(data))
	}

	return Blob{
		data:    data,
		header:  header,
		payload: data[section.HeaderSize:],
	}, nil
}

// Bytes returns the encoded buffer.
func (b Blob) Bytes() []byte {
	return b.data
}

// Size returns the encoded buffer size in bytes.
func (b Blob) Size() int {
	return len(b.data)
}

// IsEmpty reports whether the blob is the empty buffer.
func (b Blob) IsEmpty() bool {
	return len(b.data) == 0
}

// Count returns the number of values declared by the header.
func (b Blob) Count() int {
	return int(b.header.Count)
}

// Available returns the number of values the payload actually holds, at most Count.
func (b Blob) Available() int {
	return encoding.NewBitPackDecoder().Available(b.payload, b.Count())
}

// IsTruncated reports whether the payload is too short for the declared count.
func (b Blob) IsTruncated() bool {
	return b.Available() < b.Count()
}

// Payload returns the packed region following the header.
func (b Blob) Payload() []byte {
	return b.payload
}

// All returns an iterator over the values, in encoding order.
func (b Blob) All() iter.Seq[uint16] {
	return encoding.NewBitPackDecoder().All(b.payload, b.Count())
}

// At returns the value at index i.
func (b Blob) At(i int) (uint16, bool) {
	return encoding.NewBitPackDecoder().At(b.payload, b.Count(), i)
}

// Values decodes all available values into a new slice. It never returns nil.
func (b Blob) Values() []uint16 {
	return b.AppendValues(make([]uint16, 0, b.Available()))
}

// AppendValues appends all available values to dst and returns the extended slice.
func (b Blob) AppendValues(dst []uint16) []uint16 {
	return encoding.NewBitPackDecoder().AppendAll(dst, b.payload, b.Count())
}

// Fingerprint returns the xxHash64 of the encoded buffer.
//
// Equal sequences always produce equal fingerprints.
func (b Blob) Fingerprint() uint64 {
	return hash.Sum(b.data)
}
