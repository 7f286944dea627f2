package encoding

import "iter"

// ColumnarEncoder packs a column of values into a byte payload.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded payload, padded to a whole byte.
	// The returned slice is valid until the next call to Write, WriteSlice, Reset or Finish.
	// The caller should not modify the returned slice.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the size in bytes of the payload Bytes would return.
	Size() int

	// Reset discards all encoded values but keeps the internal buffer for reuse.
	Reset()

	// Finish returns buffer resources to the pool.
	//
	// After calling Finish, the encoder is no longer usable. Any subsequent call to
	// Write, WriteSlice or Bytes panics. Retrieve the payload with Bytes before
	// calling Finish:
	//
	//	encoder := NewBitPackEncoder()
	//	defer encoder.Finish()
	//
	//	encoder.WriteSlice(values)
	//	payload := bytes.Clone(encoder.Bytes())
	Finish()

	// Write encodes a single value.
	Write(data T)

	// WriteSlice encodes a slice of values in order.
	WriteSlice(values []T)
}

// ColumnarDecoder reads values back from a payload produced by a ColumnarEncoder.
type ColumnarDecoder[T comparable] interface {
	// All returns an iterator over the values decoded from data.
	//
	// The count parameter is the number of values the payload is expected to hold.
	// If data is too short, the iterator yields only the values it could decode.
	All(data []byte, count int) iter.Seq[T]

	// At returns the value at index.
	//
	// It returns false when index is outside [0, count) or the payload is too short
	// to hold the value.
	At(data []byte, count int, index int) (T, bool)
}
