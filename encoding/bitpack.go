package encoding

import (
	"encoding/binary"
	"iter"

	"github.com/arloliu/ninepack/internal/pool"
	"github.com/arloliu/ninepack/section"
)

const (
	valueBits = section.BitWidth
	valueMask = section.ValueMask
)

// BitPackEncoder packs uint16 values into 9-bit fields.
//
// Bits are accumulated in a 64-bit register, most significant bit first, and
// flushed to the byte buffer as one big-endian uint64 whenever the register is
// full. A partially filled register is only materialized, left aligned and zero
// padded, when Bytes is called.
//
// Values above 511 keep their low 9 bits.
type BitPackEncoder struct {
	bitBuf   uint64 // pending bits, right aligned
	bitCount int    // number of valid bits in bitBuf
	count    int    // number of values encoded

	buf *pool.ByteBuffer
}

var _ ColumnarEncoder[uint16] = (*BitPackEncoder)(nil)

// NewBitPackEncoder creates a new encoder backed by a pooled buffer.
//
// Call Finish when done to hand the buffer back to the pool.
func NewBitPackEncoder() *BitPackEncoder {
	return &BitPackEncoder{
		buf: pool.GetPackBuffer(),
	}
}

// Write packs a single value.
func (e *BitPackEncoder) Write(val uint16) {
	if e.buf == nil {
		panic("encoder already finished - cannot write values after Finish()")
	}

	e.count++
	e.writeValue(uint64(val) & valueMask)
}

// WriteSlice packs values in order.
//
// The buffer is grown once for the whole slice before packing.
//
// Parameters:
//   - values: Values to pack; each keeps its low 9 bits
func (e *BitPackEncoder) WriteSlice(values []uint16) {
	if e.buf == nil {
		panic("encoder already finished - cannot write values after Finish()")
	}

	if len(values) == 0 {
		return
	}

	e.buf.Grow(section.PayloadSize(len(values)))
	for _, val := range values {
		e.writeValue(uint64(val) & valueMask)
	}
	e.count += len(values)
}

// Bytes returns the packed payload.
//
// Pending bits are appended left aligned and zero padded to a whole byte. They are
// written past the buffer length, so the encoder state is left untouched and more
// values can be written afterwards.
func (e *BitPackEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	out := e.buf.Bytes()
	if e.bitCount == 0 {
		return out
	}

	aligned := e.bitBuf << (64 - e.bitCount)
	numBytes := (e.bitCount + 7) / 8
	for i := range numBytes {
		out = append(out, byte(aligned>>(56-i*8)))
	}

	return out
}

// Len returns the number of packed values.
func (e *BitPackEncoder) Len() int {
	return e.count
}

// Size returns the payload size in bytes, padding included.
func (e *BitPackEncoder) Size() int {
	return section.PayloadSize(e.count)
}

// Reset discards all packed values and keeps the buffer.
func (e *BitPackEncoder) Reset() {
	e.bitBuf = 0
	e.bitCount = 0
	e.count = 0
	if e.buf != nil {
		e.buf.Reset()
	}
}

// Finish returns the buffer to the pool. The encoder is unusable afterwards.
func (e *BitPackEncoder) Finish() {
	if e.buf == nil {
		return
	}

	pool.PutPackBuffer(e.buf)
	e.buf = nil
	e.bitBuf = 0
	e.bitCount = 0
	e.count = 0
}

// writeValue appends the 9 low bits of val to the register, splitting the value
// across the register boundary when fewer than 9 bits are free.
func (e *BitPackEncoder) writeValue(val uint64) {
	available := 64 - e.bitCount

	if available >= valueBits {
		e.bitBuf = (e.bitBuf << valueBits) | val
		e.bitCount += valueBits
		if e.bitCount == 64 {
			e.flushBits()
		}

		return
	}

	highBits := valueBits - available
	e.bitBuf = (e.bitBuf << available) | (val >> highBits)
	e.bitCount = 64
	e.flushBits()

	e.bitBuf = val & ((1 << highBits) - 1)
	e.bitCount = highBits
}

// flushBits writes a full register to the byte buffer.
func (e *BitPackEncoder) flushBits() {
	e.buf.B = binary.BigEndian.AppendUint64(e.buf.B, e.bitBuf)
	e.bitBuf = 0
	e.bitCount = 0
}

// BitPackDecoder unpacks 9-bit fields produced by BitPackEncoder.
//
// The decoder is stateless and can be used concurrently.
type BitPackDecoder struct{}

var _ ColumnarDecoder[uint16] = BitPackDecoder{}

// NewBitPackDecoder creates a new decoder.
func NewBitPackDecoder() BitPackDecoder {
	return BitPackDecoder{}
}

// Available returns how many of count values data can actually supply.
func (d BitPackDecoder) Available(data []byte, count int) int {
	if count <= 0 {
		return 0
	}

	return min(count, section.Capacity(len(data)))
}

// All returns an iterator over the first count values in data.
//
// Iteration stops early, without error, when fewer than 9 bits remain.
func (d BitPackDecoder) All(data []byte, count int) iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		br := newBitReader(data)
		for range count {
			val, ok := br.readValue()
			if !ok || !yield(val) {
				return
			}
		}
	}
}

// AppendAll appends the first count values in data to dst and returns the extended slice.
//
// Like All, it stops early when the payload runs out.
//
// Parameters:
//   - dst: Destination slice, grown at most once
//   - data: The packed payload, without header
//   - count: Number of values the payload is declared to hold
//
// Returns:
//   - []uint16: dst extended with min(count, capacity of data) values
func (d BitPackDecoder) AppendAll(dst []uint16, data []byte, count int) []uint16 {
	n := d.Available(data, count)
	if n == 0 {
		return dst
	}

	dst = growUint16(dst, n)

	br := newBitReader(data)
	for range n {
		val, _ := br.readValue()
		dst = append(dst, val)
	}

	return dst
}

// At returns the value at index without decoding the values before it.
//
// Fixed-width fields make this O(1): the value always sits within the two bytes
// starting at bit index*9.
//
// Parameters:
//   - data: The packed payload, without header
//   - count: Number of values the payload is declared to hold
//   - index: Zero-based position of the value
//
// Returns:
//   - uint16: The value at index
//   - bool: false if index is outside [0, count) or past the end of data
func (d BitPackDecoder) At(data []byte, count int, index int) (uint16, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	bitPos := index * valueBits
	if bitPos+valueBits > len(data)*8 {
		return 0, false
	}

	bytePos := bitPos / 8
	shift := 7 - bitPos%8
	window := uint16(data[bytePos])<<8 | uint16(data[bytePos+1])

	return (window >> shift) & valueMask, true
}

func growUint16(s []uint16, n int) []uint16 {
	if cap(s)-len(s) >= n {
		return s
	}

	grown := make([]uint16, len(s), len(s)+n)
	copy(grown, s)

	return grown
}

// bitReader reads 9-bit values from a byte slice, most significant bit first.
type bitReader struct {
	data     []byte // source data
	bytePos  int    // next byte to load
	bitBuf   uint64 // pending bits, left aligned
	bitCount int    // number of valid bits in bitBuf
}

func newBitReader(data []byte) *bitReader {
	return &bitReader{
		data: data,
	}
}

// readValue reads the next 9-bit value. It returns false once fewer than 9 bits remain.
func (br *bitReader) readValue() (uint16, bool) {
	if br.bitCount < valueBits {
		br.fillBuffer()
		if br.bitCount < valueBits {
			return 0, false
		}
	}

	val := uint16(br.bitBuf >> (64 - valueBits)) //nolint:gosec // G115: 9-bit value
	br.bitBuf <<= valueBits
	br.bitCount -= valueBits

	return val, true
}

// fillBuffer tops up the register with as many whole bytes as fit.
func (br *bitReader) fillBuffer() {
	if br.bitCount == 0 && br.bytePos+8 <= len(br.data) {
		br.bitBuf = binary.BigEndian.Uint64(br.data[br.bytePos:])
		br.bitCount = 64
		br.bytePos += 8

		return
	}

	for br.bitCount <= 56 && br.bytePos < len(br.data) {
		br.bitBuf |= uint64(br.data[br.bytePos]) << (56 - br.bitCount)
		br.bitCount += 8
		br.bytePos++
	}
}
