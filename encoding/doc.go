// Package encoding implements the fixed-width bit packing behind the ninepack payload.
//
// Every value is written as exactly 9 bits, most significant bit first, and values
// are concatenated without byte alignment. The final byte is zero padded.
//
//	values:  5          511        0
//	bits:    000000101  111111111  000000000  (+ 5 padding bits)
//	bytes:   0x02 0xFF 0xC0 0x00
//
// BitPackEncoder accumulates bits in a 64-bit register and flushes it to a pooled
// byte buffer in big-endian order whenever it fills up, so there is no textual or
// per-bit intermediate representation. BitPackDecoder reads the payload back either
// sequentially through All or by index through At; fixed-width values make random
// access a constant-time operation.
//
// The encoder does not validate values: anything above 511 is truncated to its low
// 9 bits. Range checks, the count header and the empty-sequence rule are handled by
// the blob package, which most callers should use instead.
package encoding
