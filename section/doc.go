// Package section defines the binary layout of a ninepack buffer.
//
// An encoded buffer is made of two regions:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (2 bytes, big-endian uint16 value count)         │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (ceil(9*count/8) bytes)                         │
//	│  - 9-bit values, most significant bit first             │
//	│  - values concatenated without byte alignment           │
//	│  - zero padded at the end to a whole byte               │
//	└─────────────────────────────────────────────────────────┘
//
// The empty sequence is encoded as the empty buffer: no header is written.
//
// This package only deals with the fixed-size header and the size arithmetic.
// Bit packing lives in the encoding package.
package section
