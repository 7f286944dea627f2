// Package blob encodes sequences of 9-bit integers into ninepack buffers and reads them back.
//
// A buffer ("blob") is a 2-byte big-endian count header followed by the values packed
// as 9-bit fields. The empty sequence is the empty buffer, without a header.
//
// # Encoding
//
//	b, err := blob.Encode([]uint16{5, 511, 0})
//	if err != nil {
//	    return err
//	}
//	data := b.Bytes() // 00 03 02 FF C0 00
//
// An Encoder can also be fed incrementally:
//
//	encoder, _ := blob.NewEncoder(blob.WithStrictRange())
//	for _, v := range values {
//	    if err := encoder.Write(v); err != nil {
//	        return err
//	    }
//	}
//	b, err := encoder.Finish()
//
// # Decoding
//
//	values, err := blob.Decode(data)
//
// or, to inspect the buffer without materializing every value:
//
//	b, err := blob.Parse(data)
//	for v := range b.All() {
//	    ...
//	}
//	v, ok := b.At(42)
//
// # Range and payload modes
//
// By default the encoder keeps the low 9 bits of values above 511 (format.RangeTruncate)
// and the decoder returns the values it could read when the payload is shorter than the
// header declares (format.PayloadLenient). WithStrictRange and WithStrictPayload turn
// both conditions into errors instead (errs.ErrValueOutOfRange, errs.ErrInsufficientPayload).
//
// A sequence longer than 65535 values always fails with errs.ErrSequenceTooLong, and a
// one-byte buffer always fails with errs.ErrTruncatedHeader.
//
// # Thread Safety
//
// Blob and Decoder are safe for concurrent use. An Encoder must not be shared between
// goroutines.
package blob
