package section

import "math"

const (
	HeaderSize = 2               // fixed header size in bytes
	BitWidth   = 9               // bits per packed value
	MaxValue   = 1<<BitWidth - 1 // largest value representable in BitWidth bits (511)
	ValueMask  = MaxValue        // mask keeping the low BitWidth bits
	MaxCount   = math.MaxUint16  // largest count the header can represent
)
