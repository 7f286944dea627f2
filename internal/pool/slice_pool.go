package pool

import "sync"

var uint16SlicePool = sync.Pool{
	New: func() any { return &[]uint16{} },
}

// GetUint16Slice retrieves a uint16 slice of length size from the pool.
//
// The contents of the returned slice are unspecified. The caller must call the
// returned cleanup function, typically with defer, once the slice is no longer used.
//
// Example:
//
//	scratch, cleanup := pool.GetUint16Slice(len(values))
//	defer cleanup()
//	copy(scratch, values)
func GetUint16Slice(size int) ([]uint16, func()) {
	ptr, _ := uint16SlicePool.Get().(*[]uint16)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint16, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { uint16SlicePool.Put(ptr) }
}
