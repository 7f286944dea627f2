package pool

import "sync"

const (
	// PackBufferDefaultSize covers the payload of roughly 7k packed values.
	PackBufferDefaultSize = 1024 * 8 // 8KiB
	// PackBufferMaxThreshold is slightly above the largest possible payload (73727 bytes).
	PackBufferMaxThreshold = 1024 * 128 // 128KiB
)

// ByteBuffer is a growable byte slice that can be recycled through a ByteBufferPool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new empty ByteBuffer with the given capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, capacity),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps its memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Grow makes sure the buffer can take n more bytes without reallocating.
//
// Small buffers grow by PackBufferDefaultSize, larger ones by a quarter of their
// capacity, and never by less than n.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := PackBufferDefaultSize
	if cap(bb.B) > 4*PackBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool recycles ByteBuffers through a sync.Pool.
//
// Buffers that grew beyond maxThreshold are dropped on Put instead of being
// retained by the pool.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of defaultSize capacity.
// A maxThreshold of zero keeps buffers of any size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var packDefaultPool = NewByteBufferPool(PackBufferDefaultSize, PackBufferMaxThreshold)

// GetPackBuffer retrieves a ByteBuffer from the default packing pool.
func GetPackBuffer() *ByteBuffer {
	return packDefaultPool.Get()
}

// PutPackBuffer returns a ByteBuffer to the default packing pool.
func PutPackBuffer(bb *ByteBuffer) {
	packDefaultPool.Put(bb)
}
