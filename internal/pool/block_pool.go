// Package pool provides reusable fixed-capacity block buffers to minimize
// allocations on the block write path.
package pool

import "sync"

// DefaultBlockCapacity is the block capacity used when a writer is not
// configured with an explicit capacity.
const DefaultBlockCapacity = 64 * 1024 // 64KiB

// BlockPool is a pool of fixed-capacity byte buffers backing blocks.
//
// All buffers handed out by one pool share the same capacity; a buffer of a
// different capacity offered back via Put is discarded rather than retained.
// It uses sync.Pool internally, so idle buffers may be reclaimed by the
// garbage collector at any time.
type BlockPool struct {
	pool     sync.Pool
	capacity int
}

// NewBlockPool creates a BlockPool handing out buffers of the given capacity.
// Panics if capacity is not positive; pool capacity is validated by the
// writer configuration before a pool is constructed.
func NewBlockPool(capacity int) *BlockPool {
	if capacity <= 0 {
		panic("pool: block capacity must be positive")
	}

	return &BlockPool{
		pool: sync.Pool{
			New: func() any {
				buf := make([]byte, capacity)
				return &buf
			},
		},
		capacity: capacity,
	}
}

// Capacity returns the capacity of buffers managed by this pool.
func (p *BlockPool) Capacity() int {
	return p.capacity
}

// Get retrieves a buffer of exactly Capacity bytes from the pool.
func (p *BlockPool) Get() []byte {
	buf, _ := p.pool.Get().(*[]byte)
	return *buf
}

// Put returns a buffer to the pool for reuse. Buffers whose capacity does
// not match the pool's are dropped. The caller must not retain the buffer
// after Put.
func (p *BlockPool) Put(buf []byte) {
	if cap(buf) != p.capacity {
		return
	}

	buf = buf[:p.capacity]
	p.pool.Put(&buf)
}
