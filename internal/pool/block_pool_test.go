package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBlockPool(t *testing.T) {
	p := NewBlockPool(128)
	require.Equal(t, 128, p.Capacity())

	buf := p.Get()
	require.Len(t, buf, 128)
	require.Equal(t, 128, cap(buf))
}

func TestNewBlockPool_InvalidCapacity(t *testing.T) {
	require.Panics(t, func() { NewBlockPool(0) })
	require.Panics(t, func() { NewBlockPool(-1) })
}

func TestBlockPool_Reuse(t *testing.T) {
	p := NewBlockPool(64)

	buf := p.Get()
	buf[0] = 0xAB
	p.Put(buf)

	// A reused buffer keeps its full length regardless of how the previous
	// holder sliced it.
	buf2 := p.Get()
	require.Len(t, buf2, 64)
}

func TestBlockPool_RejectsForeignCapacity(t *testing.T) {
	p := NewBlockPool(64)

	// Must not panic and must not poison the pool.
	p.Put(make([]byte, 32))

	buf := p.Get()
	require.Len(t, buf, 64)
}
