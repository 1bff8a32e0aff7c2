package block

import (
	"sync"

	"github.com/arloliu/blockstream/internal/pool"
)

// blockPools holds one allocation pool per block capacity. Pools are shared
// by all writers configured with pooling, so recycled buffers from one
// writer's consumers can back another writer's blocks.
var blockPools sync.Map // int -> *pool.BlockPool

func getBlockPool(capacity int) *pool.BlockPool {
	if p, ok := blockPools.Load(capacity); ok {
		return p.(*pool.BlockPool)
	}

	p, _ := blockPools.LoadOrStore(capacity, pool.NewBlockPool(capacity))

	return p.(*pool.BlockPool)
}

// Recycle returns a block's buffer to the allocation pool for its capacity,
// making it available to writers configured with WithBlockPooling.
//
// The caller must be the last holder of the block: recycling a block that a
// sink or reader still references hands two owners the same buffer. Sinks
// that retain blocks, like File, recycle on their own Reset instead of
// per-block.
func Recycle(b *Block) {
	if b == nil {
		return
	}

	getBlockPool(b.Capacity()).Put(b.data)
}
