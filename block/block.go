package block

// Block is a fixed-capacity contiguous byte buffer, the unit handed to a
// sink. A block has no intrinsic structure beyond raw bytes; the metadata
// needed to interpret it travels alongside in a VirtualBlock.
//
// Ownership: a block is exclusively owned by the writer until it is sealed.
// After sealing it may be held by the sink and any number of readers, none
// of which may mutate it.
type Block struct {
	data []byte
}

// NewBlock allocates a block of the given capacity. Panics if capacity is
// not positive; writer and sink configuration validate capacity up front.
func NewBlock(capacity int) *Block {
	if capacity <= 0 {
		panic("block: capacity must be positive")
	}

	return &Block{data: make([]byte, capacity)}
}

// newBlockWithBuf wraps an existing buffer, typically one obtained from the
// allocation pool. The buffer length defines the capacity.
func newBlockWithBuf(buf []byte) *Block {
	return &Block{data: buf}
}

// Capacity returns the fixed capacity of the block in bytes.
func (b *Block) Capacity() int {
	return len(b.data)
}

// Data returns the full backing byte slice of the block. Callers must not
// mutate it once the block has been sealed.
func (b *Block) Data() []byte {
	return b.data
}

// VirtualBlock pairs a sealed Block with the metadata needed to interpret
// it: the valid byte range, the offset of the first item starting inside
// the block, and the count of items starting inside it.
//
// An item that continues from a previous block does not count toward
// ItemCount and does not define the first-item offset; FirstItem reports
// whether any item starts in this block at all, which keeps "no item starts
// here" distinguishable from an item starting at offset 0.
type VirtualBlock struct {
	block           *Block
	size            int
	firstItemOffset int
	itemCount       int
}

// NewVirtualBlock creates a VirtualBlock describing the first size bytes of
// b, with itemCount items starting inside the block and the first of them
// beginning at firstItemOffset. firstItemOffset is ignored when itemCount
// is zero.
func NewVirtualBlock(b *Block, size, firstItemOffset, itemCount int) VirtualBlock {
	return VirtualBlock{
		block:           b,
		size:            size,
		firstItemOffset: firstItemOffset,
		itemCount:       itemCount,
	}
}

// Block returns the underlying block.
func (vb VirtualBlock) Block() *Block {
	return vb.block
}

// Size returns the number of valid bytes in the block.
func (vb VirtualBlock) Size() int {
	return vb.size
}

// ItemCount returns the number of items whose first byte lies in this block.
func (vb VirtualBlock) ItemCount() int {
	return vb.itemCount
}

// FirstItem returns the byte offset, within the valid region, of the first
// item that starts in this block. The second return value is false when no
// item starts in this block, in which case the offset is meaningless.
func (vb VirtualBlock) FirstItem() (int, bool) {
	if vb.itemCount == 0 {
		return 0, false
	}

	return vb.firstItemOffset, true
}

// Bytes returns the valid region of the block. The returned slice aliases
// the block's storage; callers must not modify it.
func (vb VirtualBlock) Bytes() []byte {
	return vb.block.data[:vb.size]
}
