package block

import "github.com/arloliu/blockstream/errs"

// File is an in-memory sink that retains sealed blocks in emission order.
// It is the simplest durable destination for a Writer and doubles as a
// source for bulk relocation: its blocks can be handed verbatim to another
// writer's AppendBlocks.
//
// Like the Writer that feeds it, a File is not thread-safe on the write
// side. Once written and closed it may be read concurrently.
type File struct {
	blocks []VirtualBlock
	nitems int
	nbytes int
	closed bool
}

var _ Sink = (*File)(nil)

// NewFile creates an empty File.
func NewFile() *File {
	return &File{}
}

// AppendBlock retains one sealed block. Returns errs.ErrSinkClosed after
// Close.
func (f *File) AppendBlock(vb VirtualBlock) error {
	if f.closed {
		return errs.ErrSinkClosed
	}

	f.blocks = append(f.blocks, vb)
	f.nitems += vb.ItemCount()
	f.nbytes += vb.Size()

	return nil
}

// Close finalizes the file. Idempotent.
func (f *File) Close() error {
	f.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (f *File) Closed() bool {
	return f.closed
}

// NumBlocks returns the number of sealed blocks retained.
func (f *File) NumBlocks() int {
	return len(f.blocks)
}

// NumItems returns the total number of items that start in the retained
// blocks.
func (f *File) NumItems() int {
	return f.nitems
}

// NumBytes returns the total number of valid bytes across the retained
// blocks.
func (f *File) NumBytes() int {
	return f.nbytes
}

// Block returns the i-th sealed block in emission order.
func (f *File) Block(i int) VirtualBlock {
	return f.blocks[i]
}

// Blocks returns the retained blocks in emission order. The slice is cloned
// to prevent external modification of the file's bookkeeping; the blocks it
// references are shared.
func (f *File) Blocks() []VirtualBlock {
	out := make([]VirtualBlock, len(f.blocks))
	copy(out, f.blocks)

	return out
}

// ReadAll returns the concatenation of every retained block's valid bytes
// in emission order, which is exactly the byte stream the feeding writer
// appended.
func (f *File) ReadAll() []byte {
	out := make([]byte, 0, f.nbytes)
	for _, vb := range f.blocks {
		out = append(out, vb.Bytes()...)
	}

	return out
}

// Reset drops all retained blocks and reopens the file for writing. When
// recycle is true the dropped blocks' buffers are returned to the shared
// allocation pool; the caller must ensure no reader still holds them.
func (f *File) Reset(recycle bool) {
	if recycle {
		for _, vb := range f.blocks {
			Recycle(vb.Block())
		}
	}

	f.blocks = nil
	f.nitems = 0
	f.nbytes = 0
	f.closed = false
}
