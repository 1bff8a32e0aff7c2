package block

import (
	"math"
	"unsafe"

	"github.com/arloliu/blockstream/endian"
	"github.com/arloliu/blockstream/errs"
	"github.com/arloliu/blockstream/internal/options"
	"github.com/arloliu/blockstream/internal/pool"
)

// Writer appends serialized items into fixed-capacity blocks and emits each
// block to the attached Sink when it fills up or is explicitly flushed. The
// writer takes care of segmenting items across block boundaries: an item may
// be smaller than, equal to, or arbitrarily larger than the space remaining
// in the current block.
//
// Every top-level item must be announced with MarkItem before its bytes are
// appended; the per-block item metadata delivered to the sink is derived
// from those marks and is what downstream readers use to resynchronize.
//
// Note: the Writer is NOT thread-safe. All mutating calls on one writer must
// come from a single goroutine at a time.
//
// Note: the Writer must be closed exactly once via Close (typically with
// defer) so the final partial block reaches the sink. A writer value must
// not be copied after first use; it holds the exclusive cursor state into
// the current block.
type Writer struct {
	sink   Sink
	engine endian.EndianEngine

	block       *Block
	cursor      int // write position, block.begin <= cursor <= limit
	limit       int // == block.Capacity()
	nitems      int // items whose start byte lies in the current block
	firstOffset int // offset of the first such item, latched on 0 -> 1

	capacity   int
	selfVerify bool
	usePool    bool
	closed     bool

	scratch [8]byte
}

// WriterOption represents a functional option for configuring a Writer.
type WriterOption = options.Option[*Writer]

// WithBlockCapacity sets the fixed capacity of the blocks the writer
// produces. Defaults to 64KiB.
func WithBlockCapacity(capacity int) WriterOption {
	return options.New(func(w *Writer) error {
		if capacity <= 0 {
			return errs.ErrInvalidCapacity
		}
		w.capacity = capacity

		return nil
	})
}

// WithSelfVerification enables or disables self-verification. When enabled,
// every item written through a codec is prefixed with a stable fingerprint
// of its declared type, so a mismatched reader detects schema drift instead
// of silently misinterpreting bytes. The matching read side must enable the
// same mode: the prefix changes the wire bytes.
func WithSelfVerification(enabled bool) WriterOption {
	return options.NoError(func(w *Writer) {
		w.selfVerify = enabled
	})
}

// WithBlockPooling makes the writer allocate blocks from the shared
// per-capacity pool fed by Recycle, instead of the heap. Only worthwhile
// when block consumers actually recycle.
func WithBlockPooling() WriterOption {
	return options.NoError(func(w *Writer) {
		w.usePool = true
	})
}

// WithLittleEndian selects little-endian byte order for the fixed-width put
// helpers. This is the default.
func WithLittleEndian() WriterOption {
	return options.NoError(func(w *Writer) {
		w.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian selects big-endian byte order for the fixed-width put
// helpers.
func WithBigEndian() WriterOption {
	return options.NoError(func(w *Writer) {
		w.engine = endian.GetBigEndianEngine()
	})
}

// NewWriter creates a Writer bound to sink and allocates its first empty
// block.
//
// A nil sink is legal: the writer still segments data into blocks, but
// sealed blocks are dropped and Close has no sink to finalize. This
// "not currently attached" mode is useful when the destination is wired up
// by a layer that swaps the buffering writer in and out.
func NewWriter(sink Sink, opts ...WriterOption) (*Writer, error) {
	w := &Writer{
		sink:     sink,
		engine:   endian.GetLittleEndianEngine(),
		capacity: pool.DefaultBlockCapacity,
	}

	if err := options.Apply(w, opts...); err != nil {
		return nil, err
	}

	w.allocateBlock()

	return w, nil
}

// IsValid reports whether an actual sink is attached.
func (w *Writer) IsValid() bool {
	return w.sink != nil
}

// Capacity returns the fixed capacity of the blocks this writer produces.
func (w *Writer) Capacity() int {
	return w.capacity
}

// SelfVerifying reports whether self-verification is enabled.
func (w *Writer) SelfVerifying() bool {
	return w.selfVerify
}

// Engine returns the byte order engine used by the fixed-width put helpers,
// so codecs can encode auxiliary data consistently.
func (w *Writer) Engine() endian.EndianEngine {
	return w.engine
}

// MarkItem declares the start of one logical item. It must be called exactly
// once at the start of every top-level item, before the item's bytes are
// appended; omitting it corrupts the per-block item metadata downstream
// readers rely on.
//
// If the current block is already full the writer flushes first, so the
// mark lands at the beginning of the next block.
func (w *Writer) MarkItem() error {
	if w.closed {
		return errs.ErrWriterClosed
	}

	if w.cursor == w.limit {
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if w.nitems == 0 {
		w.firstOffset = w.cursor
	}
	w.nitems++

	return nil
}

// Append appends a byte range to the current block, splitting across as many
// blocks as needed. This is the segmentation loop: while the data does not
// fit, the prefix that fits is copied, the full block is sealed to the sink,
// a fresh block is allocated, and the loop continues with the remainder.
// A single item may therefore span an arbitrary number of blocks, including
// items larger than the block capacity.
func (w *Writer) Append(data []byte) error {
	if w.closed {
		return errs.ErrWriterClosed
	}

	for w.cursor+len(data) > w.limit {
		partial := w.limit - w.cursor
		copy(w.block.data[w.cursor:], data[:partial])
		w.cursor = w.limit
		data = data[partial:]

		if err := w.Flush(); err != nil {
			return err
		}
	}

	copy(w.block.data[w.cursor:], data)
	w.cursor += len(data)

	return nil
}

// PutByte appends a single byte, the fast path equivalent of Append with a
// one-byte slice.
func (w *Writer) PutByte(b byte) error {
	if w.closed {
		return errs.ErrWriterClosed
	}

	if w.cursor == w.limit {
		if err := w.Flush(); err != nil {
			return err
		}
	}

	w.block.data[w.cursor] = b
	w.cursor++

	return nil
}

// PutUint16 appends v in the writer's byte order.
func (w *Writer) PutUint16(v uint16) error {
	w.engine.PutUint16(w.scratch[:2], v)
	return w.Append(w.scratch[:2])
}

// PutUint32 appends v in the writer's byte order.
func (w *Writer) PutUint32(v uint32) error {
	w.engine.PutUint32(w.scratch[:4], v)
	return w.Append(w.scratch[:4])
}

// PutUint64 appends v in the writer's byte order.
func (w *Writer) PutUint64(v uint64) error {
	w.engine.PutUint64(w.scratch[:8], v)
	return w.Append(w.scratch[:8])
}

// PutInt16 appends v in the writer's byte order.
func (w *Writer) PutInt16(v int16) error {
	return w.PutUint16(uint16(v))
}

// PutInt32 appends v in the writer's byte order.
func (w *Writer) PutInt32(v int32) error {
	return w.PutUint32(uint32(v))
}

// PutInt64 appends v in the writer's byte order.
func (w *Writer) PutInt64(v int64) error {
	return w.PutUint64(uint64(v))
}

// PutFloat32 appends the IEEE 754 representation of v in the writer's byte
// order.
func (w *Writer) PutFloat32(v float32) error {
	return w.PutUint32(math.Float32bits(v))
}

// PutFloat64 appends the IEEE 754 representation of v in the writer's byte
// order.
func (w *Writer) PutFloat64(v float64) error {
	return w.PutUint64(math.Float64bits(v))
}

// PutBool appends v as a single byte, 1 for true and 0 for false.
func (w *Writer) PutBool(v bool) error {
	if v {
		return w.PutByte(1)
	}

	return w.PutByte(0)
}

// PutUvarint appends v using unsigned LEB128 variable-length encoding, the
// same wire format as encoding/binary.PutUvarint.
func (w *Writer) PutUvarint(v uint64) error {
	for v >= 0x80 {
		if err := w.PutByte(byte(v) | 0x80); err != nil {
			return err
		}
		v >>= 7
	}

	return w.PutByte(byte(v))
}

// PutVarint appends v using zig-zag variable-length encoding, the same wire
// format as encoding/binary.PutVarint.
func (w *Writer) PutVarint(v int64) error {
	uv := uint64(v) << 1
	if v < 0 {
		uv = ^uv
	}

	return w.PutUvarint(uv)
}

// PutString appends s prefixed with its length as a uvarint. The string
// bytes are appended verbatim with no terminator.
func (w *Writer) PutString(s string) error {
	if err := w.PutUvarint(uint64(len(s))); err != nil {
		return err
	}

	return w.Append([]byte(s))
}

// Flush seals the current block to the sink regardless of fill level and
// allocates a fresh empty block. Useful when an external protocol boundary,
// such as one network message per block, must align with a logical boundary
// rather than a capacity boundary.
//
// Flushing a writer that holds no written byte and no item start emits
// nothing: there is no data to lose, so no empty block reaches the sink.
func (w *Writer) Flush() error {
	if w.closed {
		return errs.ErrWriterClosed
	}

	sealed, err := w.sealBlock()
	if sealed {
		w.allocateBlock()
	}

	return err
}

// AppendBlocks relocates already-sealed blocks directly to the sink,
// bypassing the local cursor. Any pending partial block is sealed first so
// total byte order at the sink is preserved, then the given blocks are
// forwarded unchanged and in order, and the writer resumes into a fresh
// empty block.
func (w *Writer) AppendBlocks(vbs []VirtualBlock) error {
	if w.closed {
		return errs.ErrWriterClosed
	}

	sealed, err := w.sealBlock()
	if sealed {
		w.allocateBlock()
	}
	if err != nil {
		return err
	}

	if w.sink == nil {
		return nil
	}

	for _, vb := range vbs {
		if err := w.sink.AppendBlock(vb); err != nil {
			return err
		}
	}

	return nil
}

// Close seals the current block to the sink if it holds any written byte or
// any item start, then closes the sink. Close is idempotent; only the first
// call seals and finalizes. Any write operation after Close returns
// errs.ErrWriterClosed.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	_, sealErr := w.sealBlock()

	w.block = nil
	w.cursor = 0
	w.limit = 0
	w.nitems = 0
	w.firstOffset = 0

	var closeErr error
	if w.sink != nil {
		closeErr = w.sink.Close()
	}

	if sealErr != nil {
		return sealErr
	}

	return closeErr
}

// allocateBlock replaces the current block with a fresh empty one and resets
// the per-block item bookkeeping.
func (w *Writer) allocateBlock() {
	if w.usePool {
		w.block = newBlockWithBuf(getBlockPool(w.capacity).Get())
	} else {
		w.block = NewBlock(w.capacity)
	}

	w.cursor = 0
	w.limit = w.capacity
	w.nitems = 0
	w.firstOffset = 0
}

// sealBlock hands the current block to the sink if it holds any data or any
// item start. It reports whether the block was given up; the caller is
// responsible for allocating a replacement. With no sink attached the block
// contents are dropped.
func (w *Writer) sealBlock() (bool, error) {
	if w.cursor == 0 && w.nitems == 0 {
		return false, nil
	}

	if w.sink == nil {
		return true, nil
	}

	vb := NewVirtualBlock(w.block, w.cursor, w.firstOffset, w.nitems)

	return true, w.sink.AppendBlock(vb)
}

// Plain constrains Put to fixed-layout value types: types with no internal
// pointers whose byte representation fully determines their value. Only
// fixed-width kinds are admitted so the wire layout does not depend on the
// platform's word size.
type Plain interface {
	~bool | ~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 |
		~int64 | ~uint64 | ~float32 | ~float64
}

// Put appends one fixed-layout value in the writer's byte order. The
// constraint on T enforces the fixed-layout contract at compile time; there
// is no runtime type check to fail.
func Put[T Plain](w *Writer, v T) error {
	switch size := unsafe.Sizeof(v); size {
	case 1:
		return w.PutByte(*(*byte)(unsafe.Pointer(&v)))
	case 2:
		return w.PutUint16(*(*uint16)(unsafe.Pointer(&v)))
	case 4:
		return w.PutUint32(*(*uint32)(unsafe.Pointer(&v)))
	default:
		return w.PutUint64(*(*uint64)(unsafe.Pointer(&v)))
	}
}
