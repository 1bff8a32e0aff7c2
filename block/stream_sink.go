package block

import (
	"fmt"
	"io"

	"github.com/arloliu/blockstream/compress"
	"github.com/arloliu/blockstream/endian"
	"github.com/arloliu/blockstream/errs"
	"github.com/arloliu/blockstream/format"
	"github.com/arloliu/blockstream/internal/hash"
	"github.com/arloliu/blockstream/internal/options"
)

const (
	frameMagic      = uint32(0x424C4B31) // "BLK1"
	frameHeaderSize = 32

	// noFirstItem marks frames in which no item starts, keeping that case
	// distinguishable from a first item at offset 0.
	noFirstItem = ^uint32(0)
)

// Frame header layout, all multi-byte fields in the sink's byte order:
//
//	offset  size  field
//	0       4     magic "BLK1"
//	4       1     compression type
//	5       3     reserved, zero
//	8       4     item count
//	12      4     first item offset (noFirstItem when item count is 0)
//	16      4     raw (uncompressed) payload length
//	20      4     payload length as written
//	24      8     xxHash64 checksum of the written payload

// StreamSink frames each sealed block onto an io.Writer: a fixed 32-byte
// header carrying the block metadata, followed by the block's valid bytes,
// optionally compressed. The checksum in the header covers the payload as
// written, so transport corruption is detected before decompression.
//
// StreamSink is the transport-shaped sink: pointing it at a net.Conn yields
// one self-describing message per sealed block.
type StreamSink struct {
	w      io.Writer
	engine endian.EndianEngine
	ctype  format.CompressionType
	codec  compress.Codec
	closed bool
}

var _ Sink = (*StreamSink)(nil)

// StreamSinkOption represents a functional option for configuring a
// StreamSink.
type StreamSinkOption = options.Option[*StreamSink]

// WithStreamCompression selects the compression applied to each framed
// payload. Defaults to none.
func WithStreamCompression(ctype format.CompressionType) StreamSinkOption {
	return options.New(func(s *StreamSink) error {
		if !ctype.IsValid() {
			return fmt.Errorf("invalid stream compression: %s", ctype)
		}
		s.ctype = ctype

		return nil
	})
}

// WithStreamBigEndian selects big-endian byte order for frame headers.
func WithStreamBigEndian() StreamSinkOption {
	return options.NoError(func(s *StreamSink) {
		s.engine = endian.GetBigEndianEngine()
	})
}

// WithStreamLittleEndian selects little-endian byte order for frame headers.
// This is the default.
func WithStreamLittleEndian() StreamSinkOption {
	return options.NoError(func(s *StreamSink) {
		s.engine = endian.GetLittleEndianEngine()
	})
}

// NewStreamSink creates a StreamSink writing frames to w.
func NewStreamSink(w io.Writer, opts ...StreamSinkOption) (*StreamSink, error) {
	s := &StreamSink{
		w:      w,
		engine: endian.GetLittleEndianEngine(),
		ctype:  format.CompressionNone,
	}

	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(s.ctype)
	if err != nil {
		return nil, err
	}
	s.codec = codec

	return s, nil
}

// AppendBlock frames one sealed block onto the underlying writer.
func (s *StreamSink) AppendBlock(vb VirtualBlock) error {
	if s.closed {
		return errs.ErrSinkClosed
	}

	raw := vb.Bytes()
	payload, err := s.codec.Compress(raw)
	if err != nil {
		return fmt.Errorf("failed to compress block payload: %w", err)
	}

	firstOffset := noFirstItem
	if offset, ok := vb.FirstItem(); ok {
		firstOffset = uint32(offset) //nolint:gosec
	}

	var header [frameHeaderSize]byte
	s.engine.PutUint32(header[0:4], frameMagic)
	header[4] = byte(s.ctype)
	s.engine.PutUint32(header[8:12], uint32(vb.ItemCount()))   //nolint:gosec
	s.engine.PutUint32(header[12:16], firstOffset)
	s.engine.PutUint32(header[16:20], uint32(len(raw)))     //nolint:gosec
	s.engine.PutUint32(header[20:24], uint32(len(payload))) //nolint:gosec
	s.engine.PutUint64(header[24:32], hash.Checksum(payload))

	if _, err := s.w.Write(header[:]); err != nil {
		return err
	}
	if len(payload) > 0 {
		if _, err := s.w.Write(payload); err != nil {
			return err
		}
	}

	return nil
}

// Close finalizes the sink, closing the underlying writer if it implements
// io.Closer. Idempotent.
func (s *StreamSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

// Frame is one block read back from a framed stream: the decompressed
// payload plus the block metadata carried in the header.
type Frame struct {
	// Data holds the block's valid bytes after decompression.
	Data []byte

	// ItemCount is the number of items that start in this block.
	ItemCount int

	// FirstItemOffset is the offset of the first item starting in this
	// block. Meaningful only when HasFirstItem is true.
	FirstItemOffset int

	// HasFirstItem reports whether any item starts in this block.
	HasFirstItem bool

	// Compression is the compression type the payload was framed with.
	Compression format.CompressionType
}

// ReadFrame reads one frame from r using the given byte order. It returns
// io.EOF when the stream is exhausted at a frame boundary, and wraps
// errs.ErrInvalidFrame or errs.ErrChecksumMismatch for malformed input.
func ReadFrame(r io.Reader, engine endian.EndianEngine) (*Frame, error) {
	var header [frameHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}

		return nil, fmt.Errorf("%w: truncated header: %v", errs.ErrInvalidFrame, err)
	}

	if engine.Uint32(header[0:4]) != frameMagic {
		return nil, fmt.Errorf("%w: bad magic", errs.ErrInvalidFrame)
	}

	ctype := format.CompressionType(header[4])
	if !ctype.IsValid() {
		return nil, fmt.Errorf("%w: unknown compression 0x%02x", errs.ErrInvalidFrame, header[4])
	}

	itemCount := engine.Uint32(header[8:12])
	firstOffset := engine.Uint32(header[12:16])
	rawLen := engine.Uint32(header[16:20])
	payloadLen := engine.Uint32(header[20:24])
	checksum := engine.Uint64(header[24:32])

	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("%w: truncated payload: %v", errs.ErrInvalidFrame, err)
	}

	if hash.Checksum(payload) != checksum {
		return nil, fmt.Errorf("%w: payload checksum", errs.ErrChecksumMismatch)
	}

	codec, err := compress.GetCodec(ctype)
	if err != nil {
		return nil, err
	}

	data, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress block payload: %w", err)
	}
	if len(data) != int(rawLen) {
		return nil, fmt.Errorf("%w: raw length %d, got %d", errs.ErrInvalidFrame, rawLen, len(data))
	}

	frame := &Frame{
		Data:        data,
		ItemCount:   int(itemCount),
		Compression: ctype,
	}
	if itemCount > 0 && firstOffset != noFirstItem {
		frame.FirstItemOffset = int(firstOffset)
		frame.HasFirstItem = true
	}

	return frame, nil
}
