// Package blockstream provides the write path of a block-structured binary
// buffering layer: a stream of typed items is serialized into fixed-capacity
// binary blocks and handed to a pluggable sink for storage or transport
// between compute nodes.
//
// The hard part is segmentation. Items are variable length and written back
// to back into blocks of fixed capacity, so an item may span any number of
// block boundaries, including items larger than a whole block. Each sealed
// block carries the metadata (valid byte range, offset of the first item
// starting inside it, count of items starting inside it) that lets an
// independent reader resynchronize on any block without the previous one.
//
// # Core Features
//
//   - Segmenting writer with unbounded item size across fixed blocks
//   - Per-block item metadata for downstream resynchronization
//   - Pluggable sinks: in-memory file, channel handoff, framed byte stream
//   - Compile-time typed item codecs via generics
//   - Optional self-verification (xxHash64 type fingerprints per item)
//   - Optional per-frame compression (Zstd, S2, LZ4) and checksums
//
// # Basic Usage
//
// Writing items to an in-memory file:
//
//	import "github.com/arloliu/blockstream"
//
//	w, file, _ := blockstream.NewFileWriter(
//	    block.WithBlockCapacity(64 * 1024),
//	)
//
//	_ = codec.Write[string](w, codec.String{}, "hello")
//	_ = codec.Write[uint64](w, codec.Uint64{}, 42)
//	_ = w.Close()
//
//	raw := file.ReadAll() // every item's bytes, in write order
//
// Streaming compressed frames to a connection:
//
//	w, _ := blockstream.NewStreamWriter(conn, format.CompressionS2)
//	defer w.Close()
//
// # Package Structure
//
// This package provides convenient top-level constructors around the block
// package, which holds the writer, sinks, and block types. The codec
// package supplies typed item serialization; compress, endian, and format
// carry the supporting transport concerns.
package blockstream

import (
	"io"

	"github.com/arloliu/blockstream/block"
	"github.com/arloliu/blockstream/format"
)

// NewFileWriter creates a segmenting writer backed by a fresh in-memory
// File sink and returns both.
func NewFileWriter(opts ...block.WriterOption) (*block.Writer, *block.File, error) {
	file := block.NewFile()

	w, err := block.NewWriter(file, opts...)
	if err != nil {
		return nil, nil, err
	}

	return w, file, nil
}

// NewChanWriter creates a segmenting writer that hands sealed blocks to a
// channel with the given buffer depth, pipelining production with a
// consumer goroutine. The returned sink's C method exposes the channel; it
// is closed when the writer closes.
func NewChanWriter(buffer int, opts ...block.WriterOption) (*block.Writer, *block.ChanSink, error) {
	sink := block.NewChanSink(buffer)

	w, err := block.NewWriter(sink, opts...)
	if err != nil {
		return nil, nil, err
	}

	return w, sink, nil
}

// NewStreamWriter creates a segmenting writer whose sealed blocks are
// framed onto dst with the given compression, one self-describing message
// per block. Closing the writer closes dst if it implements io.Closer.
func NewStreamWriter(dst io.Writer, compression format.CompressionType, opts ...block.WriterOption) (*block.Writer, error) {
	sink, err := block.NewStreamSink(dst, block.WithStreamCompression(compression))
	if err != nil {
		return nil, err
	}

	return block.NewWriter(sink, opts...)
}
