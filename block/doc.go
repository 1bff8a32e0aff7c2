// Package block implements the segmenting write path that turns a stream of
// variable-length items into fixed-capacity binary blocks delivered to a
// pluggable sink.
//
// # Overview
//
// A Writer owns exactly one Block at a time and advances a write cursor
// through it. Items are appended back to back; an item that does not fit in
// the remaining space of the current block is split across block boundaries,
// with no upper bound on item size. Whenever a block fills up, or the caller
// forces a Flush, the block is sealed together with its metadata (valid byte
// range, offset of the first item starting inside it, count of items
// starting inside it) and handed to the Sink as a VirtualBlock. The metadata
// lets a downstream reader resynchronize on any block without the previous
// one.
//
// # Basic Usage
//
//	file := block.NewFile()
//	w, _ := block.NewWriter(file, block.WithBlockCapacity(64*1024))
//
//	_ = w.MarkItem()
//	_ = w.PutString("hello")
//
//	_ = w.MarkItem()
//	_ = w.PutUint64(42)
//
//	_ = w.Close()
//
// # Sinks
//
// Three sinks are provided: File retains sealed blocks in memory, ChanSink
// hands them to a channel for pipelined consumption, and StreamSink frames
// each block (with optional compression and an xxHash64 checksum) onto an
// io.Writer. Any type satisfying Sink works; AppendBlock may block, which
// propagates backpressure synchronously to the caller of the writer.
//
// # Concurrency
//
// A Writer is single-producer: all mutating calls must come from one
// goroutine at a time. Once sealed, blocks are immutable and may be read
// concurrently by any number of consumers while the writer keeps producing.
package block
