// Package compress provides compression and decompression codecs for sealed
// block payloads.
//
// Compression is applied by transport sinks after a block is sealed: the
// segmenting writer produces raw block bytes, and a framing sink may run the
// valid region of each block through a Codec before putting it on the wire.
// The writer itself never compresses.
//
// # Supported Algorithms
//
//   - None: no compression (fastest, largest)
//   - Zstd: excellent compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fast decompression, moderate compression
//
// Zstd has two implementations selected at build time: a cgo binding
// (valyala/gozstd) when cgo is available, and a pure Go fallback
// (klauspost/compress/zstd) otherwise. Both produce standard Zstandard
// frames and interoperate freely.
//
// Use GetCodec or CreateCodec to obtain a Codec for a format.CompressionType:
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	payload, err := codec.Compress(blockBytes)
//
// All codecs are stateless values safe for concurrent use; implementations
// that benefit from reusable state keep it in internal sync.Pools.
package compress
