package compress

// ZstdCompressor compresses block payloads with Zstandard. Best compression
// ratio of the built-in codecs; the right choice when blocks travel over
// constrained links or land in cold storage.
//
// The implementation is selected at build time: a cgo binding when cgo is
// available, and a pure Go implementation otherwise. Both produce standard
// Zstandard frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
