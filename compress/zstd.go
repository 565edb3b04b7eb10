package compress

// ZstdCompressor provides Zstandard compression for categorical blob
// payloads.
//
// Zstd favors compression ratio over speed, which suits level dictionaries
// with long or repetitive labels and cold-storage of encoded columns.
//
// The Compress and Decompress methods are provided by one of two build-tag
// selected implementations: a cgo binding when cgo is available, or a pure
// Go fallback otherwise. Both produce interchangeable Zstd frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
