// Package compress provides the compression codecs used for categorical blob
// payloads.
//
// A categorical blob carries two payload sections, the level dictionary and
// the code array, and each can be compressed independently. The compression
// type is recorded in the blob header so the decoder can pick the matching
// codec.
//
// Supported algorithms:
//   - None: pass-through, for payloads too small to benefit
//   - Zstd: best ratio, for archival of wide dictionaries
//   - S2: fast compression with a reasonable ratio
//   - LZ4: fastest decompression
//
// The Zstd codec has two implementations selected by build tags: a cgo
// binding (valyala/gozstd) when cgo is available, and a pure Go fallback
// (klauspost/compress/zstd) otherwise.
package compress
