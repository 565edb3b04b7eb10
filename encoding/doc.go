// Package encoding implements the payload codecs for categorical blobs.
//
// Two payload encodings are provided:
//
//   - Level dictionary: each level label is stored as a uint8 length prefix
//     followed by its UTF-8 bytes. Labels are capped at 255 bytes.
//   - Code array: each row code is stored as a zigzag varint, so the missing
//     sentinel (-1) and small level indices both take a single byte.
//
// Both encoders write into pooled byte buffers; call Reset to return the
// buffer to the pool when done.
package encoding
