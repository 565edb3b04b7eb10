// Package blob implements the binary serialization of a categorical column.
//
// A categorical blob is a self-describing byte encoding designed for
// handing encoded columns between processes or storing them alongside other
// column data. It is not a file format: the package produces and consumes
// byte slices and performs no I/O.
//
// # Layout
//
// A blob consists of a fixed 32-byte header followed by two payload
// sections:
//
//	+--------+------------------+-------------+
//	| header | level dictionary | code array  |
//	+--------+------------------+-------------+
//
// The level dictionary stores each label as a uint8 length prefix plus its
// UTF-8 bytes; the code array stores one zigzag varint per row. Each payload
// can be compressed independently (None, Zstd, S2 or LZ4), recorded in the
// header flags. The header also carries an xxHash64 checksum of the payload
// bytes, verified on decode.
//
// # Usage
//
//	data, err := blob.Encode(col,
//	    blob.WithLevelCompression(format.CompressionZstd),
//	)
//	...
//	col, err := blob.Decode(data)
package blob
