// Package section defines the binary layout of the categorical blob header.
//
// A categorical blob starts with a fixed 32-byte header followed by two
// payload sections: the level dictionary and the code array. The header
// records the byte order, per-payload compression types, row and level
// counts, payload offsets and an xxHash64 checksum of the payload bytes.
package section
