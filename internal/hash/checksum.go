// Package hash wraps the xxHash64 functions used for blob integrity checks.
package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of the given payload bytes.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// ID computes the xxHash64 of the given label string.
func ID(label string) uint64 {
	return xxhash.Sum64String(label)
}
