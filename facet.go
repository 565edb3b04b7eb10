// Package facet provides an ordered-level categorical column encoder with a
// compact binary serialization.
//
// A categorical column restricts raw values (strings or floats) to a fixed,
// ordered vocabulary of level labels. Each row is stored as a small integer
// code into the vocabulary, or a missing sentinel when the value matches no
// declared level. Declared levels are reportable even with zero occurrences,
// which is the central value of explicit level declaration over inferred
// levels.
//
// # Basic Usage
//
// Building and querying a column:
//
//	col, _ := facet.New(
//	    []string{"credit card", "cash", "credit card"},
//	    column.WithLevels([]string{"credit card", "cash", "no charge", "dispute"}),
//	)
//	col.ValueCounts(true)
//
// Serializing for transport or storage:
//
//	data, _ := facet.Encode(col)
//	restored, _ := facet.Decode(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the column and
// blob packages, simplifying the most common use cases. For fine-grained
// control over construction options and payload compression, use those
// packages directly.
package facet

import (
	"github.com/arloliu/facet/blob"
	"github.com/arloliu/facet/column"
	"github.com/arloliu/facet/format"
	"github.com/arloliu/facet/internal/hash"
)

var defaultEncodeOptions = []blob.EncodeOption{
	blob.WithLittleEndian(),
	blob.WithLevelCompression(format.CompressionZstd),
	blob.WithCodesCompression(format.CompressionNone),
}

// New builds a categorical column from a string source. The empty string is
// the missing marker. See column.New for the full option set and failure
// semantics.
func New(source []string, opts ...column.Option) (*column.Categorical, error) {
	return column.New(source, opts...)
}

// NewFromFloats builds a categorical column from a float source. NaN is the
// missing marker and inferred levels sort numerically. See
// column.NewFromFloats.
func NewFromFloats(source []float64, opts ...column.Option) (*column.Categorical, error) {
	return column.NewFromFloats(source, opts...)
}

// Encode serializes a column into a categorical blob using the default
// settings: little-endian header fields, Zstd-compressed level dictionary
// and uncompressed code array. Additional options override the defaults.
func Encode(col *column.Categorical, opts ...blob.EncodeOption) ([]byte, error) {
	allOpts := make([]blob.EncodeOption, 0, len(defaultEncodeOptions)+len(opts))
	allOpts = append(allOpts, defaultEncodeOptions...)
	allOpts = append(allOpts, opts...)

	return blob.Encode(col, allOpts...)
}

// Decode deserializes a categorical blob produced by Encode back into a
// column.
func Decode(data []byte) (*column.Categorical, error) {
	return blob.Decode(data)
}

// ColumnID converts a column name to its 64-bit xxHash64 identifier.
//
// Containers that store many encoded columns can key them by this hash for
// O(1) lookups with fixed-size keys. The hash is deterministic, so the same
// name always maps to the same identifier across processes.
func ColumnID(name string) uint64 {
	return hash.ID(name)
}
