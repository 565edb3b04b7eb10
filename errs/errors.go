// Package errs defines the sentinel errors shared across facet packages.
//
// All errors are plain sentinel values so callers can match them with
// errors.Is, even when they arrive wrapped with additional context via
// fmt.Errorf("%w: ...").
package errs

import "errors"

// Categorical column contract violations.
var (
	// ErrArityMismatch indicates a label list whose length does not match the
	// level list it is paired with, at construction or relabel time.
	ErrArityMismatch = errors.New("label count does not match level count")

	// ErrDuplicateLevel indicates a level label that already exists in the
	// vocabulary, or a supplied level list containing the same label twice.
	ErrDuplicateLevel = errors.New("duplicate level label")

	// ErrUnsupportedLevelRemoval indicates an attempt to shrink the level
	// vocabulary in place. Dropping or reordering levels requires a full
	// Recode against the original source.
	ErrUnsupportedLevelRemoval = errors.New("in-place level removal is not supported, use Recode")

	// ErrInvalidLevel indicates a level label that can never be matched, such
	// as the missing marker itself.
	ErrInvalidLevel = errors.New("invalid level label")

	// ErrInvalidCode indicates a code value that is neither the missing
	// sentinel nor a valid index into the level vocabulary.
	ErrInvalidCode = errors.New("code out of level range")

	// ErrIndexOutOfRange indicates a row index outside the column bounds.
	ErrIndexOutOfRange = errors.New("row index out of range")
)

// Blob encoding and decoding failures.
var (
	// ErrInvalidHeaderSize indicates blob data shorter than the fixed header.
	ErrInvalidHeaderSize = errors.New("invalid blob header size")

	// ErrInvalidMagicNumber indicates a header whose magic bits do not match
	// the categorical blob format.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidHeaderFlags indicates a header flag word with bad reserved
	// bits or an unsupported compression type.
	ErrInvalidHeaderFlags = errors.New("invalid header flags")

	// ErrInvalidPayloadOffset indicates a payload offset pointing outside the
	// blob data.
	ErrInvalidPayloadOffset = errors.New("invalid payload offset")

	// ErrChecksumMismatch indicates payload bytes that do not hash to the
	// checksum recorded in the header.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrLabelTooLong indicates a level label exceeding the 255-byte limit of
	// the uint8 length-prefix encoding.
	ErrLabelTooLong = errors.New("level label exceeds maximum length")

	// ErrCorruptedPayload indicates a payload that cannot be decoded back
	// into levels or codes.
	ErrCorruptedPayload = errors.New("corrupted payload")
)
