package encoding

import (
	"fmt"

	"github.com/arloliu/facet/errs"
	"github.com/arloliu/facet/internal/pool"
)

// MaxLabelLength is the maximum byte length of a level label.
// The dictionary payload stores label lengths as uint8 prefixes, so labels
// are capped at 255 bytes.
const MaxLabelLength = 255

// LevelDictEncoder encodes a level dictionary as length-prefixed strings.
//
// Each label is encoded as:
//   - 1 byte: length (0-255)
//   - N bytes: label data (UTF-8)
//
// Labels exceeding MaxLabelLength trigger an error before anything is
// written, so a failed Write leaves the payload unchanged.
type LevelDictEncoder struct {
	buf   *pool.ByteBuffer
	count int
}

// NewLevelDictEncoder creates a new level dictionary encoder backed by a
// pooled byte buffer.
func NewLevelDictEncoder() *LevelDictEncoder {
	return &LevelDictEncoder{
		buf: pool.GetColumnBuffer(),
	}
}

// Write encodes a single level label with its length prefix.
//
// Returns ErrLabelTooLong if the label exceeds MaxLabelLength bytes.
func (e *LevelDictEncoder) Write(label string) error {
	if len(label) > MaxLabelLength {
		return fmt.Errorf("%w: %d bytes exceeds maximum %d", errs.ErrLabelTooLong, len(label), MaxLabelLength)
	}

	e.count++

	e.buf.Grow(1 + len(label))
	e.buf.MustWrite([]byte{uint8(len(label))})
	e.buf.MustWrite([]byte(label))

	return nil
}

// WriteSlice encodes a slice of level labels with a single buffer
// pre-allocation.
//
// All labels are validated before any bytes are written.
func (e *LevelDictEncoder) WriteSlice(labels []string) error {
	totalSize := 0
	for _, label := range labels {
		if len(label) > MaxLabelLength {
			return fmt.Errorf("%w: %d bytes exceeds maximum %d", errs.ErrLabelTooLong, len(label), MaxLabelLength)
		}
		totalSize += 1 + len(label)
	}

	e.buf.Grow(totalSize)

	for _, label := range labels {
		e.buf.MustWrite([]byte{uint8(len(label))})
		e.buf.MustWrite([]byte(label))
		e.count++
	}

	return nil
}

// Bytes returns the encoded dictionary payload.
//
// The returned slice shares the underlying buffer with the encoder.
// Do not modify the returned slice.
func (e *LevelDictEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of labels encoded since the last Reset.
func (e *LevelDictEncoder) Len() int {
	return e.count
}

// Size returns the total size of the encoded payload in bytes.
func (e *LevelDictEncoder) Size() int {
	return e.buf.Len()
}

// Reset clears the encoder state and returns the buffer to the pool.
//
// After calling Reset, the encoder should not be used again.
func (e *LevelDictEncoder) Reset() {
	if e.buf != nil {
		pool.PutColumnBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// DecodeLevelDict decodes count length-prefixed labels from a dictionary
// payload.
//
// Returns ErrCorruptedPayload if the payload ends mid-label or carries
// trailing bytes beyond the declared count.
func DecodeLevelDict(data []byte, count int) ([]string, error) {
	// Each label needs at least its length byte, so a count exceeding the
	// payload size can only come from a corrupted header.
	if count > len(data) {
		return nil, fmt.Errorf("%w: %d labels cannot fit in %d bytes", errs.ErrCorruptedPayload, count, len(data))
	}

	labels := make([]string, 0, count)
	offset := 0

	for i := 0; i < count; i++ {
		if offset >= len(data) {
			return nil, fmt.Errorf("%w: expected %d labels, payload ends after %d", errs.ErrCorruptedPayload, count, i)
		}

		length := int(data[offset])
		offset++

		if offset+length > len(data) {
			return nil, fmt.Errorf("%w: label %d needs %d bytes, %d remain", errs.ErrCorruptedPayload, i, length, len(data)-offset)
		}

		labels = append(labels, string(data[offset:offset+length]))
		offset += length
	}

	if offset != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes after %d labels", errs.ErrCorruptedPayload, len(data)-offset, count)
	}

	return labels, nil
}
