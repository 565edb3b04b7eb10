package encoding

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/facet/errs"
	"github.com/arloliu/facet/internal/pool"
)

// CodeEncoder encodes a code array as zigzag varints.
//
// Zigzag encoding maps small signed values to small unsigned values (-1
// becomes 1, 0 stays 0, 1 becomes 2), so the missing sentinel and the low
// level indices that dominate categorical data each take a single byte.
type CodeEncoder struct {
	buf   *pool.ByteBuffer
	count int
}

// NewCodeEncoder creates a new code array encoder backed by a pooled byte
// buffer.
func NewCodeEncoder() *CodeEncoder {
	return &CodeEncoder{
		buf: pool.GetColumnBuffer(),
	}
}

// Write encodes a single code as a zigzag varint.
func (e *CodeEncoder) Write(code int32) {
	e.count++

	val := int64(code)
	// Zigzag encoding: converts signed to unsigned.
	uval := uint64(val<<1) ^ uint64(val>>63) //nolint:gosec

	for uval >= 0x80 {
		e.buf.MustWrite([]byte{byte(uval) | 0x80})
		uval >>= 7
	}
	e.buf.MustWrite([]byte{byte(uval)})
}

// WriteSlice encodes a slice of codes with a single buffer pre-allocation.
func (e *CodeEncoder) WriteSlice(codes []int32) {
	// Level indices fit in one or two varint bytes in practice; pre-grow
	// for the common single-byte case and let MustWrite handle the rest.
	e.buf.Grow(len(codes))

	for _, code := range codes {
		e.Write(code)
	}
}

// Bytes returns the encoded code payload.
//
// The returned slice shares the underlying buffer with the encoder.
// Do not modify the returned slice.
func (e *CodeEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of codes encoded since the last Reset.
func (e *CodeEncoder) Len() int {
	return e.count
}

// Size returns the total size of the encoded payload in bytes.
func (e *CodeEncoder) Size() int {
	return e.buf.Len()
}

// Reset clears the encoder state and returns the buffer to the pool.
//
// After calling Reset, the encoder should not be used again.
func (e *CodeEncoder) Reset() {
	if e.buf != nil {
		pool.PutColumnBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// DecodeCodes decodes count zigzag varint codes from a code payload.
//
// Returns ErrCorruptedPayload if the payload ends mid-varint, carries
// trailing bytes, or contains a value outside the int32 code range.
func DecodeCodes(data []byte, count int) ([]int32, error) {
	// Each varint takes at least one byte, so a count exceeding the payload
	// size can only come from a corrupted header.
	if count > len(data) {
		return nil, fmt.Errorf("%w: %d codes cannot fit in %d bytes", errs.ErrCorruptedPayload, count, len(data))
	}

	codes := make([]int32, 0, count)
	offset := 0

	for i := 0; i < count; i++ {
		val, n := binary.Varint(data[offset:])
		if n <= 0 {
			return nil, fmt.Errorf("%w: invalid varint for code %d", errs.ErrCorruptedPayload, i)
		}
		if val < math.MinInt32 || val > math.MaxInt32 {
			return nil, fmt.Errorf("%w: code %d value %d overflows int32", errs.ErrCorruptedPayload, i, val)
		}

		codes = append(codes, int32(val))
		offset += n
	}

	if offset != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes after %d codes", errs.ErrCorruptedPayload, len(data)-offset, count)
	}

	return codes, nil
}
