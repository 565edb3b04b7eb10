package section

import (
	"github.com/arloliu/facet/errs"
)

// Header represents the fixed-size header section at the start of a
// categorical blob.
type Header struct {
	// RowCount is the number of rows (codes) stored in the blob.
	RowCount uint32 // byte offset 4-7
	// LevelCount is the number of labels in the level dictionary.
	LevelCount uint32 // byte offset 8-11
	// LevelsPayloadOffset is the byte offset to the start of the level
	// dictionary payload. Always HeaderSize in version 1.
	LevelsPayloadOffset uint32 // byte offset 12-15
	// CodesPayloadOffset is the byte offset to the start of the code array
	// payload. It records the offset after the compressed (if any) level
	// dictionary payload.
	CodesPayloadOffset uint32 // byte offset 16-19
	// Checksum is the xxHash64 of the payload bytes (both sections, as
	// stored). The decoder rejects blobs whose payloads do not hash to it.
	Checksum uint64 // byte offset 20-27

	// Flag is a packed field for endianness, compression types and the
	// magic number.
	Flag Flag // byte offset 0-3
}

// NewHeader creates a new Header with default flags. Counts, offsets and
// the checksum are filled in when the encoder finishes.
func NewHeader() *Header {
	return &Header{
		Flag:                NewFlag(),
		LevelsPayloadOffset: LevelsOffset,
	}
}

// Parse parses the header from a byte slice.
//
// Returns ErrInvalidHeaderSize if data is shorter than HeaderSize, or flag
// validation errors.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// The flag word is always little-endian on the wire so the decoder can
	// read the endianness bit before choosing an engine.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.LevelCompression = data[2]
	h.Flag.CodesCompression = data[3]

	engine := h.Flag.GetEndianEngine()

	h.RowCount = engine.Uint32(data[4:8])
	h.LevelCount = engine.Uint32(data[8:12])
	h.LevelsPayloadOffset = engine.Uint32(data[12:16])
	h.CodesPayloadOffset = engine.Uint32(data[16:20])
	h.Checksum = engine.Uint64(data[20:28])

	return h.Flag.Validate()
}

// Bytes serializes the Header into a HeaderSize byte slice.
func (h *Header) Bytes() []byte {
	buf := make([]byte, 0, HeaderSize)

	buf = append(buf, byte(h.Flag.Options), byte(h.Flag.Options>>8))
	buf = append(buf, h.Flag.LevelCompression, h.Flag.CodesCompression)

	engine := h.Flag.GetEndianEngine()
	buf = engine.AppendUint32(buf, h.RowCount)
	buf = engine.AppendUint32(buf, h.LevelCount)
	buf = engine.AppendUint32(buf, h.LevelsPayloadOffset)
	buf = engine.AppendUint32(buf, h.CodesPayloadOffset)
	buf = engine.AppendUint64(buf, h.Checksum)

	// Reserved bytes 28-31, zero in version 1.
	buf = append(buf, 0, 0, 0, 0)

	return buf
}
