package section

import "github.com/arloliu/facet/format"

const (
	// Bit masks for the packed options word.
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicCategoricalV1Opt is the version 1 magic number for the
	// categorical blob format (bits 4-15).
	MagicCategoricalV1Opt = 0xFC10
)

// offset and section sizes in the blob
const (
	HeaderSize   = 32         // fixed header size in bytes
	LevelsOffset = HeaderSize // byte offset where the level dictionary payload starts
)

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}
