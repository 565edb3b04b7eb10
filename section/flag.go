package section

import (
	"github.com/arloliu/facet/endian"
	"github.com/arloliu/facet/errs"
	"github.com/arloliu/facet/format"
)

// Flag represents the packed flag field at the start of the categorical
// blob header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 1-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number identifying the blob format:
	//   - 0xFC10: Categorical column blob format v1
	Options uint16

	// LevelCompression indicates the compression used for the level
	// dictionary payload.
	// Valid values: CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4
	LevelCompression uint8

	// CodesCompression indicates the compression used for the code array
	// payload.
	// Valid values: CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4
	CodesCompression uint8
}

// NewFlag creates a new Flag with default settings: little-endian byte order
// and no compression for either payload.
func NewFlag() Flag {
	flag := Flag{
		Options:          MagicCategoricalV1Opt,
		LevelCompression: uint8(format.CompressionNone),
		CodesCompression: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the blob payload is little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the blob payload is big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the endian engine matching the endianness bit.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number in the Options field is valid.
func (f Flag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicCategoricalV1Opt
}

// SetLevelCompression sets the level dictionary compression type.
func (f *Flag) SetLevelCompression(compression format.CompressionType) {
	f.LevelCompression = uint8(compression)
}

// GetLevelCompression returns the level dictionary compression type.
func (f Flag) GetLevelCompression() format.CompressionType {
	return format.CompressionType(f.LevelCompression)
}

// SetCodesCompression sets the code array compression type.
func (f *Flag) SetCodesCompression(compression format.CompressionType) {
	f.CodesCompression = uint8(compression)
}

// GetCodesCompression returns the code array compression type.
func (f Flag) GetCodesCompression() format.CompressionType {
	return format.CompressionType(f.CodesCompression)
}

// Validate checks if the flag field contains valid values.
func (f Flag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	if (f.Options & ReservedBitsMask) != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validCompressions[f.LevelCompression]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validCompressions[f.CodesCompression]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
