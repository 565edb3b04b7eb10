package blob

import (
	"fmt"

	"github.com/arloliu/facet/format"
	"github.com/arloliu/facet/internal/options"
)

// EncoderConfig holds the configuration for encoding a categorical blob.
type EncoderConfig struct {
	bigEndian        bool
	levelCompression format.CompressionType
	codesCompression format.CompressionType
}

// newDefaultEncoderConfig returns the default configuration: little-endian
// byte order and no compression for either payload.
func newDefaultEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		bigEndian:        false,
		levelCompression: format.CompressionNone,
		codesCompression: format.CompressionNone,
	}
}

// validate checks the configuration for invalid compression types.
func (c *EncoderConfig) validate() error {
	if !c.levelCompression.IsValid() {
		return fmt.Errorf("invalid level dictionary compression: %v", c.levelCompression)
	}
	if !c.codesCompression.IsValid() {
		return fmt.Errorf("invalid code array compression: %v", c.codesCompression)
	}

	return nil
}

// EncodeOption represents a functional option for configuring blob encoding.
// This is a type alias for the generic Option interface specialized for
// EncoderConfig.
type EncodeOption = options.Option[*EncoderConfig]

// WithLittleEndian sets the encoder to use little-endian byte order for
// header fields. It is the default option.
func WithLittleEndian() EncodeOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.bigEndian = false
	})
}

// WithBigEndian sets the encoder to use big-endian byte order for header
// fields.
func WithBigEndian() EncodeOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.bigEndian = true
	})
}

// WithLevelCompression sets the compression for the level dictionary
// payload.
func WithLevelCompression(compression format.CompressionType) EncodeOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.levelCompression = compression
	})
}

// WithCodesCompression sets the compression for the code array payload.
func WithCodesCompression(compression format.CompressionType) EncodeOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.codesCompression = compression
	})
}
