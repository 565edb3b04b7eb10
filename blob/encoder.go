package blob

import (
	"fmt"

	"github.com/arloliu/facet/column"
	"github.com/arloliu/facet/compress"
	"github.com/arloliu/facet/encoding"
	"github.com/arloliu/facet/internal/hash"
	"github.com/arloliu/facet/internal/options"
	"github.com/arloliu/facet/section"
)

// Encode serializes a categorical column into a self-describing blob.
//
// The level dictionary and code array payloads are encoded and compressed
// independently according to the options, and the header records an
// xxHash64 checksum over the payload bytes as stored.
//
// Returns ErrLabelTooLong if any level label exceeds the 255-byte limit of
// the dictionary encoding.
func Encode(col *column.Categorical, opts ...EncodeOption) ([]byte, error) {
	cfg := newDefaultEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	levels := col.Levels()
	codes := col.Codes()

	dictEncoder := encoding.NewLevelDictEncoder()
	defer dictEncoder.Reset()
	if err := dictEncoder.WriteSlice(levels); err != nil {
		return nil, err
	}

	levelCodec, err := compress.CreateCodec(cfg.levelCompression, "level dictionary")
	if err != nil {
		return nil, err
	}
	levelPayload, err := levelCodec.Compress(dictEncoder.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress level dictionary: %w", err)
	}

	codeEncoder := encoding.NewCodeEncoder()
	defer codeEncoder.Reset()
	codeEncoder.WriteSlice(codes)

	codesCodec, err := compress.CreateCodec(cfg.codesCompression, "code array")
	if err != nil {
		return nil, err
	}
	codesPayload, err := codesCodec.Compress(codeEncoder.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress code array: %w", err)
	}

	payload := make([]byte, 0, len(levelPayload)+len(codesPayload))
	payload = append(payload, levelPayload...)
	payload = append(payload, codesPayload...)

	header := section.NewHeader()
	if cfg.bigEndian {
		header.Flag.WithBigEndian()
	}
	header.Flag.SetLevelCompression(cfg.levelCompression)
	header.Flag.SetCodesCompression(cfg.codesCompression)
	header.RowCount = uint32(len(codes))    //nolint:gosec
	header.LevelCount = uint32(len(levels)) //nolint:gosec
	header.LevelsPayloadOffset = section.LevelsOffset
	header.CodesPayloadOffset = section.LevelsOffset + uint32(len(levelPayload)) //nolint:gosec
	header.Checksum = hash.Checksum(payload)

	result := make([]byte, 0, section.HeaderSize+len(payload))
	result = append(result, header.Bytes()...)
	result = append(result, payload...)

	return result, nil
}
