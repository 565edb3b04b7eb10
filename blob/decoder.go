package blob

import (
	"fmt"

	"github.com/arloliu/facet/column"
	"github.com/arloliu/facet/compress"
	"github.com/arloliu/facet/encoding"
	"github.com/arloliu/facet/errs"
	"github.com/arloliu/facet/internal/hash"
	"github.com/arloliu/facet/section"
)

// Decode deserializes a categorical blob back into a column.
//
// The header is validated (size, magic number, flags, payload offsets), the
// payload checksum is verified, and the decoded vocabulary and code array
// are revalidated through column.FromParts so a corrupted blob can never
// produce a column with broken invariants.
func Decode(data []byte) (*column.Categorical, error) {
	var header section.Header
	if err := header.Parse(data); err != nil {
		return nil, err
	}

	levelsOffset := int(header.LevelsPayloadOffset)
	codesOffset := int(header.CodesPayloadOffset)

	if levelsOffset != section.LevelsOffset || codesOffset < levelsOffset || codesOffset > len(data) {
		return nil, fmt.Errorf("%w: levels at %d, codes at %d, blob size %d",
			errs.ErrInvalidPayloadOffset, levelsOffset, codesOffset, len(data))
	}

	payload := data[levelsOffset:]
	if checksum := hash.Checksum(payload); checksum != header.Checksum {
		return nil, fmt.Errorf("%w: computed %x, header records %x",
			errs.ErrChecksumMismatch, checksum, header.Checksum)
	}

	levelCodec, err := compress.CreateCodec(header.Flag.GetLevelCompression(), "level dictionary")
	if err != nil {
		return nil, err
	}
	rawLevels, err := levelCodec.Decompress(data[levelsOffset:codesOffset])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress level dictionary: %w", err)
	}

	levels, err := encoding.DecodeLevelDict(rawLevels, int(header.LevelCount))
	if err != nil {
		return nil, err
	}

	codesCodec, err := compress.CreateCodec(header.Flag.GetCodesCompression(), "code array")
	if err != nil {
		return nil, err
	}
	rawCodes, err := codesCodec.Decompress(data[codesOffset:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress code array: %w", err)
	}

	codes, err := encoding.DecodeCodes(rawCodes, int(header.RowCount))
	if err != nil {
		return nil, err
	}

	return column.FromParts(levels, codes)
}
