package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/facet/errs"
)

func TestLevelDictEncoder_Write(t *testing.T) {
	encoder := NewLevelDictEncoder()
	defer encoder.Reset()

	err := encoder.Write("red")
	require.NoError(t, err)
	require.Equal(t, 1, encoder.Len())
	require.Equal(t, 4, encoder.Size()) // 1 byte length + 3 bytes data

	data := encoder.Bytes()
	require.Equal(t, byte(3), data[0])
	require.Equal(t, "red", string(data[1:]))
}

func TestLevelDictEncoder_WriteEmptyLabel(t *testing.T) {
	encoder := NewLevelDictEncoder()
	defer encoder.Reset()

	err := encoder.Write("")
	require.NoError(t, err)
	require.Equal(t, 1, encoder.Len())
	require.Equal(t, 1, encoder.Size()) // length byte only

	labels, err := DecodeLevelDict(encoder.Bytes(), 1)
	require.NoError(t, err)
	require.Equal(t, []string{""}, labels)
}

func TestLevelDictEncoder_MaxLength(t *testing.T) {
	encoder := NewLevelDictEncoder()
	defer encoder.Reset()

	maxLabel := strings.Repeat("a", MaxLabelLength)
	require.NoError(t, encoder.Write(maxLabel))
	require.Equal(t, MaxLabelLength+1, encoder.Size())

	tooLong := strings.Repeat("a", MaxLabelLength+1)
	err := encoder.Write(tooLong)
	require.ErrorIs(t, err, errs.ErrLabelTooLong)
	require.Equal(t, 1, encoder.Len()) // failed write does not count
}

func TestLevelDictEncoder_WriteSlice(t *testing.T) {
	encoder := NewLevelDictEncoder()
	defer encoder.Reset()

	labels := []string{"credit card", "cash", "no charge"}
	require.NoError(t, encoder.WriteSlice(labels))
	require.Equal(t, 3, encoder.Len())

	decoded, err := DecodeLevelDict(encoder.Bytes(), 3)
	require.NoError(t, err)
	require.Equal(t, labels, decoded)
}

func TestLevelDictEncoder_WriteSlice_ValidatesBeforeWriting(t *testing.T) {
	encoder := NewLevelDictEncoder()
	defer encoder.Reset()

	labels := []string{"ok", strings.Repeat("x", MaxLabelLength+1)}
	err := encoder.WriteSlice(labels)
	require.ErrorIs(t, err, errs.ErrLabelTooLong)
	require.Equal(t, 0, encoder.Len())
	require.Equal(t, 0, encoder.Size())
}

func TestDecodeLevelDict_Truncated(t *testing.T) {
	encoder := NewLevelDictEncoder()
	defer encoder.Reset()
	require.NoError(t, encoder.WriteSlice([]string{"red", "green"}))

	data := encoder.Bytes()

	// Payload ends mid-label.
	_, err := DecodeLevelDict(data[:len(data)-2], 2)
	require.ErrorIs(t, err, errs.ErrCorruptedPayload)

	// Payload ends before all labels are read.
	_, err = DecodeLevelDict(data[:4], 2)
	require.ErrorIs(t, err, errs.ErrCorruptedPayload)
}

func TestDecodeLevelDict_TrailingBytes(t *testing.T) {
	encoder := NewLevelDictEncoder()
	defer encoder.Reset()
	require.NoError(t, encoder.Write("red"))

	data := append([]byte{}, encoder.Bytes()...)
	data = append(data, 0xFF)

	_, err := DecodeLevelDict(data, 1)
	require.ErrorIs(t, err, errs.ErrCorruptedPayload)
}

func TestDecodeLevelDict_CountExceedsPayload(t *testing.T) {
	// A corrupted header can declare more labels than the payload could
	// possibly hold.
	_, err := DecodeLevelDict([]byte{0x00}, 1<<30)
	require.ErrorIs(t, err, errs.ErrCorruptedPayload)
}

func TestDecodeLevelDict_ZeroCount(t *testing.T) {
	labels, err := DecodeLevelDict(nil, 0)
	require.NoError(t, err)
	require.Empty(t, labels)
}
