package facet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/facet/blob"
	"github.com/arloliu/facet/column"
	"github.com/arloliu/facet/format"
)

func TestNew_RoundTripThroughBlob(t *testing.T) {
	col, err := New(
		[]string{"red", "blue", "green", "red", "yellow"},
		column.WithLevels([]string{"red", "green", "blue"}),
	)
	require.NoError(t, err)
	require.Equal(t, []int32{0, 2, 1, 0, column.MissingCode}, col.Codes())

	data, err := Encode(col)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, col.Levels(), decoded.Levels())
	require.Equal(t, col.Codes(), decoded.Codes())
}

func TestNewFromFloats(t *testing.T) {
	col, err := NewFromFloats([]float64{2, 1, 2})
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2"}, col.Levels())
}

func TestEncode_OverrideDefaults(t *testing.T) {
	col, err := New([]string{"a", "b"})
	require.NoError(t, err)

	data, err := Encode(col,
		blob.WithLevelCompression(format.CompressionNone),
		blob.WithCodesCompression(format.CompressionS2),
	)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, col.Codes(), decoded.Codes())
}

func TestColumnID(t *testing.T) {
	id := ColumnID("payment_type")
	require.Equal(t, id, ColumnID("payment_type"))
	require.NotEqual(t, id, ColumnID("rate_code"))
	require.NotZero(t, id)
}
