package compress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/facet/format"
)

func testPayload() []byte {
	// Mimic a level dictionary payload: repeated short labels with length
	// prefixes, which should compress well.
	var buf bytes.Buffer
	labels := []string{"credit card", "cash", "no charge", "dispute", "unknown"}
	for i := 0; i < 50; i++ {
		for _, label := range labels {
			buf.WriteByte(byte(len(label)))
			buf.WriteString(label)
		}
	}

	return buf.Bytes()
}

func TestCreateCodec(t *testing.T) {
	for _, typ := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := CreateCodec(typ, "levels")
		require.NoError(t, err, "type %s", typ)
		require.NotNil(t, codec)
	}
}

func TestCreateCodec_Invalid(t *testing.T) {
	_, err := CreateCodec(format.CompressionType(0xFF), "codes")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid codes compression")
}

func TestGetCodec(t *testing.T) {
	codec, err := GetCodec(format.CompressionS2)
	require.NoError(t, err)
	require.NotNil(t, codec)

	_, err = GetCodec(format.CompressionType(0))
	require.Error(t, err)
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := testPayload()

	tests := []struct {
		name  string
		codec Codec
	}{
		{"NoOp", NewNoOpCompressor()},
		{"Zstd", NewZstdCompressor()},
		{"S2", NewS2Compressor()},
		{"LZ4", NewLZ4Compressor()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := tt.codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := tt.codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, decompressed)
		})
	}
}

func TestCodecs_CompressRatio(t *testing.T) {
	payload := testPayload()

	for _, tt := range []struct {
		name  string
		codec Codec
	}{
		{"Zstd", NewZstdCompressor()},
		{"S2", NewS2Compressor()},
		{"LZ4", NewLZ4Compressor()},
	} {
		compressed, err := tt.codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), "%s should shrink repetitive payload", tt.name)
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, codec := range []Codec{
		NewNoOpCompressor(),
		NewS2Compressor(),
		NewLZ4Compressor(),
	} {
		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, decompressed)
	}
}

func TestLZ4_AdaptiveDecompressBuffer(t *testing.T) {
	// Highly compressible input forces the decompress buffer to grow past
	// the initial 4x guess.
	payload := []byte(strings.Repeat("a", 1024*64))

	codec := NewLZ4Compressor()
	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Less(t, len(compressed)*4, len(payload))

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, decompressed)
}

func TestDecompress_CorruptedData(t *testing.T) {
	corrupted := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03}

	for _, tt := range []struct {
		name  string
		codec Codec
	}{
		{"Zstd", NewZstdCompressor()},
		{"S2", NewS2Compressor()},
	} {
		_, err := tt.codec.Decompress(corrupted)
		require.Error(t, err, "%s should reject corrupted data", tt.name)
	}
}
