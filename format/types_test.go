package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ninepack/errs"
)

func TestParseTextEncoding(t *testing.T) {
	for _, te := range TextEncodings() {
		t.Run(te.String(), func(t *testing.T) {
			got, err := ParseTextEncoding(te.String())
			require.NoError(t, err)
			require.Equal(t, te, got)
		})
	}

	got, err := ParseTextEncoding(" Base64URL ")
	require.NoError(t, err)
	require.Equal(t, TextBase64URL, got)

	_, err = ParseTextEncoding("uuencode")
	require.ErrorIs(t, err, errs.ErrUnknownTextEncoding)
}

func TestParseCompressionType(t *testing.T) {
	tests := []struct {
		name string
		want CompressionType
	}{
		{"none", CompressionNone},
		{"ZSTD", CompressionZstd},
		{"s2", CompressionS2},
		{"lz4", CompressionLZ4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCompressionType(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := ParseCompressionType("brotli")
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestModeStrings(t *testing.T) {
	require.Equal(t, "Truncate", RangeTruncate.String())
	require.Equal(t, "Strict", RangeStrict.String())
	require.Equal(t, "Lenient", PayloadLenient.String())
	require.Equal(t, "Strict", PayloadStrict.String())
	require.Equal(t, "Unknown", RangeMode(0).String())
	require.Equal(t, "unknown", TextEncoding(0).String())
	require.Equal(t, "Unknown", CompressionType(9).String())
}
