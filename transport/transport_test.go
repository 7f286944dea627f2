package transport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ninepack/errs"
	"github.com/arloliu/ninepack/format"
)

func TestGet(t *testing.T) {
	for _, te := range format.TextEncodings() {
		codec, err := Get(te)
		require.NoError(t, err, te.String())
		require.Equal(t, te, codec.Type())
	}

	_, err := Get(format.TextEncoding(0))
	require.ErrorIs(t, err, errs.ErrUnknownTextEncoding)

	require.Equal(t, format.TextBase64, Default().Type())
}

func TestCodec_KnownOutputs(t *testing.T) {
	// encoded form of the single value 5
	data := []byte{0x00, 0x01, 0x02, 0x80}

	tests := []struct {
		te   format.TextEncoding
		want string
	}{
		{format.TextBase64, "AAECgA=="},
		{format.TextBase64URL, "AAECgA"},
		{format.TextHex, "00010280"},
	}
	for _, tt := range tests {
		t.Run(tt.te.String(), func(t *testing.T) {
			codec, err := Get(tt.te)
			require.NoError(t, err)
			require.Equal(t, tt.want, codec.EncodeToString(data))
		})
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"single value":       {0x00, 0x01, 0x02, 0x80},
		"leading zero bytes": {0x00, 0x00, 0x00, 0x01},
		"all ones":           bytes.Repeat([]byte{0xFF}, 37),
		"mixed":              {0x00, 0x02, 0xFF, 0x80, 0x00},
	}

	for _, te := range format.TextEncodings() {
		codec, err := Get(te)
		require.NoError(t, err)

		for name, data := range inputs {
			t.Run(te.String()+"/"+name, func(t *testing.T) {
				text := codec.EncodeToString(data)
				require.NotEmpty(t, text)

				decoded, err := codec.DecodeString(text)
				require.NoError(t, err)
				require.Equal(t, data, decoded)
			})
		}
	}
}

func TestCodec_Empty(t *testing.T) {
	for _, te := range format.TextEncodings() {
		codec, err := Get(te)
		require.NoError(t, err)

		require.Empty(t, codec.EncodeToString(nil), te.String())
		require.Empty(t, codec.EncodeToString([]byte{}), te.String())

		decoded, err := codec.DecodeString("")
		require.NoError(t, err, te.String())
		require.NotNil(t, decoded)
		require.Empty(t, decoded)
	}
}

func TestCodec_InvalidText(t *testing.T) {
	tests := []struct {
		te   format.TextEncoding
		text string
	}{
		{format.TextBase64, "!!!"},
		{format.TextBase64URL, "a+b/"},
		{format.TextBase32, "18"},
		{format.TextBase58, "0OIl"},
		{format.TextHex, "zz"},
	}
	for _, tt := range tests {
		t.Run(tt.te.String(), func(t *testing.T) {
			codec, err := Get(tt.te)
			require.NoError(t, err)

			_, err = codec.DecodeString(tt.text)
			require.ErrorIs(t, err, errs.ErrInvalidText)
			require.Contains(t, err.Error(), tt.te.String())
		})
	}
}
