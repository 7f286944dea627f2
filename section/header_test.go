package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ninepack/errs"
)

func TestNewHeader(t *testing.T) {
	h, err := NewHeader(300)
	require.NoError(t, err)
	require.Equal(t, uint16(300), h.Count)

	h, err = NewHeader(MaxCount)
	require.NoError(t, err)
	require.Equal(t, uint16(65535), h.Count)

	_, err = NewHeader(MaxCount + 1)
	require.ErrorIs(t, err, errs.ErrSequenceTooLong)

	_, err = NewHeader(-1)
	require.ErrorIs(t, err, errs.ErrSequenceTooLong)
}

func TestHeader_BytesIsBigEndian(t *testing.T) {
	tests := []struct {
		count uint16
		want  []byte
	}{
		{0, []byte{0x00, 0x00}},
		{1, []byte{0x00, 0x01}},
		{300, []byte{0x01, 0x2C}},
		{65535, []byte{0xFF, 0xFF}},
	}
	for _, tt := range tests {
		h := Header{Count: tt.count}
		require.Equal(t, tt.want, h.Bytes())
		require.Equal(t, append([]byte{0xAA}, tt.want...), h.Append([]byte{0xAA}))
	}
}

func TestParseHeader(t *testing.T) {
	h, err := ParseHeader([]byte{0x01, 0x2C, 0xFF})
	require.NoError(t, err)
	require.Equal(t, uint16(300), h.Count)
	require.Equal(t, 338, h.PayloadSize())

	_, err = ParseHeader([]byte{0x01})
	require.ErrorIs(t, err, errs.ErrTruncatedHeader)

	_, err = ParseHeader(nil)
	require.ErrorIs(t, err, errs.ErrTruncatedHeader)
}

func TestSizes(t *testing.T) {
	tests := []struct {
		count   int
		payload int
		encoded int
	}{
		{0, 0, 0},
		{1, 2, 4},
		{2, 3, 5},
		{8, 9, 11},
		{9, 11, 13},
		{300, 338, 340},
		{MaxCount, 73727, 73729},
	}
	for _, tt := range tests {
		require.Equal(t, tt.payload, PayloadSize(tt.count), "payload size for %d", tt.count)
		require.Equal(t, tt.encoded, EncodedSize(tt.count), "encoded size for %d", tt.count)
	}
}

func TestCapacity(t *testing.T) {
	require.Equal(t, 0, Capacity(0))
	require.Equal(t, 0, Capacity(1))
	require.Equal(t, 1, Capacity(2))
	require.Equal(t, 2, Capacity(3))
	require.Equal(t, 299, Capacity(337))
	require.Equal(t, 300, Capacity(338))
}
