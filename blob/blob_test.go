package blob

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ninepack/errs"
)

func TestParse(t *testing.T) {
	t.Run("empty buffer", func(t *testing.T) {
		b, err := Parse(nil)
		require.NoError(t, err)
		require.True(t, b.IsEmpty())
		require.Equal(t, 0, b.Count())
		require.Equal(t, 0, b.Available())
		require.False(t, b.IsTruncated())
		require.Empty(t, b.Values())
	})

	t.Run("one byte", func(t *testing.T) {
		_, err := Parse([]byte{0x01})
		require.ErrorIs(t, err, errs.ErrTruncatedHeader)
	})

	t.Run("references input", func(t *testing.T) {
		data := []byte{0x00, 0x01, 0x02, 0x80}
		b, err := Parse(data)
		require.NoError(t, err)
		require.Equal(t, data, b.Bytes())
		require.Equal(t, []byte{0x02, 0x80}, b.Payload())
		require.Equal(t, 4, b.Size())
	})
}

func TestBlob_Accessors(t *testing.T) {
	b, err := Encode([]uint16{5, 511, 0, 42})
	require.NoError(t, err)

	require.Equal(t, 4, b.Count())
	require.Equal(t, 4, b.Available())
	require.False(t, b.IsTruncated())
	require.Len(t, b.Payload(), 5)

	var iterated []uint16
	for v := range b.All() {
		iterated = append(iterated, v)
	}
	require.Equal(t, []uint16{5, 511, 0, 42}, iterated)

	for i, want := range []uint16{5, 511, 0, 42} {
		got, ok := b.At(i)
		require.True(t, ok)
		require.Equal(t, want, got)
	}
	_, ok := b.At(4)
	require.False(t, ok)

	require.Equal(t, []uint16{7, 5, 511, 0, 42}, b.AppendValues([]uint16{7}))
}

func TestBlob_Truncated(t *testing.T) {
	full, err := Encode([]uint16{1, 2, 3})
	require.NoError(t, err)

	b, err := Parse(full.Bytes()[:full.Size()-1])
	require.NoError(t, err)
	require.Equal(t, 3, b.Count())
	require.Equal(t, 2, b.Available())
	require.True(t, b.IsTruncated())
	require.Equal(t, []uint16{1, 2}, b.Values())
}

func TestBlob_Fingerprint(t *testing.T) {
	a, err := Encode([]uint16{1, 2, 3})
	require.NoError(t, err)
	b, err := Encode([]uint16{3, 2, 1})
	require.NoError(t, err)

	require.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	parsed, err := Parse(a.Bytes())
	require.NoError(t, err)
	require.Equal(t, a.Fingerprint(), parsed.Fingerprint())
}
