package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"single value", []byte{0x00, 0x01, 0x02, 0x80}},
		{"two values", []byte{0x00, 0x02, 0xFF, 0x80, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, xxhash.Sum64(tt.data), Sum(tt.data))
		})
	}

	assert.Equal(t, uint64(0xef46db3751d8e999), Sum(nil))
	assert.NotEqual(t, Sum([]byte{0x00, 0x01, 0x02, 0x80}), Sum([]byte{0x00, 0x01, 0x02, 0x00}))
}

func BenchmarkSum(b *testing.B) {
	data := make([]byte, 340)
	for i := range data {
		data[i] = byte(i)
	}

	b.ResetTimer()
	for b.Loop() {
		Sum(data)
	}
}
