package encoding

import (
	"math/rand"
	"slices"
	"testing"
)

func BenchmarkBitPackEncoder_WriteSlice(b *testing.B) {
	for _, n := range []int{10, 300, 10000} {
		values := randomValues(rand.New(rand.NewSource(int64(n))), n)
		b.Run(benchName(n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				encoder := NewBitPackEncoder()
				encoder.WriteSlice(values)
				_ = encoder.Bytes()
				encoder.Finish()
			}
		})
	}
}

func BenchmarkBitPackDecoder_All(b *testing.B) {
	for _, n := range []int{10, 300, 10000} {
		values := randomValues(rand.New(rand.NewSource(int64(n))), n)
		encoder := NewBitPackEncoder()
		encoder.WriteSlice(values)
		payload := slices.Clone(encoder.Bytes())
		encoder.Finish()

		decoder := NewBitPackDecoder()
		b.Run(benchName(n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				for v := range decoder.All(payload, n) {
					_ = v
				}
			}
		})
	}
}

func BenchmarkBitPackDecoder_At(b *testing.B) {
	values := randomValues(rand.New(rand.NewSource(3)), 300)
	payload := referencePack(values)
	decoder := NewBitPackDecoder()

	b.ResetTimer()
	for b.Loop() {
		for i := range values {
			_, _ = decoder.At(payload, len(values), i)
		}
	}
}

func benchName(n int) string {
	switch {
	case n >= 10000:
		return "large"
	case n >= 300:
		return "medium"
	default:
		return "small"
	}
}
