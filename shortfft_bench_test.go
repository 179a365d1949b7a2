package shortfft

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-shortfft/internal/synth"
)

func BenchmarkTransformInto(b *testing.B) {
	for _, n := range []int{4, 8, 12, 16, 32, 64, 128} {
		b.Run(fmt.Sprintf("size_%d", n), func(b *testing.B) {
			src := randomComplex128(n, int64(n))
			dst := make([]complex128, n)

			// Specialize outside the measured loop.
			if err := TransformInto(dst, src); err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()

			for b.Loop() {
				_ = TransformInto(dst, src)
			}
		})
	}
}

func BenchmarkKernelForward_Complex64(b *testing.B) {
	const n = 64

	k, err := New[complex64](n)
	if err != nil {
		b.Fatal(err)
	}

	src := make([]complex64, n)
	for i := range src {
		src[i] = complex(float32(i), 0)
	}

	dst := make([]complex64, n)

	b.ResetTimer()

	for b.Loop() {
		_ = k.Forward(dst, src)
	}
}

func BenchmarkSynthesize(b *testing.B) {
	for _, n := range []int{16, 60, 128, 210} {
		b.Run(fmt.Sprintf("size_%d", n), func(b *testing.B) {
			for b.Loop() {
				_ = synth.Synthesize(n, synth.Options{})
			}
		})
	}
}
