package fftwrap

import (
	"testing"

	"github.com/cwbudde/algo-fftwrap/internal/testutil"
)

func BenchmarkForward(b *testing.B) {
	for _, backend := range Backends() {
		b.Run(backend.String(), func(b *testing.B) {
			fwd, err := NewForward(backend)
			if err != nil {
				b.Fatalf("NewForward: %v", err)
			}
			defer fwd.Close()

			src := testutil.DeterministicNoise(1, 1.0, WindowLength)
			dst := make([]complex64, WindowLength)
			b.SetBytes(WindowLength * 8) // complex64 = 8 bytes
			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				if err := fwd.Transform(dst, src); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	for _, backend := range Backends() {
		b.Run(backend.String(), func(b *testing.B) {
			inv, err := NewInverse(backend)
			if err != nil {
				b.Fatalf("NewInverse: %v", err)
			}
			defer inv.Close()

			src := testutil.DeterministicNoise(2, 1.0, WindowLength)
			dst := make([]complex64, WindowLength)
			b.SetBytes(WindowLength * 8)
			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				if err := inv.Transform(dst, src); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkNewClose(b *testing.B) {
	for _, backend := range Backends() {
		b.Run(backend.String(), func(b *testing.B) {
			b.ReportAllocs()

			for range b.N {
				fwd, err := NewForward(backend)
				if err != nil {
					b.Fatal(err)
				}
				_ = fwd.Close()
			}
		})
	}
}
