package testutil

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// Tone returns a real cosine of amplitude 1 that completes exactly bin
// periods over length samples. Its spectrum has energy at bin and
// length-bin only.
func Tone(length, bin int) []complex64 {
	out := make([]complex64, length)
	step := 2 * math.Pi * float64(bin) / float64(length)
	for i := range out {
		out[i] = complex(float32(math.Cos(step*float64(i))), 0)
	}
	return out
}

// Sinusoid sums complex exponentials, one per entry of bins, so every listed
// bin carries the same energy and all others are empty.
func Sinusoid(length int, bins ...int) []complex64 {
	out := make([]complex64, length)
	for i := range out {
		var acc complex128
		for _, k := range bins {
			acc += cmplx.Exp(complex(0, 2*math.Pi*float64(k)*float64(i)/float64(length)))
		}
		out[i] = complex64(acc)
	}
	return out
}

// DeterministicNoise returns complex white noise in [-amplitude, amplitude)
// on both parts, reproducible for a given seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []complex64 {
	out := make([]complex64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(float32(re), float32(im))
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []complex64 {
	out := make([]complex64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// NaiveDFT computes the unnormalized forward DFT in float64, O(n^2).
// It is the reference every engine is checked against.
func NaiveDFT(in []complex64) []complex128 {
	n := len(in)
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		var acc complex128
		for j, x := range in {
			angle := -2 * math.Pi * float64(k*j%n) / float64(n)
			acc += complex128(x) * cmplx.Rect(1, angle)
		}
		out[k] = acc
	}
	return out
}
