package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

func split(in []complex64) (re, im []float64, buf *scratchBuf) {
	re, im, buf = getScratch(len(in))
	for i, c := range in {
		re[i] = float64(real(c))
		im[i] = float64(imag(c))
	}
	return re, im, buf
}

// Magnitude returns |X[k]| for each bin.
//
// Bins are widened to float64 and handed to the SIMD magnitude kernel.
// Scratch buffers are pooled, so in steady state this allocates only the
// output slice.
func Magnitude(in []complex64) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := split(in)
	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// MagnitudeFromParts computes sqrt(re[k]^2 + im[k]^2) into dst.
// All three slices must have the same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// Power returns |X[k]|^2 for each bin.
func Power(in []complex64) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := split(in)
	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// PowerFromParts computes re[k]^2 + im[k]^2 into dst.
func PowerFromParts(dst, re, im []float64) {
	vecmath.Power(dst, re, im)
}

// Phase returns arg(X[k]) in radians for each bin.
func Phase(in []complex64) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(complex128(c))
	}
	return out
}

// DominantBins returns the indices of the count largest values of mag,
// largest first. Equal values keep ascending index order.
func DominantBins(mag []float64, count int) []int {
	if count <= 0 || len(mag) == 0 {
		return nil
	}
	if count > len(mag) {
		count = len(mag)
	}

	idx := make([]int, len(mag))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return mag[idx[a]] > mag[idx[b]]
	})
	return idx[:count]
}

// Flatness returns the spectral flatness of mag: the geometric mean divided
// by the arithmetic mean. A flat spectrum gives 1; any empty bin gives 0.
func Flatness(mag []float64) (float64, error) {
	if len(mag) == 0 {
		return 0, fmt.Errorf("flatness requires a non-empty spectrum")
	}

	logSum := 0.0
	sum := 0.0
	for i, v := range mag {
		if v < 0 || math.IsNaN(v) {
			return 0, fmt.Errorf("flatness magnitude must be >= 0 at index %d: %f", i, v)
		}
		if v == 0 {
			return 0, nil
		}
		logSum += math.Log(v)
		sum += v
	}

	n := float64(len(mag))
	return math.Exp(logSum/n) / (sum / n), nil
}

// BinFrequency returns the centre frequency in Hz of bin k of an fftSize
// transform. Bins above fftSize/2 map to negative frequencies.
func BinFrequency(k, fftSize int, sampleRate float64) (float64, error) {
	if fftSize <= 0 {
		return 0, fmt.Errorf("bin frequency fftSize must be > 0: %d", fftSize)
	}
	if k < 0 || k >= fftSize {
		return 0, fmt.Errorf("bin frequency index out of range [0,%d): %d", fftSize, k)
	}
	if sampleRate <= 0 {
		return 0, fmt.Errorf("bin frequency sampleRate must be > 0: %f", sampleRate)
	}
	if k > fftSize/2 {
		k -= fftSize
	}
	return float64(k) * sampleRate / float64(fftSize), nil
}
