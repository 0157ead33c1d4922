// Package window generates cosine-sum analysis windows for FFT frames.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris4Term
	TypeFlatTop
)

// Metadata holds spectral properties of a window type.
type Metadata struct {
	Name         string
	ENBW         float64
	CoherentGain float64
}

var metadataByType = map[Type]Metadata{
	TypeRectangular:         {Name: "Rectangular", ENBW: 1.0, CoherentGain: 1.0},
	TypeHann:                {Name: "Hann", ENBW: 1.5, CoherentGain: 0.5},
	TypeHamming:             {Name: "Hamming", ENBW: 1.3628, CoherentGain: 0.54},
	TypeBlackman:            {Name: "Blackman", ENBW: 1.7268, CoherentGain: 0.42},
	TypeBlackmanHarris4Term: {Name: "Blackman-Harris 4-term", ENBW: 2.0044, CoherentGain: 0.35875},
	TypeFlatTop:             {Name: "Flat top", ENBW: 3.7702, CoherentGain: 0.21557895},
}

// Cosine-sum terms: w(x) = sum_k c[k] * cos(2*pi*k*x).
var (
	hannCoeffs            = []float64{0.5, -0.5}
	hammingCoeffs         = []float64{0.54, -0.46}
	blackmanCoeffs        = []float64{0.42, -0.5, 0.08}
	blackmanHarris4Coeffs = []float64{0.35875, -0.48829, 0.14128, -0.01168}
	flatTopCoeffs         = []float64{0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368}
)

// Option configures window generation.
type Option func(*config)

type config struct {
	symmetric bool
}

// WithSymmetric selects the symmetric (filter design) form. The default is
// the periodic form, which tiles seamlessly across FFT frames.
func WithSymmetric() Option {
	return func(c *config) {
		c.symmetric = true
	}
}

// Generate returns window coefficients of the given length.
func Generate(t Type, size int, opts ...Option) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}
	terms, ok := cosineTerms(t)
	if !ok {
		return nil, errUnknownType
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, size)
	for n := range out {
		out[n] = cosineFromCoeffs(samplePosition(n, size, cfg.symmetric), terms)
	}

	return out, nil
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	return metadataByType[t]
}

func (t Type) String() string {
	if m, ok := metadataByType[t]; ok {
		return m.Name
	}
	return "unknown"
}

// Hann returns periodic Hann window coefficients.
func Hann(size int) ([]float64, error) {
	return Generate(TypeHann, size)
}

// CoherentGain returns the mean of coeffs, the factor by which the window
// scales a bin-centred tone.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs)), nil
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

// ApplyReal writes samples[i]*coeffs[i] into the real parts of dst and
// clears the imaginary parts. It is the usual way to load a block of real
// audio into a complex analysis frame.
func ApplyReal(dst []complex64, samples, coeffs []float64) error {
	if len(samples) != len(coeffs) || len(dst) != len(samples) {
		return errMismatchedLength
	}

	tmp := make([]float64, len(samples))
	vecmath.MulBlock(tmp, samples, coeffs)

	for i, v := range tmp {
		dst[i] = complex(float32(v), 0)
	}

	return nil
}

// ApplyComplex multiplies frame in place by coeffs.
func ApplyComplex(frame []complex64, coeffs []float64) error {
	if len(frame) != len(coeffs) {
		return errMismatchedLength
	}

	for i, c := range coeffs {
		w := float32(c)
		frame[i] = complex(real(frame[i])*w, imag(frame[i])*w)
	}

	return nil
}

func cosineTerms(t Type) ([]float64, bool) {
	switch t {
	case TypeRectangular:
		return []float64{1}, true
	case TypeHann:
		return hannCoeffs, true
	case TypeHamming:
		return hammingCoeffs, true
	case TypeBlackman:
		return blackmanCoeffs, true
	case TypeBlackmanHarris4Term:
		return blackmanHarris4Coeffs, true
	case TypeFlatTop:
		return flatTopCoeffs, true
	default:
		return nil, false
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int, symmetric bool) float64 {
	if size <= 1 {
		return 0
	}

	den := float64(size)
	if symmetric {
		den = float64(size - 1)
	}

	return float64(n) / den
}
