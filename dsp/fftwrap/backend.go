package fftwrap

import (
	"fmt"
	"strings"
)

// WindowLength is the number of complex samples every transformer works on.
const WindowLength = 2048

// Frame is one window of complex samples.
type Frame [WindowLength]complex64

// Backend selects the transform engine a transformer delegates to.
type Backend uint8

const (
	// BackendAlgoFFT uses github.com/MeKo-Christian/algo-fft.
	BackendAlgoFFT Backend = iota

	// BackendGonum uses gonum.org/v1/gonum/dsp/fourier.
	BackendGonum

	// BackendGoDSP uses github.com/mjibson/go-dsp/fft.
	BackendGoDSP

	numBackends
)

var backendNames = [numBackends]string{
	BackendAlgoFFT: "algofft",
	BackendGonum:   "gonum",
	BackendGoDSP:   "godsp",
}

// String returns the backend's short name.
func (b Backend) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Backend(%d)", uint8(b))
	}
	return backendNames[b]
}

// Valid reports whether b names a wired engine.
func (b Backend) Valid() bool {
	return b < numBackends
}

// Backends returns every supported backend in declaration order.
func Backends() []Backend {
	out := make([]Backend, numBackends)
	for i := range out {
		out[i] = Backend(i)
	}
	return out
}

// ParseBackend maps a short name (case-insensitive) to its Backend.
func ParseBackend(name string) (Backend, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range backendNames {
		if n == name {
			return Backend(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedBackend, name)
}

// BufferStrategy describes how an engine stages caller data.
type BufferStrategy uint8

const (
	// StrategyInPlace uses one aligned working buffer transformed in place.
	StrategyInPlace BufferStrategy = iota

	// StrategySeparate uses distinct aligned input and output buffers.
	StrategySeparate

	// StrategyStaging widens input into one staging buffer; the engine
	// returns its own result slice.
	StrategyStaging
)

// String returns a human-readable name for the strategy.
func (s BufferStrategy) String() string {
	switch s {
	case StrategyInPlace:
		return "in-place"
	case StrategySeparate:
		return "separate"
	case StrategyStaging:
		return "staging"
	default:
		return "unknown"
	}
}
