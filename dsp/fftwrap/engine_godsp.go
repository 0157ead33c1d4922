package fftwrap

import (
	"github.com/mjibson/go-dsp/fft"

	"github.com/cwbudde/algo-fftwrap/internal/aligned"
)

// goDSPEngine widens input into a staging buffer and hands it to go-dsp.
//
// go-dsp keeps its twiddle factors in a package-wide cache keyed by length;
// reserving them at construction is this engine's plan step. FFT returns a
// fresh slice on every call. IFFT scales by 1/N, so the raw inverse is
// computed by conjugating around FFT.
type goDSPEngine struct {
	dir     direction
	staging []complex128
}

func newGoDSPEngine(n int, dir direction, _ Config) (engine, error) {
	if aligned.IsPowerOfTwo(n) {
		fft.EnsureRadix2Factors(n)
	}

	return &goDSPEngine{
		dir:     dir,
		staging: make([]complex128, n),
	}, nil
}

func (e *goDSPEngine) execute(dst, src []complex64) error {
	conj := e.dir == dirInverse
	widen(e.staging, src, conj)
	narrow(dst, fft.FFT(e.staging), conj)
	return nil
}

func (e *goDSPEngine) strategy() BufferStrategy { return StrategyStaging }

func (e *goDSPEngine) alignment() int { return 0 }

func (e *goDSPEngine) release() {
	e.staging = nil
}
