package fftwrap

import (
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-fftwrap/internal/aligned"
)

// gonumEngine runs a gonum complex FFT out of place between two aligned
// float64 buffers. Sequence does not normalize, which is exactly the raw
// inverse this package scales itself.
type gonumEngine struct {
	dir   direction
	align int
	plan  *fourier.CmplxFFT
	in    []complex128
	out   []complex128
}

func newGonumEngine(n int, dir direction, cfg Config) (engine, error) {
	in, err := aligned.Make[complex128](n, cfg.Alignment)
	if err != nil {
		return nil, err
	}
	out, err := aligned.Make[complex128](n, cfg.Alignment)
	if err != nil {
		return nil, err
	}

	return &gonumEngine{
		dir:   dir,
		align: cfg.Alignment,
		plan:  fourier.NewCmplxFFT(n),
		in:    in,
		out:   out,
	}, nil
}

func (e *gonumEngine) execute(dst, src []complex64) error {
	widen(e.in, src, false)
	if e.dir == dirInverse {
		e.plan.Sequence(e.out, e.in)
	} else {
		e.plan.Coefficients(e.out, e.in)
	}
	narrow(dst, e.out, false)
	return nil
}

func (e *gonumEngine) strategy() BufferStrategy { return StrategySeparate }

func (e *gonumEngine) alignment() int { return e.align }

func (e *gonumEngine) release() {
	e.plan = nil
	e.out = nil
	e.in = nil
}
