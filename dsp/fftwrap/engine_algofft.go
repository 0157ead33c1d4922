package fftwrap

import (
	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-fftwrap/internal/aligned"
)

// algoFFTEngine runs an algo-fft float32 plan in place on one aligned buffer.
//
// algo-fft's own Inverse already scales by 1/N, so the raw inverse is taken
// as conj(F(conj(x))) with the forward kernel.
type algoFFTEngine struct {
	dir   direction
	align int
	plan  *algofft.Plan[complex64]
	buf   []complex64
}

func newAlgoFFTEngine(n int, dir direction, cfg Config) (engine, error) {
	buf, err := aligned.Make[complex64](n, cfg.Alignment)
	if err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan32(n)
	if err != nil {
		return nil, err
	}

	return &algoFFTEngine{
		dir:   dir,
		align: cfg.Alignment,
		plan:  plan,
		buf:   buf,
	}, nil
}

func (e *algoFFTEngine) execute(dst, src []complex64) error {
	if e.dir == dirInverse {
		for i, v := range src {
			e.buf[i] = complex(real(v), -imag(v))
		}
	} else {
		copy(e.buf, src)
	}

	if err := e.plan.Forward(e.buf, e.buf); err != nil {
		return err
	}

	if e.dir == dirInverse {
		for i, v := range e.buf {
			dst[i] = complex(real(v), -imag(v))
		}
		return nil
	}
	copy(dst, e.buf)
	return nil
}

func (e *algoFFTEngine) strategy() BufferStrategy { return StrategyInPlace }

func (e *algoFFTEngine) alignment() int { return e.align }

func (e *algoFFTEngine) release() {
	e.plan = nil
	e.buf = nil
}
