package fftwrap

import (
	"fmt"
	"sync/atomic"
)

type direction uint8

const (
	dirForward direction = iota
	dirInverse
)

func (d direction) String() string {
	if d == dirInverse {
		return "inverse"
	}
	return "forward"
}

// engine is one backend's plan plus the working buffers it needs.
//
// execute writes the unnormalized transform of src into dst. Both slices
// have the plan length and may alias each other.
type engine interface {
	execute(dst, src []complex64) error
	strategy() BufferStrategy
	// alignment is 0 when the engine's buffers are not aligned.
	alignment() int
	// release drops the plan first, then the buffers. Called exactly once.
	release()
}

type engineFactory func(n int, dir direction, cfg Config) (engine, error)

var engineFactories = [numBackends]engineFactory{
	BackendAlgoFFT: newAlgoFFTEngine,
	BackendGonum:   newGonumEngine,
	BackendGoDSP:   newGoDSPEngine,
}

// liveEngines counts engines created and not yet released.
var liveEngines atomic.Int64

func newEngine(b Backend, n int, dir direction, cfg Config) (engine, error) {
	if !b.Valid() || engineFactories[b] == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, b)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: %s: window length must be > 0: %d", ErrPlan, b, n)
	}

	e, err := engineFactories[b](n, dir, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s plan of length %d: %w", ErrPlan, b, dir, n, err)
	}
	liveEngines.Add(1)
	return e, nil
}

func releaseEngine(e engine) {
	e.release()
	liveEngines.Add(-1)
}

// widen copies src into dst as complex128, conjugating when asked.
func widen(dst []complex128, src []complex64, conj bool) {
	if conj {
		for i, v := range src {
			dst[i] = complex(float64(real(v)), -float64(imag(v)))
		}
		return
	}
	for i, v := range src {
		dst[i] = complex128(v)
	}
}

// narrow copies src into dst as complex64, conjugating when asked.
func narrow(dst []complex64, src []complex128, conj bool) {
	if conj {
		for i, v := range src {
			dst[i] = complex(float32(real(v)), -float32(imag(v)))
		}
		return
	}
	for i, v := range src {
		dst[i] = complex64(v)
	}
}
