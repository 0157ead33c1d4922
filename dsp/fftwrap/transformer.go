package fftwrap

import "fmt"

type state uint8

const (
	stateUninitialized state = iota
	stateReady
	stateClosed
)

// transformer is the lifecycle and validation shared by Forward and Inverse.
type transformer struct {
	backend Backend
	dir     direction
	n       int
	eng     engine
	state   state

	// Captured at construction so accessors stay valid after Close.
	strategy  BufferStrategy
	alignment int
}

func newTransformer(b Backend, n int, dir direction, opts []Option) (transformer, error) {
	cfg, err := ApplyOptions(opts...)
	if err != nil {
		return transformer{}, err
	}

	eng, err := newEngine(b, n, dir, cfg)
	if err != nil {
		return transformer{}, err
	}

	return transformer{
		backend: b,
		dir:     dir,
		n:       n,
		eng:     eng,
		state:   stateReady,

		strategy:  eng.strategy(),
		alignment: eng.alignment(),
	}, nil
}

func (t *transformer) ready() error {
	switch t.state {
	case stateReady:
		return nil
	case stateClosed:
		return ErrClosed
	default:
		return ErrUninitialized
	}
}

func (t *transformer) run(dst, src []complex64) error {
	if err := t.ready(); err != nil {
		return err
	}
	if len(src) != t.n {
		return fmt.Errorf("%w: src has %d samples, want %d", ErrLengthMismatch, len(src), t.n)
	}
	if len(dst) != t.n {
		return fmt.Errorf("%w: dst has %d samples, want %d", ErrLengthMismatch, len(dst), t.n)
	}
	if err := t.eng.execute(dst, src); err != nil {
		return fmt.Errorf("fftwrap: %s %s transform failed: %w", t.backend, t.dir, err)
	}
	return nil
}

func (t *transformer) close() error {
	if err := t.ready(); err != nil {
		return err
	}
	releaseEngine(t.eng)
	t.eng = nil
	t.state = stateClosed
	return nil
}
