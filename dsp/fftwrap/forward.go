package fftwrap

// Forward computes the unnormalized forward DFT of one window.
//
// A Forward is not safe for concurrent use. Call Close to release its plan
// and working buffers.
type Forward struct {
	t transformer
}

// NewForward creates a forward transformer on backend b.
func NewForward(b Backend, opts ...Option) (*Forward, error) {
	return newForward(b, WindowLength, opts...)
}

func newForward(b Backend, n int, opts ...Option) (*Forward, error) {
	t, err := newTransformer(b, n, dirForward, opts)
	if err != nil {
		return nil, err
	}
	return &Forward{t: t}, nil
}

// Transform writes the spectrum of src into dst. Both must hold exactly
// Len() samples; dst may alias src.
func (f *Forward) Transform(dst, src []complex64) error {
	if f == nil {
		return ErrUninitialized
	}
	return f.t.run(dst, src)
}

// TransformFrame is Transform on fixed-size frames.
func (f *Forward) TransformFrame(dst, src *Frame) error {
	return f.Transform(dst[:], src[:])
}

// Close releases the plan and working buffers. Closing twice returns ErrClosed.
func (f *Forward) Close() error {
	if f == nil {
		return ErrUninitialized
	}
	return f.t.close()
}

// Backend returns the engine this transformer delegates to.
func (f *Forward) Backend() Backend { return f.t.backend }

// Len returns the window length.
func (f *Forward) Len() int { return f.t.n }

// Strategy returns how the engine stages caller data.
func (f *Forward) Strategy() BufferStrategy { return f.t.strategy }

// Alignment returns the byte alignment of the working buffers, or 0 when
// the engine does not align them.
func (f *Forward) Alignment() int { return f.t.alignment }
