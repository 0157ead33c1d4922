package fftwrap

// Inverse computes the inverse DFT of one window, scaled by 1/N so that it
// undoes Forward exactly.
//
// An Inverse is not safe for concurrent use. Call Close to release its plan
// and working buffers.
type Inverse struct {
	t transformer
}

// NewInverse creates an inverse transformer on backend b.
func NewInverse(b Backend, opts ...Option) (*Inverse, error) {
	return newInverse(b, WindowLength, opts...)
}

func newInverse(b Backend, n int, opts ...Option) (*Inverse, error) {
	t, err := newTransformer(b, n, dirInverse, opts)
	if err != nil {
		return nil, err
	}
	return &Inverse{t: t}, nil
}

// Transform writes the time-domain signal for spectrum src into dst. Both
// must hold exactly Len() samples; dst may alias src.
func (iv *Inverse) Transform(dst, src []complex64) error {
	if iv == nil {
		return ErrUninitialized
	}
	if err := iv.t.run(dst, src); err != nil {
		return err
	}
	normalize(dst, iv.t.n)
	return nil
}

// TransformFrame is Transform on fixed-size frames.
func (iv *Inverse) TransformFrame(dst, src *Frame) error {
	return iv.Transform(dst[:], src[:])
}

// Close releases the plan and working buffers. Closing twice returns ErrClosed.
func (iv *Inverse) Close() error {
	if iv == nil {
		return ErrUninitialized
	}
	return iv.t.close()
}

// Backend returns the engine this transformer delegates to.
func (iv *Inverse) Backend() Backend { return iv.t.backend }

// Len returns the window length.
func (iv *Inverse) Len() int { return iv.t.n }

// Strategy returns how the engine stages caller data.
func (iv *Inverse) Strategy() BufferStrategy { return iv.t.strategy }

// Alignment returns the byte alignment of the working buffers, or 0 when
// the engine does not align them.
func (iv *Inverse) Alignment() int { return iv.t.alignment }

// normalize multiplies every sample by 1/n.
func normalize(x []complex64, n int) {
	scale := 1 / float32(n)
	for i, v := range x {
		x[i] = complex(real(v)*scale, imag(v)*scale)
	}
}
