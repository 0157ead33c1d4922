// Package fftwrap puts one forward/inverse complex FFT contract in front of
// several interchangeable transform engines.
//
// A caller picks a [Backend] when constructing a [Forward] or [Inverse]
// transformer and never has to touch engine-specific plans, buffer
// alignment or scaling conventions afterwards:
//
//	fwd, err := fftwrap.NewForward(fftwrap.BackendGonum)
//	if err != nil {
//	    return err
//	}
//	defer fwd.Close()
//
//	spectrum := make([]complex64, fftwrap.WindowLength)
//	err = fwd.Transform(spectrum, signal)
//
// # Window length
//
// Every transformer operates on exactly [WindowLength] complex64 samples.
// [Frame] is the fixed-size array form of one window; the slice entry points
// reject buffers of any other length with [ErrLengthMismatch].
//
// # Scaling
//
// Forward output is unnormalized (X[0] is the plain sum of the input).
// Inverse output is scaled by 1/N, so Inverse(Forward(x)) reproduces x up to
// float32 rounding on every backend.
//
// # Backends
//
//   - [BackendAlgoFFT]: github.com/MeKo-Christian/algo-fft, float32, one
//     vector-aligned working buffer transformed in place.
//   - [BackendGonum]: gonum.org/v1/gonum/dsp/fourier, float64, separate
//     aligned input and output buffers.
//   - [BackendGoDSP]: github.com/mjibson/go-dsp/fft, float64, one staging
//     buffer; the engine returns its own result slice.
//
// All backends stage caller data through private memory, so dst may alias
// src. Values outside the closed set are rejected at construction with
// [ErrUnsupportedBackend]; there is no fallback to another engine.
//
// # Concurrency
//
// A transformer mutates its working buffers on every call and must not be
// used from several goroutines at once. Distinct transformers share nothing
// and may run concurrently.
package fftwrap
