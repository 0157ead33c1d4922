package fftwrap

import "errors"

// Errors returned by transformers.
var (
	// ErrUnsupportedBackend is returned for a Backend with no engine wired.
	ErrUnsupportedBackend = errors.New("fftwrap: unsupported backend")

	// ErrLengthMismatch is returned when a buffer is not exactly one window long.
	ErrLengthMismatch = errors.New("fftwrap: buffer length mismatch")

	// ErrPlan is returned when an engine cannot create its plan or buffers.
	ErrPlan = errors.New("fftwrap: plan creation failed")

	// ErrInvalidAlignment is returned for an alignment that is not a power of two.
	ErrInvalidAlignment = errors.New("fftwrap: invalid buffer alignment")

	// ErrClosed is returned when a transformer is used after Close.
	ErrClosed = errors.New("fftwrap: transformer closed")

	// ErrUninitialized is returned when a zero-value transformer is used.
	ErrUninitialized = errors.New("fftwrap: transformer not initialized")
)
