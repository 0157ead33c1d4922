package fftwrap

import (
	"fmt"

	"github.com/cwbudde/algo-fftwrap/internal/aligned"
	"github.com/cwbudde/algo-fftwrap/internal/cpu"
)

// Config holds construction settings shared by both transformer kinds.
type Config struct {
	// Alignment is the byte boundary of aligned working buffers.
	Alignment int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used when no options are given.
// Alignment follows the widest SIMD extension of the running CPU.
func DefaultConfig() Config {
	return Config{
		Alignment: cpu.VectorAlignment(),
	}
}

// WithAlignment overrides the working-buffer alignment in bytes. It must be
// a power of two of at least 16. Non-positive values are ignored.
func WithAlignment(bytes int) Option {
	return func(cfg *Config) {
		if bytes > 0 {
			cfg.Alignment = bytes
		}
	}
}

// ApplyOptions applies zero or more options to the default config and
// validates the result.
func ApplyOptions(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !aligned.IsPowerOfTwo(cfg.Alignment) || cfg.Alignment < cpu.MinAlignment {
		return cfg, fmt.Errorf("%w: %d", ErrInvalidAlignment, cfg.Alignment)
	}
	return cfg, nil
}
