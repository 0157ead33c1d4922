// Package spectrum provides helpers for inspecting the complex64 windows
// produced by the fftwrap transformers.
//
// The package does not transform anything itself. It extracts magnitude,
// power and phase, locates dominant bins and measures flatness, which is
// enough to sanity-check a backend's output or feed a meter.
package spectrum
