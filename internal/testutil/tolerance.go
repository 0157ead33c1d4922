package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"
)

// RequireComplexNearlyEqual fails t if got and want differ in length or if
// any element pair is further apart than eps.
func RequireComplexNearlyEqual(t *testing.T, got, want []complex64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := cmplx.Abs(complex128(got[i] - want[i]))
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any real or imaginary part is NaN or Inf.
func RequireFinite(t *testing.T, data []complex64) {
	t.Helper()
	for i, v := range data {
		if cmplx.IsNaN(complex128(v)) || cmplx.IsInf(complex128(v)) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the largest |a[i]-b[i]|.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a []complex64, b []complex128) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := cmplx.Abs(complex128(a[i]) - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// Widen converts a complex64 slice to complex128.
func Widen(in []complex64) []complex128 {
	out := make([]complex128, len(in))
	for i, v := range in {
		out[i] = complex128(v)
	}
	return out
}

// RelativeError returns max|a-b| / max|b|, or the absolute error when b is
// all zeros.
func RelativeError(a []complex64, b []complex128) (float64, error) {
	diff, err := MaxAbsDiff(a, b)
	if err != nil {
		return 0, err
	}
	peak := 0.0
	for _, v := range b {
		peak = math.Max(peak, cmplx.Abs(v))
	}
	if peak == 0 {
		return diff, nil
	}
	return diff / peak, nil
}
