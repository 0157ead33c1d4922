package spectrum

import (
	"math"
	"testing"
)

func TestMagnitudePhasePower(t *testing.T) {
	bins := []complex64{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	if len(mag) != len(bins) {
		t.Fatalf("Magnitude length mismatch: got=%d want=%d", len(mag), len(bins))
	}
	if math.Abs(mag[0]-5) > 1e-6 {
		t.Fatalf("Magnitude[0]=%f want=5", mag[0])
	}
	if math.Abs(mag[1]-math.Sqrt2) > 1e-6 {
		t.Fatalf("Magnitude[1]=%f want=%f", mag[1], math.Sqrt2)
	}
	if mag[2] != 0 {
		t.Fatalf("Magnitude[2]=%f want=0", mag[2])
	}

	pow := Power(bins)
	if math.Abs(pow[0]-25) > 1e-6 {
		t.Fatalf("Power[0]=%f want=25", pow[0])
	}

	phase := Phase(bins)
	if math.Abs(phase[0]-math.Atan2(4, 3)) > 1e-6 {
		t.Fatalf("Phase[0]=%f mismatch", phase[0])
	}
}

func TestEmptyInputs(t *testing.T) {
	if Magnitude(nil) != nil || Power(nil) != nil || Phase(nil) != nil {
		t.Fatal("expected nil for empty input")
	}
	if DominantBins(nil, 2) != nil {
		t.Fatal("expected nil dominant bins for empty input")
	}
	if _, err := Flatness(nil); err == nil {
		t.Fatal("expected flatness error for empty input")
	}
}

func TestFromParts(t *testing.T) {
	re := []float64{3, 0}
	im := []float64{4, 2}
	dst := make([]float64, 2)

	MagnitudeFromParts(dst, re, im)
	if math.Abs(dst[0]-5) > 1e-12 || math.Abs(dst[1]-2) > 1e-12 {
		t.Fatalf("MagnitudeFromParts = %v", dst)
	}

	PowerFromParts(dst, re, im)
	if math.Abs(dst[0]-25) > 1e-12 || math.Abs(dst[1]-4) > 1e-12 {
		t.Fatalf("PowerFromParts = %v", dst)
	}
}

func TestDominantBins(t *testing.T) {
	mag := []float64{0.1, 8, 0.2, 3, 8, 0}

	got := DominantBins(mag, 3)
	want := []int{1, 4, 3}
	if len(got) != len(want) {
		t.Fatalf("DominantBins = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("DominantBins = %v, want %v", got, want)
		}
	}

	if all := DominantBins(mag, 100); len(all) != len(mag) {
		t.Fatalf("count clamp: got %d bins, want %d", len(all), len(mag))
	}
	if DominantBins(mag, 0) != nil {
		t.Fatal("expected nil for count 0")
	}
}

func TestFlatness(t *testing.T) {
	flat, err := Flatness([]float64{2, 2, 2, 2})
	if err != nil {
		t.Fatalf("Flatness error: %v", err)
	}
	if math.Abs(flat-1) > 1e-12 {
		t.Fatalf("Flatness(flat) = %f, want 1", flat)
	}

	peaky, err := Flatness([]float64{100, 0.01, 0.01, 0.01})
	if err != nil {
		t.Fatalf("Flatness error: %v", err)
	}
	if peaky > 0.1 {
		t.Fatalf("Flatness(peaky) = %f, want < 0.1", peaky)
	}

	zero, err := Flatness([]float64{1, 0, 1})
	if err != nil || zero != 0 {
		t.Fatalf("Flatness with empty bin = %f, %v; want 0, nil", zero, err)
	}

	if _, err := Flatness([]float64{1, -1}); err == nil {
		t.Fatal("expected error for negative magnitude")
	}
}

func TestBinFrequency(t *testing.T) {
	tests := []struct {
		k    int
		want float64
	}{
		{0, 0},
		{1, 48000.0 / 2048},
		{1024, 24000},
		{2047, -48000.0 / 2048},
	}
	for _, tt := range tests {
		got, err := BinFrequency(tt.k, 2048, 48000)
		if err != nil {
			t.Fatalf("BinFrequency(%d) error: %v", tt.k, err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("BinFrequency(%d) = %f, want %f", tt.k, got, tt.want)
		}
	}

	if _, err := BinFrequency(2048, 2048, 48000); err == nil {
		t.Fatal("expected error for out-of-range bin")
	}
	if _, err := BinFrequency(0, 0, 48000); err == nil {
		t.Fatal("expected error for zero fftSize")
	}
	if _, err := BinFrequency(0, 16, 0); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
}
