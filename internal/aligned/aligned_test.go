package aligned

import (
	"fmt"
	"runtime"
	"testing"
)

func TestMakeAlignment(t *testing.T) {
	for _, align := range []int{16, 32, 64, 128} {
		for _, n := range []int{1, 15, 16, 2048} {
			t.Run(fmt.Sprintf("align=%d_n=%d", align, n), func(t *testing.T) {
				c64, err := Make[complex64](n, align)
				if err != nil {
					t.Fatalf("Make[complex64]: %v", err)
				}
				if len(c64) != n || cap(c64) != n {
					t.Fatalf("len/cap = %d/%d, want %d", len(c64), cap(c64), n)
				}
				if !Is(c64, align) {
					t.Fatalf("complex64 buffer not aligned to %d", align)
				}

				c128, err := Make[complex128](n, align)
				if err != nil {
					t.Fatalf("Make[complex128]: %v", err)
				}
				if !Is(c128, align) {
					t.Fatalf("complex128 buffer not aligned to %d", align)
				}
				for i, v := range c128 {
					if v != 0 {
						t.Fatalf("c128[%d] = %v, want 0", i, v)
					}
				}
			})
		}
	}
}

func TestMakeSurvivesGC(t *testing.T) {
	buf, err := Make[complex64](1024, 64)
	if err != nil {
		t.Fatalf("Make: %v", err)
	}
	for i := range buf {
		buf[i] = complex(float32(i), -float32(i))
	}

	runtime.GC()
	runtime.GC()

	if !Is(buf, 64) {
		t.Fatal("alignment lost after GC")
	}
	for i, v := range buf {
		if v != complex(float32(i), -float32(i)) {
			t.Fatalf("buf[%d] = %v after GC", i, v)
		}
	}
}

func TestMakeErrors(t *testing.T) {
	if _, err := Make[complex64](0, 32); err == nil {
		t.Error("expected error for zero length")
	}
	if _, err := Make[complex64](8, 24); err == nil {
		t.Error("expected error for non power-of-two alignment")
	}
	if _, err := Make[complex128](8, 0); err == nil {
		t.Error("expected error for zero alignment")
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	tests := map[int]bool{-8: false, 0: false, 1: true, 2: true, 3: false, 16: true, 48: false, 64: true}
	for n, want := range tests {
		if got := IsPowerOfTwo(n); got != want {
			t.Errorf("IsPowerOfTwo(%d) = %v, want %v", n, got, want)
		}
	}
}
