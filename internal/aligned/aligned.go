// Package aligned allocates complex sample buffers whose first element sits
// on a caller-chosen byte boundary.
//
// The Go heap does not move objects, so a buffer keeps its alignment for as
// long as it is referenced.
package aligned

import (
	"fmt"
	"unsafe"
)

// Complex is the set of element types a buffer can hold.
type Complex interface {
	~complex64 | ~complex128
}

// Make returns a zeroed slice of n elements aligned to align bytes.
// align must be a power of two.
func Make[T Complex](n, align int) ([]T, error) {
	if n <= 0 {
		return nil, fmt.Errorf("aligned: length must be > 0: %d", n)
	}
	if !IsPowerOfTwo(align) {
		return nil, fmt.Errorf("aligned: alignment must be a power of two: %d", align)
	}

	var zero T
	size := int(unsafe.Sizeof(zero))

	// Over-allocate by one alignment unit and slide forward to the boundary.
	raw := make([]byte, n*size+align)
	off := 0
	if rem := int(uintptr(unsafe.Pointer(&raw[0])) & uintptr(align-1)); rem != 0 {
		off = align - rem
	}

	return unsafe.Slice((*T)(unsafe.Pointer(&raw[off])), n), nil
}

// Is reports whether the first element of s is aligned to align bytes.
// Empty slices are trivially aligned.
func Is[T Complex](s []T, align int) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&s[0]))&uintptr(align-1) == 0
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
