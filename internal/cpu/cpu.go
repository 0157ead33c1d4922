// Package cpu detects the SIMD extensions of the running processor and maps
// them to the memory alignment that vectorized FFT kernels expect.
//
// Detection runs once and is cached. Tests can pin a feature set with
// SetForcedFeatures and undo it with ResetDetection.
package cpu

import "sync"

// SIMDLevel is the widest vector extension usable on this machine.
type SIMDLevel int

const (
	SIMDNone SIMDLevel = iota
	SIMDSSE2
	SIMDNEON
	SIMDAVX
	SIMDAVX2
	SIMDAVX512
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDNEON:
		return "NEON"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	default:
		return "Unknown"
	}
}

// Alignment returns the byte alignment a working buffer needs so that
// full-width vector loads of this level never straddle a boundary.
func (s SIMDLevel) Alignment() int {
	switch s {
	case SIMDAVX512:
		return 64
	case SIMDAVX, SIMDAVX2:
		return 32
	default:
		return MinAlignment
	}
}

// MinAlignment is the smallest alignment handed out, wide enough for one
// complex128 or an SSE2/NEON register.
const MinAlignment = 16

// Features describes the CPU capabilities relevant to buffer layout.
type Features struct {
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool

	// ForceGeneric pretends no SIMD is present.
	ForceGeneric bool

	Architecture string // runtime.GOARCH
}

// Level returns the widest SIMD level the features allow.
func (f Features) Level() SIMDLevel {
	switch {
	case f.ForceGeneric:
		return SIMDNone
	case f.HasAVX512:
		return SIMDAVX512
	case f.HasAVX2:
		return SIMDAVX2
	case f.HasAVX:
		return SIMDAVX
	case f.HasNEON:
		return SIMDNEON
	case f.HasSSE2:
		return SIMDSSE2
	default:
		return SIMDNone
	}
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features of the current system.
// It is safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// VectorAlignment returns the working-buffer alignment for this machine.
func VectorAlignment() int {
	return DetectFeatures().Level().Alignment()
}

// SetForcedFeatures overrides detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears forced features and the detection cache.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}
