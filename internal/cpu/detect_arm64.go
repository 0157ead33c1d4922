//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// ASIMD (NEON) is mandatory on ARMv8 but still read from the feature
// registers so that emulators reporting otherwise are honored.
func detectFeaturesImpl() Features {
	return Features{
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
