//go:build !(darwin || linux || windows)

package numthreads

import (
	"runtime"
)

// Never reached since OmpLibraryName rejects the platform first.
func loadOmpRuntime(libName string) (OmpRuntime, error) {
	return nil, &UnsupportedPlatformError{runtime.GOOS}
}
