//go:build !(linux || windows || darwin || dragonfly || freebsd || netbsd || openbsd || solaris)

package numthreads

import (
	"runtime"
)

func CountAvailableCPUs() int {
	return runtime.NumCPU()
}
