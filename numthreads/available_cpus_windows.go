//go:build windows

package numthreads

import (
	"runtime"
	"syscall"

	"golang.org/x/sys/windows"
)

const ALL_PROCESSOR_GROUPS = 0xFFFF

// runtime.NumCPU() only covers a single processor group (up to 64 CPUs), use
// GetActiveProcessorCount for all of them.
func CountAvailableCPUs() int {
	r0, _, _ := syscall.SyscallN(
		windows.NewLazySystemDLL("kernel32.dll").NewProc("GetActiveProcessorCount").Addr(),
		ALL_PROCESSOR_GROUPS,
	)
	if r0 == 0 {
		return runtime.NumCPU()
	}
	return int(r0)
}
