//go:build linux

package numthreads

import (
	"github.com/prometheus/procfs"
)

// ProcessThreadCount returns the number of OS threads of the current
// process, as per /proc/self/stat.
func ProcessThreadCount() (int, error) {
	proc, err := procfs.Self()
	if err != nil {
		return 0, err
	}
	stat, err := proc.Stat()
	if err != nil {
		return 0, err
	}
	return stat.NumThreads, nil
}
