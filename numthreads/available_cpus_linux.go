// Count available CPUs based on affinity

//go:build linux

package numthreads

import (
	"os"
	"runtime"

	"github.com/tklauser/go-sysconf"
	"golang.org/x/sys/unix"
)

// For linux count available CPUs based on CPU affinity, w/ a fallback on
// sysconf and then on runtime:
func CountAvailableCPUs() int {
	cpuSet := unix.CPUSet{}
	err := unix.SchedGetaffinity(os.Getpid(), &cpuSet)
	if err == nil {
		return cpuSet.Count()
	}
	Log.Warn(err)
	nCpus, err := sysconf.Sysconf(sysconf.SC_NPROCESSORS_ONLN)
	if err != nil || nCpus <= 0 {
		return runtime.NumCPU()
	}
	return int(nCpus)
}
