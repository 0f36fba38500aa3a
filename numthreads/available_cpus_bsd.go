//go:build darwin || dragonfly || freebsd || netbsd || openbsd || solaris

package numthreads

import (
	"runtime"

	"github.com/tklauser/go-sysconf"
)

func CountAvailableCPUs() int {
	nCpus, err := sysconf.Sysconf(sysconf.SC_NPROCESSORS_ONLN)
	if err != nil || nCpus <= 0 {
		Log.Warnf("sysconf(SC_NPROCESSORS_ONLN): %v, will use runtime.NumCPU()", err)
		return runtime.NumCPU()
	}
	return int(nCpus)
}
