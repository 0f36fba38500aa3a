//go:build !linux

package numthreads

func ProcessThreadCount() (int, error) {
	return 0, ErrProcessThreadCountUnsupported
}
