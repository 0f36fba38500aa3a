// OpenMP loader for Windows.

//go:build windows

package numthreads

import (
	"golang.org/x/sys/windows"
)

type dllOmpRuntime struct {
	ompSetNumThreads *windows.LazyProc
	ompGetNumThreads *windows.LazyProc
}

func (r *dllOmpRuntime) GetNumThreads() int {
	r0, _, _ := r.ompGetNumThreads.Call()
	return int(int32(r0))
}

func (r *dllOmpRuntime) SetNumThreads(n int) {
	r.ompSetNumThreads.Call(uintptr(int32(n)))
}

func loadOmpRuntime(libName string) (OmpRuntime, error) {
	dll := windows.NewLazyDLL(libName)
	if err := dll.Load(); err != nil {
		return nil, err
	}
	r := &dllOmpRuntime{
		ompSetNumThreads: dll.NewProc(OMP_SET_NUM_THREADS_SYMBOL),
		ompGetNumThreads: dll.NewProc(OMP_GET_NUM_THREADS_SYMBOL),
	}
	for _, proc := range []*windows.LazyProc{r.ompSetNumThreads, r.ompGetNumThreads} {
		if err := proc.Find(); err != nil {
			return nil, err
		}
	}
	return r, nil
}
