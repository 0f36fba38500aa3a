// OpenMP loader for Linux and macOS, via purego (no cgo required).

//go:build darwin || linux

package numthreads

import (
	"github.com/ebitengine/purego"
)

type dlOmpRuntime struct {
	ompSetNumThreads func(int32)
	ompGetNumThreads func() int32
}

func (r *dlOmpRuntime) GetNumThreads() int {
	return int(r.ompGetNumThreads())
}

func (r *dlOmpRuntime) SetNumThreads(n int) {
	r.ompSetNumThreads(int32(n))
}

func loadOmpRuntime(libName string) (OmpRuntime, error) {
	handle, err := purego.Dlopen(libName, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, err
	}
	r := &dlOmpRuntime{}
	for symbol, fptr := range map[string]any{
		OMP_SET_NUM_THREADS_SYMBOL: &r.ompSetNumThreads,
		OMP_GET_NUM_THREADS_SYMBOL: &r.ompGetNumThreads,
	} {
		sym, err := purego.Dlsym(handle, symbol)
		if err != nil {
			purego.Dlclose(handle)
			return nil, err
		}
		purego.RegisterFunc(fptr, sym)
	}
	return r, nil
}
