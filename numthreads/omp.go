// OpenMP runtime binding.
//
// The OpenMP shared library is loaded by name at call time, it is not linked
// at build time. The platform specific loaders are in omp_unix.go,
// omp_windows.go and omp_others.go.
//
// Note that omp_get_num_threads returns the number of threads in the current
// parallel region, i.e. it typically returns 1 when invoked outside of one,
// regardless of the configured thread count.

package numthreads

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

const (
	OMP_LIBRARY_NAME_DARWIN  = "libomp.dylib"
	OMP_LIBRARY_NAME_LINUX   = "libgomp.so.1"
	OMP_LIBRARY_NAME_WINDOWS = "libiomp5md.dll"

	OMP_SET_NUM_THREADS_SYMBOL = "omp_set_num_threads"
	OMP_GET_NUM_THREADS_SYMBOL = "omp_get_num_threads"
)

var (
	ErrOmpLoad             = errors.New("cannot load OpenMP library")
	ErrUnsupportedPlatform = errors.New("unsupported operating system")
)

type OmpLoadError struct {
	LibName string
	Err     error
}

func (e *OmpLoadError) Error() string {
	return fmt.Sprintf("Error loading %s. Make sure OpenMP is installed: %v", e.LibName, e.Err)
}

func (e *OmpLoadError) Unwrap() error {
	return e.Err
}

func (e *OmpLoadError) Is(target error) bool {
	return target == ErrOmpLoad
}

type UnsupportedPlatformError struct {
	GOOS string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("Unsupported operating system: %s", e.GOOS)
}

func (e *UnsupportedPlatformError) Is(target error) bool {
	return target == ErrUnsupportedPlatform
}

// The subset of the OpenMP runtime API used here.
type OmpRuntime interface {
	GetNumThreads() int
	SetNumThreads(n int)
}

func OmpLibraryName(goos string) (string, error) {
	switch goos {
	case "darwin":
		return OMP_LIBRARY_NAME_DARWIN, nil
	case "linux":
		return OMP_LIBRARY_NAME_LINUX, nil
	case "windows":
		return OMP_LIBRARY_NAME_WINDOWS, nil
	}
	return "", &UnsupportedPlatformError{goos}
}

var OmpLog = Log.WithField(
	LOGGER_COMPONENT_FIELD_NAME,
	"Omp",
)

// Loader by library name, replaced in tests w/ a fake binding:
var ompRuntimeLoader func(libName string) (OmpRuntime, error) = loadOmpRuntime

var ompRuntimeCache = struct {
	m       *sync.Mutex
	runtime OmpRuntime
}{
	m: &sync.Mutex{},
}

// LoadOmpRuntime loads the OpenMP library for the current platform, once.
func LoadOmpRuntime() (OmpRuntime, error) {
	return loadOmpRuntimeForOs(runtime.GOOS)
}

func loadOmpRuntimeForOs(goos string) (OmpRuntime, error) {
	libName, err := OmpLibraryName(goos)
	if err != nil {
		return nil, err
	}

	ompRuntimeCache.m.Lock()
	defer ompRuntimeCache.m.Unlock()
	if ompRuntimeCache.runtime != nil {
		return ompRuntimeCache.runtime, nil
	}
	ompRuntime, err := ompRuntimeLoader(libName)
	if err != nil {
		return nil, &OmpLoadError{libName, err}
	}
	OmpLog.Debugf("%s loaded", libName)
	ompRuntimeCache.runtime = ompRuntime
	return ompRuntime, nil
}

func resetOmpRuntimeCache() {
	ompRuntimeCache.m.Lock()
	ompRuntimeCache.runtime = nil
	ompRuntimeCache.m.Unlock()
}

// OmpSetNumThreads sets the number of threads used by subsequent OpenMP
// parallel regions. This overrides OMP_NUM_THREADS for libraries already
// loaded. If overwrite is false then this is a no-op.
func OmpSetNumThreads(n int, overwrite bool) error {
	if !overwrite {
		return nil
	}
	ompRuntime, err := LoadOmpRuntime()
	if err != nil {
		return err
	}
	ompRuntime.SetNumThreads(n)
	OmpLog.Debugf("%s(%d)", OMP_SET_NUM_THREADS_SYMBOL, n)
	return nil
}

// OmpGetNumThreads returns the number of threads in the current OpenMP
// parallel region.
func OmpGetNumThreads() (int, error) {
	ompRuntime, err := LoadOmpRuntime()
	if err != nil {
		return 0, err
	}
	return ompRuntime.GetNumThreads(), nil
}

type OmpNumThreadsScope struct {
	restored        bool
	savedNumThreads int
}

// OmpNumThreads captures the current OpenMP thread count and applies n,
// subject to overwrite. The returned scope's Restore sets the captured count
// back regardless of overwrite.
func OmpNumThreads(n int, overwrite bool) (*OmpNumThreadsScope, error) {
	savedNumThreads, err := OmpGetNumThreads()
	if err != nil {
		return nil, err
	}
	err = OmpSetNumThreads(n, overwrite)
	if err != nil {
		return nil, err
	}
	return &OmpNumThreadsScope{savedNumThreads: savedNumThreads}, nil
}

func (scope *OmpNumThreadsScope) Restore() error {
	if scope.restored {
		return nil
	}
	scope.restored = true
	return OmpSetNumThreads(scope.savedNumThreads, true)
}

// WithOmpNumThreads runs fn with the OpenMP thread count set to n. The
// previous count is restored when fn returns or panics.
func WithOmpNumThreads(n int, overwrite bool, fn func() error) (err error) {
	scope, err := OmpNumThreads(n, overwrite)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, scope.Restore())
	}()
	return fn()
}
