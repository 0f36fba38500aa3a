// Thread control environment variables.
//
// Numerical libraries read these variables once, at their own initialization
// time, so they have to be set before the library is loaded. They are process
// wide and not synchronized, callers in multi-threaded programs have to
// serialize their own calls.

package numthreads

import (
	"os"
	"strconv"
)

const (
	Version = "0.5.0"

	NOT_SET_VALUE = "Not set"
)

var THREAD_CONTROL_ENV_VARS = []string{
	"OPENBLAS_NUM_THREADS",   // OpenBLAS
	"MKL_NUM_THREADS",        // MKL
	"OMP_NUM_THREADS",        // OpenMP
	"NUMEXPR_NUM_THREADS",    // NumExpr
	"VECLIB_MAXIMUM_THREADS", // Accelerate
}

var EnvVarsLog = Log.WithField(
	LOGGER_COMPONENT_FIELD_NAME,
	"EnvVars",
)

// SetNumThreads sets every thread control variable to n. If overwrite is
// false, variables already present in the environment are left unchanged.
// Any n is accepted, it is up to the downstream libraries to interpret it.
func SetNumThreads(n int, overwrite bool) {
	value := strconv.Itoa(n)
	for _, name := range THREAD_CONTROL_ENV_VARS {
		if !overwrite {
			if _, exists := os.LookupEnv(name); exists {
				EnvVarsLog.Debugf("%s: keep existing value", name)
				continue
			}
		}
		os.Setenv(name, value)
		EnvVarsLog.Debugf("%s=%s", name, value)
	}
}

var Set = SetNumThreads

// Value at scope entry, nil for absent variables.
type EnvVarSnapshot map[string]*string

func TakeEnvVarSnapshot(names []string) EnvVarSnapshot {
	snapshot := make(EnvVarSnapshot, len(names))
	for _, name := range names {
		if value, exists := os.LookupEnv(name); exists {
			snapshot[name] = &value
		} else {
			snapshot[name] = nil
		}
	}
	return snapshot
}

func (snapshot EnvVarSnapshot) Restore() {
	for name, value := range snapshot {
		if value == nil {
			os.Unsetenv(name)
			EnvVarsLog.Debugf("%s: unset", name)
		} else {
			os.Setenv(name, *value)
			EnvVarsLog.Debugf("%s=%s: restored", name, *value)
		}
	}
}

// NumThreadsScope holds the state of the thread control variables from
// before NumThreads was invoked. Use it as:
//
//	defer numthreads.NumThreads(n, true).Restore()
//
// The zero value restores nothing.
type NumThreadsScope struct {
	snapshot EnvVarSnapshot
}

func NumThreads(n int, overwrite bool) *NumThreadsScope {
	scope := &NumThreadsScope{
		snapshot: TakeEnvVarSnapshot(THREAD_CONTROL_ENV_VARS),
	}
	SetNumThreads(n, overwrite)
	return scope
}

// Restore puts back the variables as they were at scope entry. Only the
// first invocation has an effect.
func (scope *NumThreadsScope) Restore() {
	if scope.snapshot == nil {
		return
	}
	scope.snapshot.Restore()
	scope.snapshot = nil
}

// WithNumThreads runs fn with the thread control variables set to n; they
// are restored when fn returns or panics.
func WithNumThreads(n int, overwrite bool, fn func() error) error {
	defer NumThreads(n, overwrite).Restore()
	return fn()
}
