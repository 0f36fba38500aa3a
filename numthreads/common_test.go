// Common definitions for numthreads tests.

package numthreads

import (
	"bytes"
	"errors"
	"runtime"
	"testing"

	"github.com/gookit/goutil/dump"

	"github.com/eparparita/numthreads/testutils"
)

func dumpEnv(env map[string]string) string {
	buf := &bytes.Buffer{}
	dumper := dump.NewDumper(buf, 3)
	dumper.NoColor = true
	dumper.ShowFlag = dump.Fnopos
	dumper.Dump(env)
	return buf.String()
}

// Mock the thread control variables w/ env, restored at test cleanup.
func mockThreadControlEnvVars(t *testing.T, env map[string]string) *testutils.EnvVarsMock {
	t.Helper()
	evm := testutils.NewEnvVarsMock(THREAD_CONTROL_ENV_VARS)
	t.Cleanup(evm.Unmock)
	evm.Set(env)
	return evm
}

// Replace the OpenMP loader w/ one returning ompRuntime (or err), restored at
// test cleanup.
func mockOmpRuntimeLoader(t *testing.T, ompRuntime OmpRuntime, err error) *int {
	t.Helper()
	if _, libErr := OmpLibraryName(runtime.GOOS); libErr != nil {
		t.Skip(libErr)
	}
	nLoads := new(int)
	savedLoader := ompRuntimeLoader
	ompRuntimeLoader = func(libName string) (OmpRuntime, error) {
		*nLoads++
		if err != nil {
			return nil, err
		}
		return ompRuntime, nil
	}
	resetOmpRuntimeCache()
	t.Cleanup(func() {
		ompRuntimeLoader = savedLoader
		resetOmpRuntimeCache()
	})
	return nLoads
}

var errTestLoad = errors.New("test: cannot open shared object file")
