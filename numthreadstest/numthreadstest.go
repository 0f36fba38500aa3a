// Package numthreadstest sets the thread control variables for the duration
// of a test.
//
// Importing the package registers the -numthreads test flag:
//
//	go test ./... -args -numthreads=2
//
// and tests opt in with:
//
//	func TestMain(m *testing.M) {
//		flag.Parse()
//		defer numthreadstest.FromFlag().Restore()
//		os.Exit(m.Run())
//	}
package numthreadstest

import (
	"flag"
	"testing"

	"github.com/eparparita/numthreads/numthreads"
)

var NumThreadsArg = flag.Int(
	"numthreads",
	0,
	numthreads.FormatFlagUsage(`
	Number of threads to set for OpenBLAS, MKL, OMP, NumExpr, and Accelerate,
	0 leaves the environment unchanged.
	`),
)

// SetNumThreads sets the thread control variables to n and restores them at
// test cleanup. It must not be used in parallel tests.
func SetNumThreads(tb testing.TB, n int) {
	tb.Helper()
	scope := numthreads.NumThreads(n, true)
	tb.Cleanup(scope.Restore)
}

// FromFlag applies -numthreads, if set. The returned scope is never nil.
func FromFlag() *numthreads.NumThreadsScope {
	if *NumThreadsArg <= 0 {
		return &numthreads.NumThreadsScope{}
	}
	return numthreads.NumThreads(*NumThreadsArg, true)
}
