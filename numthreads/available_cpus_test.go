package numthreads

import (
	"errors"
	"runtime"
	"testing"
)

func TestCountAvailableCPUs(t *testing.T) {
	nCpus := CountAvailableCPUs()
	if nCpus <= 0 {
		t.Fatalf("CountAvailableCPUs(): want > 0, got: %d", nCpus)
	}
	if AvailableCpusCount != nCpus {
		t.Logf("AvailableCpusCount: %d, CountAvailableCPUs(): %d", AvailableCpusCount, nCpus)
	}
}

func TestProcessThreadCount(t *testing.T) {
	nThreads, err := ProcessThreadCount()
	if runtime.GOOS != "linux" {
		if !errors.Is(err, ErrProcessThreadCountUnsupported) {
			t.Fatalf("want ErrProcessThreadCountUnsupported, got: %v", err)
		}
		return
	}
	if err != nil {
		t.Fatal(err)
	}
	if nThreads < 1 {
		t.Fatalf("ProcessThreadCount(): want >= 1, got: %d", nThreads)
	}
}
