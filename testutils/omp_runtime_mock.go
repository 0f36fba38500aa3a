// In-memory OpenMP runtime.

package testutils

import (
	"sync"
)

type OmpRuntimeMock struct {
	m          *sync.Mutex
	numThreads int
	// The values passed to SetNumThreads, in invocation order:
	SetCalls []int
	GetCalls int
}

func NewOmpRuntimeMock(numThreads int) *OmpRuntimeMock {
	return &OmpRuntimeMock{
		m:          &sync.Mutex{},
		numThreads: numThreads,
	}
}

func (orm *OmpRuntimeMock) GetNumThreads() int {
	orm.m.Lock()
	defer orm.m.Unlock()
	orm.GetCalls++
	return orm.numThreads
}

func (orm *OmpRuntimeMock) SetNumThreads(n int) {
	orm.m.Lock()
	defer orm.m.Unlock()
	orm.SetCalls = append(orm.SetCalls, n)
	orm.numThreads = n
}

func (orm *OmpRuntimeMock) NumThreads() int {
	orm.m.Lock()
	defer orm.m.Unlock()
	return orm.numThreads
}
