package numthreads

import (
	"errors"
)

var ErrProcessThreadCountUnsupported = errors.New("process thread count not supported on this platform")
