package numthreads

import (
	"fmt"
	"io"
	"os"
)

// PrintCurrentThreadCounts writes "NAME: value" for each thread control
// variable, in declaration order, w/ NOT_SET_VALUE for absent ones.
func PrintCurrentThreadCounts(w io.Writer) error {
	for _, name := range THREAD_CONTROL_ENV_VARS {
		value, exists := os.LookupEnv(name)
		if !exists {
			value = NOT_SET_VALUE
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", name, value); err != nil {
			return err
		}
	}
	return nil
}
