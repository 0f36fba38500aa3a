// Cache available cpu#.
//
// For Linux the latter is based on cpu affinity mask, for macOS and BSD on
// sysconf, for Windows on the active processor count across all processor
// groups and for anything else on runtime.NumCPU.

package numthreads

var AvailableCpusCount = CountAvailableCPUs()
