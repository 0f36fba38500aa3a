// Exercise the OpenMP binding against the real runtime.

package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/eparparita/numthreads/numthreads"
)

var NumThreads = flag.Int(
	"n",
	2,
	"The OpenMP thread count to set inside the scope",
)
var Overwrite = flag.Bool(
	"overwrite",
	true,
	"Whether to overwrite the current OpenMP thread count",
)
var LogLevel = flag.String(
	"log-level",
	"info",
	"Set log level: error, info, debug, trace ...",
)

func logOmpNumThreads(where string) {
	n, err := numthreads.OmpGetNumThreads()
	if err != nil {
		numthreads.Log.Fatal(err)
	}
	fields := logrus.Fields{"omp_get_num_threads": n}
	if nThreads, err := numthreads.ProcessThreadCount(); err == nil {
		fields["os_threads"] = nThreads
	}
	numthreads.Log.WithFields(fields).Info(where)
}

func main() {
	flag.Parse()

	level, err := logrus.ParseLevel(*LogLevel)
	if err != nil {
		numthreads.Log.Fatal(err)
	}
	numthreads.Log.SetLevel(level)

	numthreads.Log.Infof(
		"NumThreads: %d, Overwrite: %v, AvailableCpusCount: %d",
		*NumThreads,
		*Overwrite,
		numthreads.AvailableCpusCount,
	)

	logOmpNumThreads("before scope")
	err = numthreads.WithOmpNumThreads(*NumThreads, *Overwrite, func() error {
		logOmpNumThreads("inside scope")
		return nil
	})
	if err != nil {
		numthreads.Log.Fatal(err)
	}
	logOmpNumThreads("after scope")
}
