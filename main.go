package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/eparparita/numthreads/numthreads"
)

func main() {
	err := numthreads.SetLoggerFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(numthreads.CLI_EXIT_USAGE_ERROR)
	}
	os.Exit(numthreads.RunCli(filepath.Base(os.Args[0]), os.Args[1:], os.Stdout, os.Stderr))
}
