// Command line interface:
//
//      numthreads N    print the shell commands setting the thread control
//                      variables to N
//      numthreads get  print the current values

package numthreads

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
)

const (
	DEFAULT_USAGE_WIDTH = 78
	CLI_GET_ARG         = "get"

	CLI_EXIT_OK          = 0
	CLI_EXIT_USAGE_ERROR = 2
)

var CLI_DESCRIPTION = `
	Set the number of threads for OpenBLAS, MKL, OMP, NumExpr, and Accelerate.
	Usage: Run ` + "`numthreads <number>`" + ` to print the export commands.
	On Unix-like systems (Linux, macOS, WSL), use ` + "`eval $(numthreads <number>)`" + `
	in your shell to apply these settings. On Windows, in PowerShell, use
	` + "`Invoke-Expression $(numthreads <number>)`" + `.
`

var CLI_N_ARG_USAGE = `
	Number of threads to set or use 'get' to display current settings.
`

var CliLog = Log.WithField(
	LOGGER_COMPONENT_FIELD_NAME,
	"Cli",
)

// Format command flag usage for help message.
func FormatFlagUsageWidth(usage string, width int) string {
	buf := &bytes.Buffer{}
	lineLen := 0
	for _, word := range strings.Fields(strings.TrimSpace(usage)) {
		if lineLen == 0 {
			n, _ := buf.WriteString(word)
			lineLen = n
			continue
		}
		if lineLen+len(word)+1 > width {
			buf.WriteByte('\n')
			lineLen = 0
		} else {
			buf.WriteByte(' ')
			lineLen++
		}
		n, _ := buf.WriteString(word)
		lineLen += n
	}
	return buf.String()
}

func FormatFlagUsage(usage string) string {
	return FormatFlagUsageWidth(usage, DEFAULT_USAGE_WIDTH)
}

func printCliUsage(w io.Writer, prog string) {
	fmt.Fprintf(w, "usage: %s [-h] n\n\n", prog)
	fmt.Fprintf(w, "%s (version %s)\n\n", FormatFlagUsage(CLI_DESCRIPTION), Version)
	fmt.Fprintf(w, "positional arguments:\n  n\t%s\n\n", FormatFlagUsage(CLI_N_ARG_USAGE))
	fmt.Fprintf(w, "options:\n  -h, -help\tshow this help message and exit\n")
}

func isIntegerArg(arg string) bool {
	_, err := strconv.Atoi(arg)
	return err == nil
}

// RunCli runs the command line interface for args (w/o the program name) and
// returns the exit code.
func RunCli(prog string, args []string, stdout, stderr io.Writer) int {
	return runCli(prog, args, stdout, stderr, runtime.GOOS)
}

func runCli(prog string, args []string, stdout, stderr io.Writer, goos string) int {
	if len(args) == 0 {
		printCliUsage(stdout, prog)
		return CLI_EXIT_OK
	}

	// Negative numbers are positional arguments, not flags:
	positional := args
	if !isIntegerArg(args[0]) {
		flagSet := flag.NewFlagSet(prog, flag.ContinueOnError)
		flagSet.SetOutput(stderr)
		flagSet.Usage = func() {}
		err := flagSet.Parse(args)
		if errors.Is(err, flag.ErrHelp) {
			printCliUsage(stdout, prog)
			return CLI_EXIT_OK
		}
		if err != nil {
			printCliUsage(stderr, prog)
			return CLI_EXIT_USAGE_ERROR
		}
		positional = flagSet.Args()
	}

	if len(positional) != 1 {
		fmt.Fprintf(stderr, "%s: error: expected exactly one argument, got %d\n", prog, len(positional))
		printCliUsage(stderr, prog)
		return CLI_EXIT_USAGE_ERROR
	}

	arg := positional[0]
	if arg == CLI_GET_ARG {
		if err := PrintCurrentThreadCounts(stdout); err != nil {
			CliLog.Error(err)
			return 1
		}
		logProcessThreadInfo()
		return CLI_EXIT_OK
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(stderr, "%s: error: argument n: invalid int value: %q\n", prog, arg)
		printCliUsage(stderr, prog)
		return CLI_EXIT_USAGE_ERROR
	}
	if n <= 0 {
		CliLog.Warnf("%d: non-positive thread count, the libraries will decide how to interpret it", n)
	} else if n > AvailableCpusCount {
		CliLog.Warnf("%d: thread count exceeds the %d available CPU(s)", n, AvailableCpusCount)
	}
	fmt.Fprintln(stdout, FormatExportCommands(n, goos))
	return CLI_EXIT_OK
}

func logProcessThreadInfo() {
	CliLog.Debugf("available CPUs: %d", AvailableCpusCount)
	nThreads, err := ProcessThreadCount()
	if err != nil {
		CliLog.Debug(err)
		return
	}
	CliLog.Debugf("process OS threads: %d", nThreads)
}
