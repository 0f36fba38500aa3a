// Shell commands for applying the thread control variables.
//
// The CLI cannot change its caller's environment, so it prints a command
// line meant to be evaluated by the caller's shell:
//
//      eval $(numthreads 4)                       # POSIX shells
//      Invoke-Expression $(numthreads 4)          # PowerShell

package numthreads

import (
	"fmt"
	"strings"
)

const (
	POSIX_EXPORT_SEPARATOR      = " ; "
	POWERSHELL_EXPORT_SEPARATOR = " & "
)

func FormatExportCommands(n int, goos string) string {
	commands := make([]string, len(THREAD_CONTROL_ENV_VARS))
	if goos == "windows" {
		for i, name := range THREAD_CONTROL_ENV_VARS {
			commands[i] = fmt.Sprintf("$env:%s='%d'", name, n)
		}
		return fmt.Sprintf(
			`powershell.exe -Command "%s"`,
			strings.Join(commands, POWERSHELL_EXPORT_SEPARATOR),
		)
	}
	for i, name := range THREAD_CONTROL_ENV_VARS {
		commands[i] = fmt.Sprintf("export %s='%d'", name, n)
	}
	return strings.Join(commands, POSIX_EXPORT_SEPARATOR)
}
