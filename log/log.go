// Package log provides forge's minimal ansi-colored diagnostic logging.
// The contract (DebugOn/TraceOn toggles, PrintfStdErr, DEBUG/TRACE
// helpers) is reconstructed from its call sites in the CLI rather than
// copied, since the logging package backing those call sites wasn't part
// of the retrieved reference set — see DESIGN.md.
package log

import (
	"fmt"
	"os"

	"github.com/starkandwayne/goutils/ansi"
)

// DebugOn and TraceOn are toggled by the CLI's -D/--debug and -T/--trace
// flags. TraceOn implies DebugOn.
var (
	DebugOn bool
	TraceOn bool
)

// PrintfStdErr writes an ansi-formatted message to stderr.
func PrintfStdErr(format string, args ...interface{}) {
	fmt.Fprint(os.Stderr, ansi.Sprintf(format, args...))
}

// DEBUG writes a debug-level message, if DebugOn.
func DEBUG(format string, args ...interface{}) {
	if !DebugOn {
		return
	}
	PrintfStdErr("@c{DEBUG}: "+format+"\n", args...)
}

// TRACE writes a trace-level message, if TraceOn.
func TRACE(format string, args ...interface{}) {
	if !TraceOn {
		return
	}
	PrintfStdErr("@m{TRACE}: "+format+"\n", args...)
}
