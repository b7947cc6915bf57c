// Package log is the resolver's diagnostic sink (spec.md §6): a small set
// of package-level functions gated by package-level toggles, dot-imported
// the way graft's own (unexported-from-the-pack) log package is used
// throughout pkg/graft -- log.DEBUG(...), log.TRACE(...), and the
// -D/-T-flag-driven log.DebugOn/log.TraceOn booleans that cmd/graft's
// main.go flips on.
package log

import (
	"fmt"
	"os"

	"github.com/antmicro/ctfresolve/internal/utils/ansi"
)

// DebugOn gates DEBUG output. Flipped on by -D/--debug or a DEBUG env var.
var DebugOn bool

// TraceOn gates TRACE output only. Flipped on by -T/--trace or a TRACE env
// var; cmd/ctfresolve's main.go sets DebugOn along with it, as cmd/graft's
// own main.go does.
var TraceOn bool

// Level names the six diagnostic levels from spec.md §6.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarning
	LevelError
	LevelFatal
)

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

func (l Level) color() string {
	switch l {
	case LevelTrace:
		return "w"
	case LevelDebug:
		return "c"
	case LevelInfo:
		return "g"
	case LevelWarning:
		return "Y"
	case LevelError, LevelFatal:
		return "R"
	default:
		return "w"
	}
}

// PrintfStdOut writes a raw, uncolored line to stdout.
func PrintfStdOut(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format, args...)
}

// PrintfStdErr writes a raw, uncolored line to stderr.
func PrintfStdErr(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func emit(level Level, format string, args ...interface{}) {
	prefix := ansi.Sprintf("@"+level.color()+"{["+level.String()+"]}")
	fmt.Fprintf(os.Stderr, prefix+" "+format+"\n", args...)
}

// TRACE logs at trace level when TraceOn is set.
func TRACE(format string, args ...interface{}) {
	if TraceOn {
		emit(LevelTrace, format, args...)
	}
}

// DEBUG logs at debug level when DebugOn is set.
func DEBUG(format string, args ...interface{}) {
	if DebugOn {
		emit(LevelDebug, format, args...)
	}
}

// INFO logs at info level unconditionally.
func INFO(format string, args ...interface{}) {
	emit(LevelInfo, format, args...)
}

// WARN logs at warning level unconditionally.
func WARN(format string, args ...interface{}) {
	emit(LevelWarning, format, args...)
}

// ERROR logs at error level unconditionally.
func ERROR(format string, args ...interface{}) {
	emit(LevelError, format, args...)
}

// Fatal logs at fatal level and terminates the process, matching the
// teacher's log.Fatal call sites (cmd/graft exits non-zero on fatal errors
// rather than panicking).
func Fatal(format string, args ...interface{}) {
	emit(LevelFatal, format, args...)
	os.Exit(1)
}
