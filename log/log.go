// Package log is the toolkit's side-channel logger. Tool results travel back
// to the caller through return values; everything here goes to a separate
// sink (stderr by default) so an embedding agent never finds diagnostics
// mixed into a result payload.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"
)

var (
	verbose bool
	exit    = os.Exit
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetFlags(0) // We handle prefixes and file info ourselves.
}

// Init redirects all logging to w. Call it before anything logs; embedders
// that capture diagnostics (test harnesses, the CLI's quiet mode) pass their
// own writer.
func Init(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	log.SetOutput(w)
}

// SetVerbose enables debug-level output.
func SetVerbose(on bool) {
	verbose = on
}

// Debug logs a formatted message only when verbose mode is on.
func Debug(format string, args ...any) {
	if !verbose {
		return
	}
	log.Printf("[DEBUG] %s\n", fmt.Sprintf(format, args...))
}

// Info logs a formatted informational message.
func Info(format string, args ...any) {
	log.Printf("[INFO] %s\n", fmt.Sprintf(format, args...))
}

// Warn logs a formatted warning.
func Warn(format string, args ...any) {
	log.Printf("[WARN] %s\n", fmt.Sprintf(format, args...))
}

// Error logs an error with the caller's location.
func Error(context string, err error) {
	log.Printf("[ERROR] in %s: %s\n%v\n", callerInfo(), context, err)
}

// Fatal logs an error and then exits the program.
func Fatal(context string, err error) {
	Error(context, err)
	exit(1)
}

// callerInfo names the file and line two frames up, trimmed to the last two
// path segments.
func callerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	parts := strings.Split(file, "/")
	if len(parts) > 2 {
		file = strings.Join(parts[len(parts)-2:], "/")
	}
	return fmt.Sprintf("%s:%d", file, line)
}
