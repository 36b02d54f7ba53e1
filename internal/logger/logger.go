// Package logger provides diagnostic logging for the Lexa CLI.
// Debug, Info and Section messages are printed to stderr only when verbose
// mode is enabled via the --verbose flag. Warnings report input that was
// skipped (malformed trees, oversized text, pattern timeouts) and are printed
// unless the logger has been silenced.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	silent  bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetSilent suppresses warnings. The TUI uses it so diagnostics do not
// draw over the alternate screen.
func SetSilent(s bool) {
	mu.Lock()
	defer mu.Unlock()
	silent = s
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf(verboseOnly, "[DEBUG] "+format+"\n", args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	logf(verboseOnly, "\n=== %s ===\n", name)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf(verboseOnly, "[INFO] "+format+"\n", args...)
}

// Warn prints a warning unless the logger is silent.
func Warn(format string, args ...any) {
	logf(unlessSilent, "[WARN] "+format+"\n", args...)
}

type gate int

const (
	verboseOnly gate = iota
	unlessSilent
)

func logf(g gate, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()

	switch g {
	case verboseOnly:
		if !verbose {
			return
		}
	case unlessSilent:
		if silent {
			return
		}
	}
	fmt.Fprintf(output, format, args...)
}
