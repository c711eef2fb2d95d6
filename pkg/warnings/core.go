// Package warnings routes non-fatal diagnostics to a swappable writer so
// commands can collect them and replay them after the main output.
package warnings

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu         sync.RWMutex
	warnWriter io.Writer = os.Stderr
)

// Warnf writes a formatted warning to the configured writer.
//
// The format string carries its own newline when one is wanted; Warnf
// adds nothing. Access to the writer is read-locked so warnings from
// concurrent goroutines go to a consistent destination.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Values to format into the message
//
// Returns:
//   - None
func Warnf(format string, args ...any) {
	mu.RLock()
	w := warnWriter
	mu.RUnlock()
	_, _ = fmt.Fprintf(w, format, args...)
}

// Warn writes a single warning message followed by a newline.
//
// Parameters:
//   - msg: The warning message to write
//
// Returns:
//   - None
func Warn(msg string) {
	Warnf("%s\n", msg)
}

// WarningWriter returns the writer warnings currently go to.
//
// Returns:
//   - io.Writer: The configured destination, os.Stderr by default
func WarningWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return warnWriter
}

// SetWarningWriter swaps the warning destination and returns a restore
// function.
//
// It performs the following operations:
//   - Saves the current writer
//   - Installs the new writer, falling back to os.Stderr when w is nil
//   - Returns a function that reinstates the saved writer
//
// The restore function is safe to call exactly once, typically deferred
// or called as soon as the guarded section ends.
//
// Parameters:
//   - w: The new destination; nil selects os.Stderr
//
// Returns:
//   - func(): Restores the previous writer when called
func SetWarningWriter(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()

	previous := warnWriter
	if w == nil {
		warnWriter = os.Stderr
	} else {
		warnWriter = w
	}

	return func() {
		mu.Lock()
		defer mu.Unlock()
		warnWriter = previous
	}
}
