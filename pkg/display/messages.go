package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/velosafe/helmetscan/pkg/constants"
)

// PrintWarnings replays collected warning messages to the writer.
//
// A blank line separates the warnings from whatever preceded them, and
// each message gets the warning icon prefix. Nothing is written when
// the slice is empty.
//
// Parameters:
//   - w: Destination writer (typically os.Stderr)
//   - warnings: The messages to replay, one per line
//
// Example output:
//
//	<blank line>
//	⚠️ record #3: invalid cost value free, treating as missing
//	⚠️ record Bell Span: invalid rating value five, treating as missing
func PrintWarnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}

	_, _ = fmt.Fprintln(w)
	for _, warning := range warnings {
		_, _ = fmt.Fprintf(w, "%s %s\n", constants.IconWarn, warning)
	}
}

// WarningCollector buffers warnings raised during fetch and parse so
// they can be replayed after the main output instead of interleaving
// with it.
//
// The collector implements io.Writer and is installed with
// warnings.SetWarningWriter for the duration of the dataset load:
//
//	collector := display.NewWarningCollector()
//	restore := warnings.SetWarningWriter(collector)
//	// ... fetch and parse ...
//	restore()
//	display.PrintWarnings(os.Stderr, collector.Messages())
type WarningCollector struct {
	messages []string
}

// Write captures warning text, one message per line.
//
// Multi-line writes are split on newlines; blank lines and surrounding
// whitespace are dropped so Messages returns clean message text.
//
// Parameters:
//   - p: The warning bytes as written by the warnings package
//
// Returns:
//   - int: len(p), the write never short-counts
//   - error: Always nil
func (c *WarningCollector) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(p), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			c.messages = append(c.messages, trimmed)
		}
	}
	return len(p), nil
}

// Messages returns the collected warnings in arrival order.
//
// The returned slice is a copy, so callers can hold it across a Reset.
//
// Returns:
//   - []string: The collected messages, empty when none arrived
func (c *WarningCollector) Messages() []string {
	copied := make([]string, len(c.messages))
	copy(copied, c.messages)
	return copied
}

// Reset drops all collected messages so the collector can be reused.
func (c *WarningCollector) Reset() {
	c.messages = nil
}

// NewWarningCollector creates an empty collector.
//
// Returns:
//   - *WarningCollector: A collector ready to install as a warning writer
func NewWarningCollector() *WarningCollector {
	return &WarningCollector{}
}
