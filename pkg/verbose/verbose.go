// Package verbose prints opt-in debug output with pointers into the docs.
package verbose

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
)

// Enable switches verbose logging on so debug messages start printing.
//
// It performs the following operations:
//   - Takes the write lock guarding package state
//   - Flips the enabled flag to true
//   - Releases the lock
//
// Returns:
//   - None
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable switches verbose logging off so debug messages stop printing.
//
// It performs the following operations:
//   - Takes the write lock guarding package state
//   - Flips the enabled flag to false
//   - Releases the lock
//
// Returns:
//   - None
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled reports whether verbose logging is currently on.
//
// It performs the following operations:
//   - Takes the read lock guarding package state
//   - Reads the enabled flag
//   - Releases the lock
//
// Returns:
//   - bool: true when verbose logging is on
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter redirects verbose output to the given writer.
//
// It performs the following operations:
//   - Takes the write lock guarding package state
//   - Replaces the writer when the argument is non-nil
//   - Releases the lock
//
// Parameters:
//   - w: The destination for verbose output; nil leaves the writer unchanged
//
// Returns:
//   - None
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		writer = w
	}
}

// getWriter reads the current writer under the package lock.
//
// It performs the following operations:
//   - Takes the read lock guarding package state
//   - Reads the writer
//   - Releases the lock
//
// Returns:
//   - io.Writer: The destination verbose output currently goes to
func getWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return writer
}

// isEnabled reads the enabled flag under the package lock.
//
// It performs the following operations:
//   - Takes the read lock guarding package state
//   - Reads the enabled flag
//   - Releases the lock
//
// Returns:
//   - bool: true when verbose logging is on
func isEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// Printf prints a formatted debug message if enabled.
//
// It performs the following operations:
//   - Checks whether verbose logging is on
//   - Writes the formatted message under a [DEBUG] prefix
//   - Does nothing when verbose logging is off
//
// Parameters:
//   - format: Printf-style format string
//   - args: Values substituted into the format string
//
// Returns:
//   - None
func Printf(format string, args ...any) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] "+format+"\n", args...)
	}
}

// Info prints a plain debug message if enabled.
//
// It performs the following operations:
//   - Checks whether verbose logging is on
//   - Writes the message under a [DEBUG] prefix
//   - Does nothing when verbose logging is off
//
// Parameters:
//   - msg: The text to print
//
// Returns:
//   - None
func Info(msg string) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] %s\n", msg)
	}
}

// Infof prints a formatted debug message if enabled.
//
// It performs the following operations:
//   - Checks whether verbose logging is on
//   - Writes the formatted message under a [DEBUG] prefix
//   - Does nothing when verbose logging is off
//
// Parameters:
//   - format: Printf-style format string
//   - args: Values substituted into the format string
//
// Returns:
//   - None
func Infof(format string, args ...any) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] "+format+"\n", args...)
	}
}

// DocRef points a verbose message at the documentation covering its topic.
//
// Fields:
//   - Topic: Human-readable name for the documentation topic
//   - DocPath: Relative path to the documentation file or section
//   - Hint: One line on what the reader will find there
type DocRef struct {
	Topic   string
	DocPath string
	Hint    string
}

// Topics the verbose output can point readers at.
var docRefs = map[string]DocRef{
	"config": {
		Topic:   "Configuration",
		DocPath: "docs/configuration.md",
		Hint:    "See configuration guide for YAML schema and options",
	},
	"dataset": {
		Topic:   "Dataset Source",
		DocPath: "docs/configuration.md#dataset-source",
		Hint:    "Configure the dataset URL, timeout, and response limits",
	},
	"filters": {
		Topic:   "Filter Criteria",
		DocPath: "docs/cli.md#filters",
		Hint:    "See filter flags and their matching semantics",
	},
	"output": {
		Topic:   "Output Formats",
		DocPath: "docs/cli.md#output",
		Hint:    "Choose between report, table, json, csv, and xml output",
	},
	"cli": {
		Topic:   "CLI Reference",
		DocPath: "docs/cli.md",
		Hint:    "See all available commands and flags",
	},
}

// WithDocRef prints a debug message followed by a documentation pointer
// if enabled.
//
// It performs the following operations:
//   - Checks whether verbose logging is on
//   - Writes the message under a [DEBUG] prefix
//   - Appends the doc path and hint when the topic is known
//   - Does nothing when verbose logging is off
//
// Parameters:
//   - topic: The documentation topic key (e.g., "config", "dataset", "filters")
//   - message: The text to print before the pointer
//
// Returns:
//   - None
func WithDocRef(topic, message string) {
	if !isEnabled() {
		return
	}
	w := getWriter()
	ref, ok := docRefs[strings.ToLower(topic)]
	if ok {
		_, _ = fmt.Fprintf(w, "[DEBUG] %s\n", message)
		_, _ = fmt.Fprintf(w, "        📖 %s: %s\n", ref.Topic, ref.DocPath)
		_, _ = fmt.Fprintf(w, "        💡 %s\n", ref.Hint)
	} else {
		_, _ = fmt.Fprintf(w, "[DEBUG] %s\n", message)
	}
}

// ConfigHelp explains a configuration field problem and its fix if enabled.
//
// It performs the following operations:
//   - Checks whether verbose logging is on
//   - Names the field and describes the issue
//   - Prints the suggested fix and a documentation pointer
//   - Does nothing when verbose logging is off
//
// Parameters:
//   - field: The configuration field at fault
//   - issue: What is wrong with it
//   - solution: How to fix it
//
// Returns:
//   - None
func ConfigHelp(field, issue, solution string) {
	if !isEnabled() {
		return
	}
	w := getWriter()
	_, _ = fmt.Fprintf(w, "[DEBUG] Field '%s': %s\n", field, issue)
	_, _ = fmt.Fprintf(w, "        Solution: %s\n", solution)
	_, _ = fmt.Fprintf(w, "        📖 See: docs/configuration.md\n")
}

// FetchStarted logs the start of a dataset download if enabled.
//
// It performs the following operations:
//   - Checks whether verbose logging is on
//   - Prints the URL being fetched and the configured timeout
//   - Does nothing when verbose logging is off
//
// Parameters:
//   - url: The dataset URL being requested
//   - timeout: The request timeout in effect
//
// Returns:
//   - None
func FetchStarted(url string, timeout time.Duration) {
	if isEnabled() {
		w := getWriter()
		_, _ = fmt.Fprintf(w, "[DEBUG] Fetching dataset: %s\n", url)
		_, _ = fmt.Fprintf(w, "        Timeout: %s\n", timeout)
	}
}

// FetchCompleted logs the result of a dataset download if enabled.
//
// It performs the following operations:
//   - Checks whether verbose logging is on
//   - Prints the response size and elapsed time
//   - Does nothing when verbose logging is off
//
// Parameters:
//   - url: The dataset URL that was requested
//   - size: The number of body bytes received
//   - elapsed: The wall-clock duration of the request
//
// Returns:
//   - None
func FetchCompleted(url string, size int, elapsed time.Duration) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Fetched %d bytes from %s in %s\n", size, url, elapsed.Round(time.Millisecond))
	}
}

// DatasetPreview logs the leading lines of a fetched body if enabled.
//
// It performs the following operations:
//   - Checks whether verbose logging is on
//   - Prints up to 5 lines of the body with truncation
//   - Collapses longer bodies to the first 3 lines plus a line count
//   - Does nothing when verbose logging is off
//
// Parameters:
//   - body: The raw response body text
//
// Returns:
//   - None
func DatasetPreview(body string) {
	if !isEnabled() {
		return
	}
	w := getWriter()
	_, _ = fmt.Fprintf(w, "[DEBUG] Response preview:\n")
	if body == "" {
		_, _ = fmt.Fprintf(w, "        | (empty body)\n")
		return
	}
	lines := strings.Split(strings.TrimSpace(body), "\n")
	if len(lines) > 5 {
		for _, line := range lines[:3] {
			_, _ = fmt.Fprintf(w, "        | %s\n", truncate(line, 100))
		}
		_, _ = fmt.Fprintf(w, "        | ... (%d more lines)\n", len(lines)-3)
	} else {
		for _, line := range lines {
			_, _ = fmt.Fprintf(w, "        | %s\n", truncate(line, 100))
		}
	}
}

// DatasetParsed logs how many records the dataset produced if enabled.
//
// It performs the following operations:
//   - Checks whether verbose logging is on
//   - Prints the number of records decoded from the dataset
//   - Does nothing when verbose logging is off
//
// Parameters:
//   - count: The number of helmet records parsed
//
// Returns:
//   - None
func DatasetParsed(count int) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Parsed %d helmet records\n", count)
	}
}

// UnknownField logs an unrecognized dataset field if enabled.
//
// It performs the following operations:
//   - Checks whether verbose logging is on
//   - Prints the record name and the field key that was ignored
//   - Does nothing when verbose logging is off
//
// Parameters:
//   - record: The display name of the record carrying the field
//   - key: The unrecognized field key
//
// Returns:
//   - None
func UnknownField(record, key string) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Record '%s' has unrecognized field '%s': ignored\n", truncate(record, 60), key)
	}
}

// RecordExcluded logs when a record fails a filter criterion if enabled.
//
// It performs the following operations:
//   - Checks whether verbose logging is on
//   - Prints the record name and the criterion it failed
//   - Does nothing when verbose logging is off
//
// Parameters:
//   - name: The display name of the excluded record
//   - criterion: The filter criterion the record failed
//
// Returns:
//   - None
func RecordExcluded(name, criterion string) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Record '%s' excluded: %s\n", truncate(name, 60), criterion)
	}
}

// FilterApplied logs filtering totals if enabled.
//
// It performs the following operations:
//   - Checks whether verbose logging is on
//   - Prints the dataset size and the number of matching records
//   - Does nothing when verbose logging is off
//
// Parameters:
//   - total: The number of records before filtering
//   - matched: The number of records after filtering
//
// Returns:
//   - None
func FilterApplied(total, matched int) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Filtered %d records down to %d\n", total, matched)
	}
}

// ConfigLoaded logs where the active configuration came from if enabled.
//
// It performs the following operations:
//   - Checks whether verbose logging is on
//   - Prints the config file path or source label
//   - Lists any environment variables that overrode file values
//   - Does nothing when verbose logging is off
//
// Parameters:
//   - path: The config file path, or a label such as "built-in defaults"
//   - overrides: Names of environment variables that overrode file values
//
// Returns:
//   - None
func ConfigLoaded(path string, overrides []string) {
	if !isEnabled() {
		return
	}
	w := getWriter()
	_, _ = fmt.Fprintf(w, "[DEBUG] Config loaded: %s\n", path)
	if len(overrides) > 0 {
		_, _ = fmt.Fprintf(w, "        Env overrides: %v\n", overrides)
	}
}

// truncate caps a string at maxLen bytes, marking the cut with "...".
//
// It performs the following operations:
//   - Returns the string unchanged when it already fits
//   - Otherwise keeps the first maxLen-3 bytes and appends "..."
//
// Parameters:
//   - s: The string to cap
//   - maxLen: The longest result allowed (must be at least 3)
//
// Returns:
//   - string: The input, shortened and suffixed with "..." when it was too long
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
