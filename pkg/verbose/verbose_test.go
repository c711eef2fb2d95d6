package verbose

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestEnableDisable tests toggling the verbose state.
//
// It verifies:
//   - IsEnabled reflects Enable and Disable calls
//   - Toggling is repeatable
func TestEnableDisable(t *testing.T) {
	Disable()
	assert.False(t, IsEnabled())

	Enable()
	assert.True(t, IsEnabled())

	Disable()
	assert.False(t, IsEnabled())
}

// TestSetWriter tests redirecting verbose output.
//
// It verifies:
//   - Messages land in the configured writer
//   - A nil writer leaves the previous writer in place
func TestSetWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	Enable()
	Printf("writer probe")
	Disable()

	assert.Contains(t, buf.String(), "[DEBUG] writer probe")

	// nil must not clobber the buffer
	SetWriter(nil)
	buf.Reset()
	Enable()
	Printf("second probe")
	Disable()
	assert.Contains(t, buf.String(), "[DEBUG] second probe")
}

// TestPrintf tests the formatted debug printer.
//
// It verifies:
//   - Nothing prints while verbose is off
//   - The format arguments are interpolated under the [DEBUG] prefix
func TestPrintf(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	Disable()
	Printf("should not appear")
	assert.Empty(t, buf.String())

	Enable()
	Printf("retained %d of %d records", 3, 20)
	Disable()

	assert.Contains(t, buf.String(), "[DEBUG] retained 3 of 20 records")
}

// TestInfo tests the plain debug printer.
//
// It verifies:
//   - Nothing prints while verbose is off
//   - The message prints under the [DEBUG] prefix when on
func TestInfo(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	Disable()
	Info("should not appear")
	assert.Empty(t, buf.String())

	Enable()
	Info("Using built-in default configuration")
	Disable()

	assert.Contains(t, buf.String(), "[DEBUG] Using built-in default configuration")
}

// TestInfof tests the formatted variant of Info.
//
// It verifies:
//   - Nothing prints while verbose is off
//   - The format arguments are interpolated when on
func TestInfof(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	Disable()
	Infof("should not %s", "appear")
	assert.Empty(t, buf.String())

	Enable()
	Infof("sorted %d records by %s", 7, "safety score")
	Disable()

	assert.Contains(t, buf.String(), "[DEBUG] sorted 7 records by safety score")
}

func TestWithDocRef(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	Disable()
	WithDocRef("dataset", "should not appear")
	assert.Empty(t, buf.String())

	// Known topic gets the pointer lines
	Enable()
	WithDocRef("dataset", "dataset url unreachable")
	output := buf.String()
	Disable()

	assert.Contains(t, output, "[DEBUG] dataset url unreachable")
	assert.Contains(t, output, "Dataset Source")
	assert.Contains(t, output, "docs/configuration.md#dataset-source")

	// Unknown topic prints only the message
	buf.Reset()
	Enable()
	WithDocRef("no-such-topic", "bare message")
	output = buf.String()
	Disable()

	assert.Contains(t, output, "[DEBUG] bare message")
	assert.NotContains(t, output, "📖")
}

func TestWithDocRefAllTopics(t *testing.T) {
	for _, topic := range []string{"config", "dataset", "filters", "output", "cli"} {
		t.Run(topic, func(t *testing.T) {
			buf := &bytes.Buffer{}
			SetWriter(buf)
			Enable()
			WithDocRef(topic, "probe")
			Disable()

			assert.Contains(t, buf.String(), "[DEBUG] probe")
			assert.Contains(t, buf.String(), "📖")
		})
	}
}

func TestConfigHelp(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	Disable()
	ConfigHelp("timeout_seconds", "issue", "solution")
	assert.Empty(t, buf.String())

	Enable()
	ConfigHelp("timeout_seconds", "must be positive", "set a value above zero")
	output := buf.String()
	Disable()

	assert.Contains(t, output, "[DEBUG] Field 'timeout_seconds': must be positive")
	assert.Contains(t, output, "Solution: set a value above zero")
	assert.Contains(t, output, "docs/configuration.md")
}

func TestFetchStarted(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	// When disabled, no output
	Disable()
	FetchStarted("https://example.com/data.js", 30*time.Second)
	assert.Empty(t, buf.String())

	// When enabled, output appears
	Enable()
	FetchStarted("https://example.com/data.js", 30*time.Second)
	output := buf.String()
	Disable()

	assert.Contains(t, output, "[DEBUG] Fetching dataset: https://example.com/data.js")
	assert.Contains(t, output, "Timeout: 30s")
}

func TestFetchCompleted(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	// When disabled, no output
	Disable()
	FetchCompleted("https://example.com/data.js", 2048, 150*time.Millisecond)
	assert.Empty(t, buf.String())

	// When enabled, output appears
	Enable()
	FetchCompleted("https://example.com/data.js", 2048, 150*time.Millisecond)
	output := buf.String()
	Disable()

	assert.Contains(t, output, "[DEBUG] Fetched 2048 bytes from https://example.com/data.js in 150ms")
}

func TestDatasetPreview(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	// When disabled, no output
	Disable()
	DatasetPreview("const bicycleDataRaw = [];")
	assert.Empty(t, buf.String())

	// Short body prints every line
	Enable()
	DatasetPreview("line1\nline2")
	output := buf.String()
	Disable()

	assert.Contains(t, output, "Response preview:")
	assert.Contains(t, output, "| line1")
	assert.Contains(t, output, "| line2")

	// Empty body
	buf.Reset()
	Enable()
	DatasetPreview("")
	output = buf.String()
	Disable()

	assert.Contains(t, output, "(empty body)")

	// Long bodies collapse to the first 3 lines plus a count
	buf.Reset()
	Enable()
	multiLine := strings.Join([]string{"line1", "line2", "line3", "line4", "line5", "line6", "line7"}, "\n")
	DatasetPreview(multiLine)
	output = buf.String()
	Disable()

	assert.Contains(t, output, "line1")
	assert.Contains(t, output, "line2")
	assert.Contains(t, output, "line3")
	assert.Contains(t, output, "... (4 more lines)")
	assert.NotContains(t, output, "line4")
	assert.NotContains(t, output, "line7")
}

func TestDatasetParsed(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	// When disabled, no output
	Disable()
	DatasetParsed(12)
	assert.Empty(t, buf.String())

	// When enabled, output appears
	Enable()
	DatasetParsed(12)
	output := buf.String()
	Disable()

	assert.Contains(t, output, "[DEBUG] Parsed 12 helmet records")
}

func TestUnknownField(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	// When disabled, no output
	Disable()
	UnknownField("Giro Register", "warranty")
	assert.Empty(t, buf.String())

	// When enabled, output appears
	Enable()
	UnknownField("Giro Register", "warranty")
	output := buf.String()
	Disable()

	assert.Contains(t, output, "[DEBUG] Record 'Giro Register' has unrecognized field 'warranty': ignored")
}

func TestRecordExcluded(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	// When disabled, no output
	Disable()
	RecordExcluded("Giro Register", "style")
	assert.Empty(t, buf.String())

	// When enabled, output appears
	Enable()
	RecordExcluded("Giro Register", "style")
	output := buf.String()
	Disable()

	assert.Contains(t, output, "[DEBUG] Record 'Giro Register' excluded: style")
}

func TestFilterApplied(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	// When disabled, no output
	Disable()
	FilterApplied(20, 3)
	assert.Empty(t, buf.String())

	// When enabled, output appears
	Enable()
	FilterApplied(20, 3)
	output := buf.String()
	Disable()

	assert.Contains(t, output, "[DEBUG] Filtered 20 records down to 3")
}

func TestConfigLoaded(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	// When disabled, no output
	Disable()
	ConfigLoaded("/path/to/config.yml", []string{"HELMETSCAN_DATASET_URL"})
	assert.Empty(t, buf.String())

	// With env overrides
	Enable()
	ConfigLoaded("/path/to/config.yml", []string{"HELMETSCAN_DATASET_URL", "HELMETSCAN_TIMEOUT_SECONDS"})
	output := buf.String()
	Disable()

	assert.Contains(t, output, "[DEBUG] Config loaded: /path/to/config.yml")
	assert.Contains(t, output, "Env overrides: [HELMETSCAN_DATASET_URL HELMETSCAN_TIMEOUT_SECONDS]")

	// Without overrides
	buf.Reset()
	Enable()
	ConfigLoaded("/path/to/config.yml", nil)
	output = buf.String()
	Disable()

	assert.Contains(t, output, "[DEBUG] Config loaded: /path/to/config.yml")
	assert.NotContains(t, output, "Env overrides:")
}

func TestTruncate(t *testing.T) {
	// Fits within the cap
	assert.Equal(t, "Giro", truncate("Giro", 10))

	// Exactly at the cap
	assert.Equal(t, "Aries", truncate("Aries", 5))

	// Over the cap gets the ellipsis marker
	assert.Equal(t, "Specialized...", truncate("Specialized Tactic 4 MIPS", 14))

	// Smallest workable cap leaves only the marker
	assert.Equal(t, "...", truncate("MIPS", 3))
}
