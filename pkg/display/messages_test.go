package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velosafe/helmetscan/pkg/warnings"
)

// TestPrintWarnings tests the behavior of PrintWarnings.
//
// It verifies:
//   - Prints a leading blank line before the first warning
//   - Prefixes every message with the warning icon
//   - Writes nothing when there are no messages
func TestPrintWarnings(t *testing.T) {
	t.Run("prints prefixed messages", func(t *testing.T) {
		var buf bytes.Buffer
		PrintWarnings(&buf, []string{
			"record #2: missing brand field",
			"record #5: ignoring cost value \"free\", treating as missing",
		})

		expected := "\n" +
			"⚠️ record #2: missing brand field\n" +
			"⚠️ record #5: ignoring cost value \"free\", treating as missing\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("empty slice writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		PrintWarnings(&buf, nil)
		assert.Empty(t, buf.String())

		PrintWarnings(&buf, []string{})
		assert.Empty(t, buf.String())
	})
}

// TestWarningCollector tests the behavior of WarningCollector.
//
// It verifies:
//   - Collects written lines as individual messages
//   - Trims whitespace and drops blank lines
//   - Returns an independent copy from Messages
//   - Reset clears collected messages
func TestWarningCollector(t *testing.T) {
	t.Run("collects lines", func(t *testing.T) {
		c := NewWarningCollector()

		n, err := c.Write([]byte("first warning\n"))
		assert.NoError(t, err)
		assert.Equal(t, len("first warning\n"), n)

		_, err = c.Write([]byte("second warning\n"))
		assert.NoError(t, err)

		assert.Equal(t, []string{"first warning", "second warning"}, c.Messages())
	})

	t.Run("splits multi-line writes", func(t *testing.T) {
		c := NewWarningCollector()

		_, err := c.Write([]byte("one\ntwo\n\nthree\n"))
		assert.NoError(t, err)

		assert.Equal(t, []string{"one", "two", "three"}, c.Messages())
	})

	t.Run("messages copy is independent", func(t *testing.T) {
		c := NewWarningCollector()
		_, _ = c.Write([]byte("original\n"))

		msgs := c.Messages()
		msgs[0] = "mutated"

		assert.Equal(t, []string{"original"}, c.Messages())
	})

	t.Run("reset clears messages", func(t *testing.T) {
		c := NewWarningCollector()
		_, _ = c.Write([]byte("stale\n"))

		c.Reset()
		assert.Empty(t, c.Messages())
	})

	t.Run("empty collector returns empty slice", func(t *testing.T) {
		c := NewWarningCollector()
		assert.Empty(t, c.Messages())
	})
}

// TestWarningCollectorWithWarnf tests collector integration with the
// warnings package.
//
// It verifies:
//   - Warnf output routed to a collector is captured as clean messages
//   - The restore function reinstates the previous writer
func TestWarningCollectorWithWarnf(t *testing.T) {
	collector := NewWarningCollector()
	restore := warnings.SetWarningWriter(collector)

	warnings.Warnf("record %s: ignoring %s value %v, treating as missing\n", "#3", "score", "n/a")
	restore()

	msgs := collector.Messages()
	assert.Equal(t, []string{`record #3: ignoring score value n/a, treating as missing`}, msgs)

	// After restore, further warnings must not reach the collector.
	var sink bytes.Buffer
	restore2 := warnings.SetWarningWriter(&sink)
	warnings.Warnf("later warning\n")
	restore2()

	assert.Len(t, collector.Messages(), 1)
	assert.Contains(t, sink.String(), "later warning")
}
