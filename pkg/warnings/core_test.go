package warnings

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSetWarningWriterRestoresAndCaptures tests swapping the warning writer.
//
// It verifies:
//   - Warnings land in the swapped-in writer
//   - The restore function puts the previous writer back
//   - A nil writer falls back to os.Stderr
func TestSetWarningWriterRestoresAndCaptures(t *testing.T) {
	original := warnWriter

	var buf bytes.Buffer
	restore := SetWarningWriter(&buf)
	Warnf("skipping record with missing score\n")
	restore()

	assert.Equal(t, original, warnWriter)
	assert.Contains(t, buf.String(), "skipping record with missing score")

	restore = SetWarningWriter(nil)
	restore()
	assert.Equal(t, os.Stderr, warnWriter)
}

// TestWarnAppendsNewline tests the behavior of Warn.
//
// It verifies:
//   - The message is written to the configured writer
//   - A trailing newline is appended
func TestWarnAppendsNewline(t *testing.T) {
	var buf bytes.Buffer
	restore := SetWarningWriter(&buf)
	defer restore()

	Warn("dataset is empty")

	assert.Equal(t, "dataset is empty\n", buf.String())
}

// TestWarnfFormatsArguments tests the behavior of Warnf.
//
// It verifies:
//   - Format arguments are interpolated
//   - Warnf adds no newline of its own
func TestWarnfFormatsArguments(t *testing.T) {
	var buf bytes.Buffer
	restore := SetWarningWriter(&buf)
	defer restore()

	Warnf("record %d of %d dropped", 2, 15)

	assert.Equal(t, "record 2 of 15 dropped", buf.String())
}

// TestWarningWriterReturnsCurrent tests reading the active warning writer.
//
// It verifies:
//   - WarningWriter reports the writer currently in effect
//   - Swaps and restores are both visible through it
func TestWarningWriterReturnsCurrent(t *testing.T) {
	original := warnWriter
	assert.Equal(t, original, WarningWriter())

	var buf bytes.Buffer
	restore := SetWarningWriter(&buf)
	assert.Equal(t, &buf, WarningWriter())
	restore()

	assert.Equal(t, original, WarningWriter())
}
