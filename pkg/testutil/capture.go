// Package testutil provides shared test utilities for helmetscan packages.
package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// captureStream swaps a process stream for a pipe while fn runs and
// returns everything written to it.
//
// The stream pointer targets os.Stdout or os.Stderr. The original file
// is restored before the pipe is drained, so a failing fn never leaves
// the process with a broken stream.
func captureStream(t *testing.T, stream **os.File, fn func()) string {
	t.Helper()

	saved := *stream
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("creating capture pipe: %v", err)
	}
	*stream = w

	fn()

	_ = w.Close()
	*stream = saved

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	_ = r.Close()

	return buf.String()
}

// CaptureStdout runs fn and returns what it wrote to stdout.
//
// Use this for testing code that prints results with fmt.Print and
// friends. Stdout is restored when fn returns.
//
// Parameters:
//   - t: Testing instance for helper marking
//   - fn: Function to run while stdout is captured
//
// Returns:
//   - string: Everything fn wrote to stdout
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()
	return captureStream(t, &os.Stdout, fn)
}

// CaptureStderr runs fn and returns what it wrote to stderr.
//
// Use this for testing error and warning output. Stderr is restored
// when fn returns.
//
// Parameters:
//   - t: Testing instance for helper marking
//   - fn: Function to run while stderr is captured
//
// Returns:
//   - string: Everything fn wrote to stderr
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()
	return captureStream(t, &os.Stderr, fn)
}

// CaptureOutput runs fn and returns what it wrote to stdout and stderr.
//
// Both streams are captured for the duration of fn and restored
// afterwards.
//
// Parameters:
//   - t: Testing instance for helper marking
//   - fn: Function to run while both streams are captured
//
// Returns:
//   - stdout: Everything fn wrote to stdout
//   - stderr: Everything fn wrote to stderr
func CaptureOutput(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()
	stdout = captureStream(t, &os.Stdout, func() {
		stderr = captureStream(t, &os.Stderr, fn)
	})
	return stdout, stderr
}
