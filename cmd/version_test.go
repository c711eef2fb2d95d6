package cmd

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velosafe/helmetscan/pkg/testutil"
)

// TestRunVersion tests the behavior of the version command output.
//
// It verifies:
//   - Build target, Go version, and version string are printed
//   - Build date and git commit appear only when set
func TestRunVersion(t *testing.T) {
	oldVersion, oldTime, oldCommit := Version, BuildTime, GitCommit
	defer func() {
		Version = oldVersion
		BuildTime = oldTime
		GitCommit = oldCommit
	}()

	t.Run("dev build", func(t *testing.T) {
		Version = "dev"
		BuildTime = ""
		GitCommit = ""

		out := testutil.CaptureStdout(t, func() {
			runVersion(versionCmd, nil)
		})

		assert.Contains(t, out, "Build:")
		assert.Contains(t, out, "Go:      "+runtime.Version())
		assert.Contains(t, out, "Version: dev")
		assert.NotContains(t, out, "Date:")
		assert.NotContains(t, out, "Git:")
	})

	t.Run("release build", func(t *testing.T) {
		Version = "1.2.3"
		BuildTime = "2024-06-01T10:00:00Z"
		GitCommit = "abc1234"

		out := testutil.CaptureStdout(t, func() {
			runVersion(versionCmd, nil)
		})

		assert.Contains(t, out, "Version: 1.2.3")
		assert.Contains(t, out, "Date:    2024-06-01T10:00:00Z")
		assert.Contains(t, out, "Git:     abc1234")
	})
}

// TestVersionCommand tests the version subcommand end to end.
//
// It verifies:
//   - Running "helmetscan version" prints version information
func TestVersionCommand(t *testing.T) {
	var err error
	out := testutil.CaptureStdout(t, func() {
		err = executeRoot(t, "version")
	})

	require.NoError(t, err)
	assert.Contains(t, out, "Version: ")
}

// TestGetVersion tests the behavior of GetVersion.
//
// It verifies:
//   - The current Version value is returned
func TestGetVersion(t *testing.T) {
	oldVersion := Version
	defer func() { Version = oldVersion }()

	Version = "9.9.9"
	assert.Equal(t, "9.9.9", GetVersion())
}

// TestGetBuildTarget tests the behavior of getBuildTarget.
//
// It verifies:
//   - Runtime values are used when build values are unset
//   - Explicit build values win over runtime values
func TestGetBuildTarget(t *testing.T) {
	oldOS, oldArch := BuildOS, BuildArch
	defer func() {
		BuildOS = oldOS
		BuildArch = oldArch
	}()

	t.Run("falls back to runtime", func(t *testing.T) {
		BuildOS = ""
		BuildArch = ""

		gotOS, gotArch := getBuildTarget()
		assert.Equal(t, runtime.GOOS, gotOS)
		assert.Equal(t, runtime.GOARCH, gotArch)
	})

	t.Run("explicit values win", func(t *testing.T) {
		BuildOS = "plan9"
		BuildArch = "riscv64"

		gotOS, gotArch := getBuildTarget()
		assert.Equal(t, "plan9", gotOS)
		assert.Equal(t, "riscv64", gotArch)
	})
}
