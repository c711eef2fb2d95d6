package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build metadata injected at link time.
// Example: go build -ldflags="-X github.com/velosafe/helmetscan/cmd.Version=1.0.0"
var (
	// Version is the semantic version, "dev" when unset.
	Version = "dev"
	// BuildTime is the release build timestamp.
	BuildTime = ""
	// GitCommit is the commit the binary was built from.
	GitCommit = ""
	// BuildOS is the GOOS the binary targets.
	BuildOS = ""
	// BuildArch is the GOARCH the binary targets.
	BuildArch = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build details",
	Long:  `Show the helmetscan version, build platform, and build metadata.`,
	Run:   runVersion,
}

// versionCmd registers in root.go's init() so the command order stays fixed.

// runVersion prints the build and version details to stdout.
//
// The output lists the build target, the runtime platform when it
// differs from the target, the Go version, and then the date, commit,
// and version lines. Date and commit only print when the build set
// them, so dev builds stay short.
func runVersion(cmd *cobra.Command, args []string) {
	buildOS, buildArch := getBuildTarget()
	fmt.Printf("  Build:   %s/%s\n", buildOS, buildArch)

	if buildOS != runtime.GOOS || buildArch != runtime.GOARCH {
		fmt.Printf("  Runtime: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	}

	fmt.Printf("  Go:      %s\n", runtime.Version())
	if BuildTime != "" {
		fmt.Printf("  Date:    %s\n", BuildTime)
	}
	fmt.Println()
	if GitCommit != "" {
		fmt.Printf("  Git:     %s\n", GitCommit)
	}
	fmt.Printf("  Version: %s\n", Version)
}

// GetVersion returns the version string.
//
// Returns:
//   - string: The linked version, or "dev" for local builds
func GetVersion() string {
	return Version
}

// getBuildTarget returns the OS and architecture the binary targets.
//
// Local builds have no linked values, so empty fields fall back to the
// runtime platform.
//
// Returns:
//   - string: Target operating system (e.g., "linux", "darwin")
//   - string: Target architecture (e.g., "amd64", "arm64")
func getBuildTarget() (string, string) {
	buildOS := BuildOS
	buildArch := BuildArch

	if buildOS == "" {
		buildOS = runtime.GOOS
	}
	if buildArch == "" {
		buildArch = runtime.GOARCH
	}

	return buildOS, buildArch
}
