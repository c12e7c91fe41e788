// Package version carries the build metadata of the gocube binary.
package version

import "fmt"

// These variables are set via ldflags during build, for example
// -X github.com/philipparndt/gocube/version.Version=1.0.0
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetVersion returns the version string
func GetVersion() string {
	return Version
}

// GetFullVersion adds commit and build date when they were stamped
func GetFullVersion() string {
	if GitCommit == "unknown" && BuildDate == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate)
}
