// Package version carries build metadata injected via ldflags.
package version

import "fmt"

var (
	// Version is the current application version.
	// It is populated by the build system (ldflags).
	Version = "dev"

	// Commit is the git short hash of the build.
	Commit = "unknown"

	// Date is the build timestamp.
	Date = "unknown"
)

// String renders the build metadata on one line.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
