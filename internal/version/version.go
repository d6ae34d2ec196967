// Package version carries build metadata injected at link time.
package version

import "fmt"

// Set via -ldflags at release time; defaults identify development builds.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns the full version line shown by --version.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}
