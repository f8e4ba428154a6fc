// Package version carries build metadata injected with -ldflags.
package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/scrpatch/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/scrpatch/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/scrpatch/internal/version.Date={{.Date}}
)

// String renders the version block printed by the version command.
func String() string {
	return fmt.Sprintf("scrpatch version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
