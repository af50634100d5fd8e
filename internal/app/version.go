package app

import "fmt"

// Build metadata, stamped through ldflags, e.g.
// -X github.com/ai4s-oj/lyrio/internal/app.Version=$(git describe).
// The zero values identify an unstamped developer build.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion renders the stamped metadata as a single line for the
// startup log record.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
