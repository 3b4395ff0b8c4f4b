// Package version provides build information for the dirdoc CLI.
package version

import (
	"fmt"
	"runtime"
)

// These variables are populated at build time using -ldflags.
// Example:
// go build -ldflags "-X 'github.com/mouse-blink/dirdoc/internal/version.Version=1.2.3' -X 'github.com/mouse-blink/dirdoc/internal/version.Commit=abcdefg'"
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info contains comprehensive version information.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string // OS and architecture
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns the version information in a single line, e.g.
// dirdoc version 1.2.3 (commit: abcdefg) built at 2024-04-27T15:04:05Z with go1.25.1 on linux/amd64
func (i Info) String() string {
	return fmt.Sprintf(
		"dirdoc version %s (commit: %s) built at %s with %s on %s",
		i.Version,
		i.GitCommit,
		i.BuildTime,
		i.GoVersion,
		i.Platform,
	)
}
