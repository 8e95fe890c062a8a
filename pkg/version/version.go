// Package version exposes build metadata injected via -ldflags:
//
//	go build -ldflags "-X github.com/jazzharmony/pbxkit/pkg/version.Version=v0.3.1"
package version

import "fmt"

// Build-time variables. Unreleased builds report "dev".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the build metadata in a form suitable for JSON output.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get returns the current build metadata.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// String formats the metadata on one line.
func (i Info) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}
