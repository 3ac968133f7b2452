// Package version exposes build metadata injected via ldflags.
package version

import "fmt"

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/rshade/holocron/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // Link-time injection targets must be package variables.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// GetVersion returns the semantic version of the binary.
func GetVersion() string {
	return version
}

// String returns a one-line human readable build description.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}
