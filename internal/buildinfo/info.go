// Package buildinfo holds the version information of the binary.
package buildinfo

var (
	// Version will be set via ldflags during build.
	Version = "0.0.0"
	// Commit will be set via ldflags during build.
	Commit = "none"
)
