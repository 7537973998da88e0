// Package version holds the build version string.
package version

// Version is overridden at link time with -ldflags "-X rptidx/internal/version.Version=...".
var Version = "0.3.0"
