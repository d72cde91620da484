// Package version holds the engine version string.
package version

// Version is set at build time via -ldflags "-X cmg/internal/version.Version=..."
var Version = "0.1.0-dev"
