// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// ColorDict is the canonical application identifier used for filesystem paths and CLI branding.
	ColorDict = "colordict"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build metadata, injected at link time through -ldflags.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
