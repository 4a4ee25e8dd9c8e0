// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

import _ "embed"

const (
	// Vodo is the canonical application identifier used for filesystem paths and CLI branding.
	Vodo = "vodo"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the HTTP User-Agent string sent to the catalog API.
	UserAgent = Vodo + "/" + Version + " (+https://github.com/vodo-app/vodo)"
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// AsciiArtLogo is printed at the top of the root command help.
//
//go:embed ascii.txt
var AsciiArtLogo string
