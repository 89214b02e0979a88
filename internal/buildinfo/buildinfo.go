// Package buildinfo holds version information injected at build time via ldflags.
package buildinfo

// Name is the product name shown in version output and notifications.
const Name = "Turbo Boost Manager"

var (
	Version    = "dev"
	Codename   = "Afterburner"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
