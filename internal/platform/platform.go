// Package platform holds the host checks and Windows integration points.
package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// Process exit codes.
const (
	ExitFailure     = 1
	ExitUnsupported = 3
)

// SupportedOS is the only GOOS the power workflow runs on.
const SupportedOS = "windows"

// AutostartValueName is the HKCU Run value written for Start with Windows.
const AutostartValueName = "TurboBoostManager"

// ErrAutostartUnsupported is returned by autostart operations off Windows.
var ErrAutostartUnsupported = errors.New("start with Windows is only available on Windows")

// UnsupportedPlatformError is returned when the host OS cannot run powercfg.
type UnsupportedPlatformError struct {
	GOOS string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform %q: this application only works on Windows", e.GOOS)
}

// CheckSupported verifies the process is running on Windows.
func CheckSupported() error {
	return checkGOOS(runtime.GOOS)
}

func checkGOOS(goos string) error {
	if goos != SupportedOS {
		return &UnsupportedPlatformError{GOOS: goos}
	}
	return nil
}

// Describe returns a short host description for the startup log.
func Describe() string {
	if v := osVersion(); v != "" {
		return fmt.Sprintf("%s/%s (%s)", runtime.GOOS, runtime.GOARCH, v)
	}
	return runtime.GOOS + "/" + runtime.GOARCH
}

// Autostart exposes the Start with Windows registration as a value the tray
// can hold.
type Autostart struct{}

// Enabled reports whether Start with Windows is on.
func (Autostart) Enabled() (bool, error) { return AutostartEnabled() }

// Set turns Start with Windows on or off.
func (Autostart) Set(enabled bool) error { return SetAutostart(enabled) }
