//go:build !windows

package platform

import (
	"os"
	"syscall"
)

func osVersion() string { return "" }

// ProcessAlive reports whether a process with the given PID is running.
func ProcessAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	// Signal 0 checks for existence without delivering anything.
	return process.Signal(syscall.Signal(0)) == nil
}

// AutostartEnabled always reports false off Windows.
func AutostartEnabled() (bool, error) {
	return false, ErrAutostartUnsupported
}

// SetAutostart is unavailable off Windows.
func SetAutostart(enabled bool) error {
	return ErrAutostartUnsupported
}
