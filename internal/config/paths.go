// Package config handles settings loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// AppDirName is the per-user application directory name under
	// %APPDATA% (config) and %LOCALAPPDATA% (logs).
	AppDirName = "TurboBoostManager"

	// LogsDirName is the name of the logs directory.
	LogsDirName = "logs"
)

// File names
const (
	StateFileName    = "turbo_boost_state.json"
	SettingsFileName = "settings.yaml"
	LogFileName      = "turbo_boost_manager.log"
	InstanceFileName = "instance.yaml"
)

// ConfigDir returns the per-user config directory (%APPDATA%\TurboBoostManager).
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", err
		}
		base = filepath.Join(home, "AppData", "Roaming")
	}
	return filepath.Join(base, AppDirName), nil
}

// StateFile returns the path to the persisted preferences file.
func StateFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, StateFileName), nil
}

// SettingsFile returns the path to settings.yaml.
func SettingsFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// InstanceFile returns the path to instance.yaml, written while the tray runs.
func InstanceFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, InstanceFileName), nil
}

// LogsDir returns the logs directory (%LOCALAPPDATA%\TurboBoostManager\logs).
func LogsDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", err
		}
		base = filepath.Join(home, "AppData", "Local")
	}
	return filepath.Join(base, AppDirName, LogsDirName), nil
}

// LogFile returns the path to the application log file.
func LogFile() (string, error) {
	dir, err := LogsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFileName), nil
}
