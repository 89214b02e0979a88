package config

import (
	"os"

	"github.com/watchfire-io/turboboost/internal/models"
)

// LoadInstanceInfo loads instance info from path.
// Returns nil if the file doesn't exist.
func LoadInstanceInfo(path string) (*models.InstanceInfo, error) {
	if !FileExists(path) {
		return nil, nil
	}

	var info models.InstanceInfo
	if err := LoadYAML(path, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SaveInstanceInfo writes instance info to path.
func SaveInstanceInfo(path string, info *models.InstanceInfo) error {
	return SaveYAML(path, info)
}

// RemoveInstanceInfo removes the instance file.
func RemoveInstanceInfo(path string) error {
	if !FileExists(path) {
		return nil
	}
	return os.Remove(path)
}

// IsInstanceRunning reports whether the process recorded at path is still
// alive according to alive. A stale or unreadable file is removed.
func IsInstanceRunning(path string, alive func(pid int) bool) (bool, *models.InstanceInfo) {
	info, err := LoadInstanceInfo(path)
	if err != nil {
		_ = RemoveInstanceInfo(path)
		return false, nil
	}
	if info == nil {
		return false, nil
	}

	if info.PID <= 0 || info.PID == os.Getpid() || !alive(info.PID) {
		_ = RemoveInstanceInfo(path)
		return false, info
	}

	return true, info
}
