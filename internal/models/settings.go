package models

// PowercfgConfig locates the power configuration utility.
type PowercfgConfig struct {
	Path string `yaml:"path"` // empty = lookup "powercfg" in PATH
}

// LogConfig holds log level and file rotation settings.
type LogConfig struct {
	Level      string `yaml:"level"` // "debug" | "info" | "warn" | "error"
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// NotificationsConfig controls desktop alerts for failed actions.
type NotificationsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Settings represents application settings.
// This corresponds to %APPDATA%\TurboBoostManager\settings.yaml.
type Settings struct {
	Version       int                 `yaml:"version"`
	Powercfg      PowercfgConfig      `yaml:"powercfg"`
	Log           LogConfig           `yaml:"log"`
	Notifications NotificationsConfig `yaml:"notifications"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Powercfg: PowercfgConfig{
			Path: "powercfg",
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 3,
		},
		Notifications: NotificationsConfig{
			Enabled: true,
		},
	}
}

// PowercfgPath returns the configured utility path, defaulting to "powercfg".
func (s *Settings) PowercfgPath() string {
	if s == nil || s.Powercfg.Path == "" {
		return "powercfg"
	}
	return s.Powercfg.Path
}
