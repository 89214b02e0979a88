package config

import (
	"github.com/watchfire-io/turboboost/internal/models"
)

// LoadSettingsFrom loads settings from path, normally
// %APPDATA%\TurboBoostManager\settings.yaml. If the file doesn't exist,
// returns default settings.
func LoadSettingsFrom(path string) (*models.Settings, error) {
	return LoadYAMLOrDefault(path, models.NewSettings)
}

// SaveSettings saves settings to an explicit path.
func SaveSettings(path string, settings *models.Settings) error {
	return SaveYAML(path, settings)
}
