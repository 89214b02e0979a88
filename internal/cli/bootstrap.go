package cli

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/watchfire-io/turboboost/internal/buildinfo"
	"github.com/watchfire-io/turboboost/internal/config"
	"github.com/watchfire-io/turboboost/internal/controller"
	"github.com/watchfire-io/turboboost/internal/logging"
	"github.com/watchfire-io/turboboost/internal/models"
	"github.com/watchfire-io/turboboost/internal/notify"
	"github.com/watchfire-io/turboboost/internal/platform"
	"github.com/watchfire-io/turboboost/internal/power"
	"github.com/watchfire-io/turboboost/internal/state"
)

// app holds the components shared by the commands that touch power settings.
type app struct {
	settings     *models.Settings
	settingsPath string
	log          *logging.Logger
	store        *state.Store
	applier      *power.Applier
	controller   *controller.Controller
	notifier     *notify.Notifier
}

// newApp checks the platform, loads settings and wires every component.
// The caller must call close.
func newApp() (*app, error) {
	if err := platform.CheckSupported(); err != nil {
		return nil, err
	}

	settingsPath, err := resolveSettingsPath()
	if err != nil {
		return nil, err
	}
	settings, err := config.LoadSettingsFrom(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	log, err := newLogger(settings)
	if err != nil {
		return nil, err
	}
	logger := log.Logger

	statePath, err := resolveStatePath()
	if err != nil {
		_ = log.Close()
		return nil, err
	}

	logger.Info().
		Str("version", buildinfo.Version).
		Str("host", platform.Describe()).
		Str("state_file", statePath).
		Msg("Turbo Boost Manager starting")

	store := state.NewStore(statePath, logger)
	applier := power.NewApplier(settings.PowercfgPath(), nil, logger)

	return &app{
		settings:     settings,
		settingsPath: settingsPath,
		log:          log,
		store:        store,
		applier:      applier,
		controller:   controller.New(store, applier, logger),
		notifier:     notify.New(settings.Notifications.Enabled, logger),
	}, nil
}

func (a *app) logger() zerolog.Logger {
	return a.log.Logger
}

func (a *app) close() {
	logger := a.logger()
	logger.Info().Msg("Turbo Boost Manager stopped")
	_ = a.log.Close()
}

// reloadSettings re-reads the settings file and applies the values that can
// change without a restart. Power preferences are never touched here.
func (a *app) reloadSettings() {
	logger := a.logger()
	settings, err := config.LoadSettingsFrom(a.settingsPath)
	if err != nil {
		logger.Warn().Err(err).Msg("Ignoring unreadable settings file")
		return
	}
	if settings.Notifications.Enabled != a.settings.Notifications.Enabled {
		a.notifier.SetEnabled(settings.Notifications.Enabled)
		logger.Info().Bool("enabled", settings.Notifications.Enabled).Msg("Notifications setting reloaded")
	}
	if settings.PowercfgPath() != a.settings.PowercfgPath() {
		logger.Warn().Str("path", settings.PowercfgPath()).Msg("powercfg path change takes effect after restart")
	}
	a.settings = settings
}

func resolveSettingsPath() (string, error) {
	if flagConfig != "" {
		return flagConfig, nil
	}
	return config.SettingsFile()
}

func newLogger(settings *models.Settings) (*logging.Logger, error) {
	logPath, err := config.LogFile()
	if err != nil {
		return nil, err
	}

	level := settings.Log.Level
	if flagVerbose {
		level = "debug"
	}

	log, err := logging.New(logging.Options{
		FilePath:   logPath,
		Level:      level,
		MaxSizeMB:  settings.Log.MaxSizeMB,
		MaxBackups: settings.Log.MaxBackups,
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", logPath).Msg("Logging to file")
	return log, nil
}

func resolveStatePath() (string, error) {
	if flagStateFile != "" {
		return flagStateFile, nil
	}
	return config.StateFile()
}
