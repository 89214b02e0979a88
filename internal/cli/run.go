package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/turboboost/internal/buildinfo"
	"github.com/watchfire-io/turboboost/internal/config"
	"github.com/watchfire-io/turboboost/internal/controller"
	"github.com/watchfire-io/turboboost/internal/daemon/tray"
	"github.com/watchfire-io/turboboost/internal/daemon/watcher"
	"github.com/watchfire-io/turboboost/internal/models"
	"github.com/watchfire-io/turboboost/internal/platform"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the system tray application",
	Long: `Start the system tray application.

Saved preferences are re-applied to the active power scheme first, then the
tray icon offers On/Off for "Plugged in" and "On battery".`,
	Args: cobra.NoArgs,
	RunE: runTray,
}

func runTray(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	logger := a.logger()

	release, err := claimInstance(a)
	if err != nil {
		return err
	}
	defer release()

	if !config.FileExists(a.settingsPath) {
		if err := config.SaveSettings(a.settingsPath, a.settings); err != nil {
			logger.Warn().Err(err).Msg("Failed to write default settings")
		}
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if err := a.controller.Initialize(ctx); err != nil {
		logger.Error().Err(err).Msg("Saved settings could not be fully applied")
		a.notifier.StartupFailed(err)
	}

	onStart := func() {
		logger.Info().Msg("Tray ready")
		watchSettings(ctx, a)

		// Handle OS signals: quit tray on SIGINT/SIGTERM
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			select {
			case sig := <-sigCh:
				logger.Info().Str("signal", sig.String()).Msg("Received signal, shutting down")
				tray.Quit()
			case <-ctx.Done():
			}
			signal.Stop(sigCh)
		}()
	}

	onExit := func() {
		cancel()
		logger.Info().Msg("Tray exited")
	}

	// This blocks the main goroutine until tray exits.
	tray.Run(tray.Options{
		State:     &trayState{ctx: ctx, ctrl: a.controller},
		Notifier:  a.notifier,
		Autostart: platform.Autostart{},
		Logger:    logger,
		OnStart:   onStart,
		OnExit:    onExit,
	})
	return nil
}

// claimInstance refuses to start a second tray and records this process.
func claimInstance(a *app) (func(), error) {
	logger := a.logger()
	path, err := config.InstanceFile()
	if err != nil {
		return nil, err
	}

	if err := refuseIfTrayRunning(path, platform.ProcessAlive); err != nil {
		return nil, err
	}

	if err := config.SaveInstanceInfo(path, models.NewInstanceInfo(os.Getpid())); err != nil {
		logger.Warn().Err(err).Msg("Failed to write instance info")
		return func() {}, nil
	}

	return func() {
		if err := config.RemoveInstanceInfo(path); err != nil {
			logger.Warn().Err(err).Msg("Failed to remove instance info")
		}
	}, nil
}

// TrayRunningError is returned when another process owns the tray.
type TrayRunningError struct {
	PID int
}

func (e *TrayRunningError) Error() string {
	return fmt.Sprintf("%s is already running in the tray (PID %d); use its menu or exit it first", buildinfo.Name, e.PID)
}

// checkTrayNotRunning keeps commands that write preferences from racing a
// live tray, which holds its own copy and would overwrite theirs.
func checkTrayNotRunning() error {
	path, err := config.InstanceFile()
	if err != nil {
		return err
	}
	return refuseIfTrayRunning(path, platform.ProcessAlive)
}

func refuseIfTrayRunning(path string, alive func(pid int) bool) error {
	if running, info := config.IsInstanceRunning(path, alive); running {
		return &TrayRunningError{PID: info.PID}
	}
	return nil
}

// watchSettings reloads settings.yaml whenever it changes until ctx ends.
func watchSettings(ctx context.Context, a *app) {
	logger := a.logger()
	w, err := watcher.New(a.settingsPath, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("Settings reload unavailable")
		return
	}
	if err := w.Start(); err != nil {
		logger.Warn().Err(err).Msg("Settings reload unavailable")
		w.Stop()
		return
	}

	go func() {
		defer w.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case ev := <-w.Events():
				if ev.Removed {
					logger.Info().Msg("Settings file removed; keeping current settings")
					continue
				}
				a.reloadSettings()
			}
		}
	}()
}

// trayState binds the controller to the tray's lifetime context.
type trayState struct {
	ctx  context.Context
	ctrl *controller.Controller
}

func (s *trayState) Preferences() models.Preferences {
	return s.ctrl.Preferences()
}

func (s *trayState) SetTurbo(c models.PowerContext, enabled bool) error {
	return s.ctrl.HandleUserToggle(s.ctx, c, enabled)
}
