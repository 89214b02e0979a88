// Package notify shows desktop notifications for failed power changes.
// It uses github.com/gen2brain/beeep (toast notifications on Windows).
package notify

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/x/ansi"
	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"

	"github.com/watchfire-io/turboboost/internal/buildinfo"
	"github.com/watchfire-io/turboboost/internal/models"
	"github.com/watchfire-io/turboboost/internal/power"
)

const appTitle = buildinfo.Name

// maxMessageLen keeps toast bodies readable.
const maxMessageLen = 200

// Notifier sends desktop alerts.
type Notifier struct {
	enabled atomic.Bool
	logger  zerolog.Logger
	alert   func(title, message string) error
}

// New creates a notifier. When enabled is false every call is a no-op.
func New(enabled bool, logger zerolog.Logger) *Notifier {
	n := &Notifier{
		logger: logger.With().Str("component", "notify").Logger(),
		alert:  func(title, message string) error {
			return beeep.Alert(title, message, "")
		},
	}
	n.enabled.Store(enabled)
	return n
}

// SetEnabled turns notifications on or off at runtime.
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled.Store(enabled)
}

// ToggleFailed reports a turbo change that could not be applied.
func (n *Notifier) ToggleFailed(c models.PowerContext, enabled bool, err error) {
	title := fmt.Sprintf("%s: could not turn turbo %s", appTitle, models.OnOff(enabled))
	n.send(title, fmt.Sprintf("%s: %s", c.Label(), describe(err)))
}

// StartupFailed reports that saved preferences could not be re-applied.
func (n *Notifier) StartupFailed(err error) {
	n.send(appTitle+": saved settings not applied", describe(err))
}

func (n *Notifier) send(title, message string) {
	if n == nil || !n.enabled.Load() {
		return
	}
	if err := n.alert(title, truncate(message, maxMessageLen)); err != nil {
		n.logger.Warn().Err(err).Str("title", title).Msg("Failed to send notification")
	}
}

// describe prefers powercfg's own output over the wrapped exec error.
func describe(err error) string {
	var cerr *power.ExternalCommandError
	if errors.As(err, &cerr) && cerr.Output != "" {
		return cerr.Output
	}
	return err.Error()
}

// truncate shortens s to maxLen cells, ending in "..." if cut. Localized
// powercfg output is never cut mid-rune.
func truncate(s string, maxLen int) string {
	return ansi.Truncate(s, maxLen, "...")
}
