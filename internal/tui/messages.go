package tui

import (
	"github.com/watchfire-io/turboboost/internal/models"
	"github.com/watchfire-io/turboboost/internal/power"
)

// ToggleDoneMsg carries the outcome of a toggle request and the
// preferences read right after it, on the goroutine that ran it.
type ToggleDoneMsg struct {
	Context models.PowerContext
	Enabled bool
	Prefs   models.Preferences
	Err     error
}

// StatusLoadedMsg carries the live scheme values.
type StatusLoadedMsg struct {
	Status *power.Status
	Err    error
}
