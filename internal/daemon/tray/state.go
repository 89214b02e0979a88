// Package tray implements the system tray icon and menu.
package tray

import (
	"fmt"

	"github.com/watchfire-io/turboboost/internal/buildinfo"
	"github.com/watchfire-io/turboboost/internal/models"
)

// AppState gives the tray preference snapshots and the toggle action.
type AppState interface {
	Preferences() models.Preferences
	SetTurbo(c models.PowerContext, enabled bool) error
}

// Notifier reports failed toggles to the user.
type Notifier interface {
	ToggleFailed(c models.PowerContext, enabled bool, err error)
}

// Autostart controls Start with Windows.
type Autostart interface {
	Enabled() (bool, error)
	Set(enabled bool) error
}

// MenuEntry is one checkable On/Off item.
type MenuEntry struct {
	Title   string
	Enabled bool // turbo state selected by this entry
	Checked bool
}

// MenuSection is the submenu for one power context.
type MenuSection struct {
	Title   string
	Context models.PowerContext
	On      MenuEntry
	Off     MenuEntry
}

// MenuModel is the rendered menu content for a preferences snapshot.
type MenuModel struct {
	Tooltip  string
	Sections []MenuSection
}

// RenderMenu produces menu content from a preferences snapshot.
func RenderMenu(p models.Preferences) MenuModel {
	m := MenuModel{Tooltip: formatTooltip(p)}
	for _, c := range models.AllContexts() {
		enabled := p.Get(c)
		m.Sections = append(m.Sections, MenuSection{
			Title:   c.Label(),
			Context: c,
			On:      MenuEntry{Title: "On", Enabled: true, Checked: enabled},
			Off:     MenuEntry{Title: "Off", Enabled: false, Checked: !enabled},
		})
	}
	return m
}

func formatTooltip(p models.Preferences) string {
	return fmt.Sprintf("%s — %s: %s, %s: %s", buildinfo.Name,
		models.PluggedIn.ShortLabel(), models.OnOff(p.PluggedIn),
		models.OnBattery.ShortLabel(), models.OnOff(p.OnBattery))
}
