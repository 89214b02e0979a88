package tui

import (
	"fmt"

	"github.com/watchfire-io/turboboost/internal/models"
	"github.com/watchfire-io/turboboost/internal/power"
)

func renderHeader(status *power.Status) string {
	title := titleStyle.Render("Turbo Boost Manager")
	if status == nil {
		return title
	}

	name := status.Scheme.Name
	if name == "" {
		name = status.Scheme.GUID
	}
	line := fmt.Sprintf("%s · AC %d%% (%s) · DC %d%% (%s)",
		name,
		status.ACPercent, models.OnOff(status.TurboEnabled(models.PluggedIn)),
		status.DCPercent, models.OnOff(status.TurboEnabled(models.OnBattery)),
	)
	return title + "\n" + schemeStyle.Render(line)
}
