package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/turboboost/internal/models"
	"github.com/watchfire-io/turboboost/internal/power"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show saved preferences and the active scheme's values",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	prefs, loadErr := a.store.Load()
	if loadErr != nil {
		fmt.Println(styleWarning.Render("Saved preferences unreadable; showing defaults."))
	}

	status, statusErr := a.applier.Status(cmd.Context())

	fmt.Println(styleBrand.Render("Turbo Boost Manager"))
	fmt.Println()
	fmt.Printf("  %s %s\n", styleLabel.Render("State file:"), styleValue.Render(a.store.Path()))
	if status != nil {
		fmt.Printf("  %s %s %s\n",
			styleLabel.Render("Scheme:    "),
			styleValue.Render(status.Scheme.Name),
			styleHint.Render(status.Scheme.GUID))
	}
	fmt.Println()

	fmt.Printf("  %s %s %s\n",
		padRight(styleLabel.Render("Power source"), 14),
		padRight(styleLabel.Render("Saved"), 8),
		styleLabel.Render("Active scheme"))
	for _, c := range models.AllContexts() {
		fmt.Printf("  %s %s %s\n",
			padRight(styleValue.Render(c.Label()), 14),
			padRight(renderOnOff(prefs.Get(c)), 8),
			renderLive(status, c, prefs.Get(c)))
	}

	if statusErr != nil {
		fmt.Println()
		fmt.Println(styleError.Render("Could not read the active scheme:"))
		fmt.Println(styleHint.Render(statusErr.Error()))
		return statusErr
	}
	return nil
}

// renderLive shows the scheme's throttle value, flagging drift from the
// saved preference.
func renderLive(status *power.Status, c models.PowerContext, saved bool) string {
	if status == nil {
		return styleHint.Render("unknown")
	}
	text := fmt.Sprintf("%d%% (%s)", status.Percent(c), models.OnOff(status.TurboEnabled(c)))
	if status.TurboEnabled(c) != saved {
		return styleWarning.Render(text + " differs; run 'turboboost apply'")
	}
	return styleValue.Render(text)
}
