package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/turboboost/internal/models"
)

var setCmd = &cobra.Command{
	Use:   "set <ac|dc> <on|off>",
	Short: "Turn turbo boost on or off for one power source",
	Long: `Turn turbo boost on or off for one power source.

The power source is "ac" (plugged in) or "dc" (on battery); the
PLUGGED_IN / ON_BATTERY names are accepted too. The preference is saved
only when powercfg accepts the change. Refused while the tray is running;
use its menu instead.`,
	Example: `  turboboost set ac on
  turboboost set dc off`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	c, enabled, err := parseSetArgs(args)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := checkTrayNotRunning(); err != nil {
		return err
	}

	// Loading only; the resync is the tray's and apply's job.
	if _, err := a.store.Load(); err != nil {
		logger := a.logger()
		logger.Warn().Err(err).Msg("Continuing with default preferences")
	}

	if err := a.controller.HandleUserToggle(cmd.Context(), c, enabled); err != nil {
		fmt.Println(styleError.Render(fmt.Sprintf("Could not turn turbo %s for %s.", models.OnOff(enabled), c.Label())))
		return err
	}

	fmt.Printf("%s %s\n",
		styleLabel.Render(fmt.Sprintf("%-12s", c.Label())),
		renderOnOff(enabled))
	return nil
}

func parseSetArgs(args []string) (models.PowerContext, bool, error) {
	c, err := models.ParsePowerContext(args[0])
	if err != nil {
		return 0, false, err
	}
	enabled, err := parseOnOff(args[1])
	if err != nil {
		return 0, false, err
	}
	return c, enabled, nil
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "1", "enable", "enabled":
		return true, nil
	case "off", "false", "0", "disable", "disabled":
		return false, nil
	}
	return false, fmt.Errorf("invalid state %q: expected on or off", s)
}
