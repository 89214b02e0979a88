package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/turboboost/internal/platform"
)

var autostartCmd = &cobra.Command{
	Use:       "autostart [enable|disable]",
	Short:     "Show or change Start with Windows",
	Long:      `Show whether the tray starts with Windows, or turn it on or off for the current user.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"enable", "disable"},
	RunE:      runAutostart,
}

func runAutostart(cmd *cobra.Command, args []string) error {
	if err := platform.CheckSupported(); err != nil {
		return err
	}

	if len(args) == 1 {
		enable := args[0] == "enable"
		if err := platform.SetAutostart(enable); err != nil {
			return fmt.Errorf("failed to update Start with Windows: %w", err)
		}
	}

	enabled, err := platform.AutostartEnabled()
	if err != nil {
		return err
	}
	fmt.Printf("%s %s\n", styleLabel.Render("Start with Windows:"), renderOnOff(enabled))
	return nil
}
