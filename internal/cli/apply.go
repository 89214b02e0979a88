package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/turboboost/internal/models"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Re-apply saved preferences and exit",
	Long: `Re-apply the saved turbo preferences for both power sources to the
active power scheme, then exit. Useful after switching schemes.`,
	Args: cobra.NoArgs,
	RunE: runApply,
}

func runApply(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	initErr := a.controller.Initialize(cmd.Context())

	prefs := a.controller.Preferences()
	for _, c := range models.AllContexts() {
		fmt.Printf("%s %s\n",
			styleLabel.Render(fmt.Sprintf("%-12s", c.Label())),
			renderOnOff(prefs.Get(c)))
	}

	if initErr != nil {
		fmt.Println(styleError.Render("Some settings could not be applied:"))
		fmt.Println(styleHint.Render(initErr.Error()))
		return initErr
	}

	fmt.Println(styleSuccess.Render("Saved settings applied."))
	return nil
}
