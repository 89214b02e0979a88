package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/turboboost/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Toggle turbo boost from the terminal",
	Long: `Open an interactive terminal view with the same controls as the tray.

Saved preferences are re-applied first, like the tray does on start. Refused
while the tray is running.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := checkTrayNotRunning(); err != nil {
		return err
	}

	logger := a.logger()
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.controller.Initialize(ctx); err != nil {
		logger.Error().Err(err).Msg("Saved settings could not be fully applied")
	}

	err = tui.Run(ctx, tui.Options{
		Controller: a.controller,
		Status:     a.applier,
		Logger:     logger,
	})
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
