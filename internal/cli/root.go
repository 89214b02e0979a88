// Package cli implements the turboboost CLI commands.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/turboboost/internal/platform"
)

// Global flags.
var (
	flagStateFile string
	flagConfig    string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "turboboost",
	Short: "Toggle CPU turbo boost per power source",
	Long: `Turbo Boost Manager toggles CPU turbo boost separately for plugged-in
and on-battery operation by adjusting the processor maximum state of the
active Windows power scheme.

Without a subcommand it starts the system tray application.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runTray,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var unsupported *platform.UnsupportedPlatformError
	if errors.As(err, &unsupported) {
		return platform.ExitUnsupported
	}
	return platform.ExitFailure
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagStateFile, "state-file", "", "Preferences file (default %APPDATA%\\TurboBoostManager\\turbo_boost_state.json)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Settings file (default %APPDATA%\\TurboBoostManager\\settings.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log at debug level")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(autostartCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)
}
