package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/turboboost/internal/buildinfo"
	"github.com/watchfire-io/turboboost/internal/platform"
)

// VersionInfo holds version information.
type VersionInfo struct {
	Version    string `json:"version"`
	Codename   string `json:"codename"`
	CommitHash string `json:"commit"`
	BuildDate  string `json:"build_date"`
	Platform   string `json:"platform"`
	GoVersion  string `json:"go"`
}

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version information",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := loadVersionInfo()
		if versionJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		}

		fmt.Printf("%s %s %s\n",
			styleBrand.Render(buildinfo.Name),
			styleVersion.Render(info.Version),
			styleHint.Render("("+info.Codename+")"))
		fmt.Printf("  %s %s\n", styleLabel.Render("Commit: "), styleValue.Render(info.CommitHash))
		fmt.Printf("  %s %s\n", styleLabel.Render("Built:  "), styleValue.Render(info.BuildDate))
		fmt.Printf("  %s %s\n", styleLabel.Render("OS/Arch:"), styleValue.Render(info.Platform))
		fmt.Printf("  %s %s\n", styleLabel.Render("Go:     "), styleValue.Render(info.GoVersion))
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version information as JSON")
}

func loadVersionInfo() VersionInfo {
	return VersionInfo{
		Version:    buildinfo.Version,
		Codename:   buildinfo.Codename,
		CommitHash: buildinfo.CommitHash,
		BuildDate:  buildinfo.BuildDate,
		Platform:   platform.Describe(),
		GoVersion:  runtime.Version(),
	}
}
