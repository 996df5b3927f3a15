package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/avikstrom/siteconf/internal/output"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the installed state of the site",
	Long: `Show whether the site configuration is installed, enabled, and in sync
with a fresh render of the current bindings.

Examples:
  siteconf status
  siteconf status --json`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	addBindingFlags(statusCmd)

	rootCmd.AddCommand(statusCmd)
}

// siteStatus is the JSON shape of a status run
type siteStatus struct {
	Site       string `json:"site"`
	ConfigPath string `json:"config_path"`
	Installed  bool   `json:"installed"`
	Enabled    bool   `json:"enabled"`
	UpToDate   bool   `json:"up_to_date"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	inst, content, err := renderSite()
	if err != nil {
		return err
	}
	site := inst.SiteName()

	drv, err := loadDriver()
	if err != nil {
		return err
	}

	status := siteStatus{
		Site:       site,
		ConfigPath: filepath.Join(drv.Paths().Available, site),
	}

	status.Installed, err = drv.IsInstalled(site)
	if err != nil {
		return err
	}

	if status.Installed {
		status.Enabled, err = drv.IsEnabled(site)
		if err != nil {
			return err
		}

		installed, err := drv.Installed(site)
		if err != nil {
			return err
		}
		status.UpToDate = installed == content
	}

	if jsonOutput {
		return output.JSON(status)
	}

	output.Print("")
	output.Print("Site:       %s", status.Site)
	output.Print("Config:     %s", status.ConfigPath)
	output.Print("Installed:  %s", yesNo(status.Installed))
	if status.Installed {
		output.Print("Enabled:    %s", yesNo(status.Enabled))
		if status.UpToDate {
			output.Print("Content:    up to date")
		} else {
			output.Print("Content:    differs from current render")
		}
	}
	output.Print("")

	if status.Installed && !status.UpToDate {
		output.Warn("Installed config is stale, run 'siteconf install' to update it")
	}

	return nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
