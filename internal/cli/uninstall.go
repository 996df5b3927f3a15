package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avikstrom/siteconf/internal/errors"
	"github.com/avikstrom/siteconf/internal/output"
)

var forceUninstall bool

var uninstallCmd = &cobra.Command{
	Use:     "uninstall",
	Aliases: []string{"remove"},
	Short:   "Remove the installed site configuration",
	Long: `Disable and remove the installed site configuration from the web
server, then test and reload it.

Examples:
  siteconf uninstall
  siteconf uninstall --force --no-reload`,
	Args: cobra.NoArgs,
	RunE: runUninstall,
}

func init() {
	addBindingFlags(uninstallCmd)
	uninstallCmd.Flags().BoolVarP(&forceUninstall, "force", "f", false, "Force removal without confirmation")
	uninstallCmd.Flags().BoolVar(&noReload, "no-reload", false, "Don't reload the web server")

	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	inst, err := loadBindings()
	if err != nil {
		return err
	}
	site := inst.SiteName()
	if site == "" {
		return fmt.Errorf("hostname binding is required to locate the installed site")
	}

	// Require root for system operations
	if err := requireRoot(); err != nil {
		return err
	}

	drv, err := loadDriver()
	if err != nil {
		return err
	}

	installed, err := drv.IsInstalled(site)
	if err != nil {
		return fmt.Errorf("failed to check site status: %w", err)
	}
	if !installed {
		return errors.SiteNotInstalled(site)
	}

	// Confirm removal if not forced
	if !forceUninstall {
		if !confirm("Are you sure you want to remove site '%s'?", site) {
			output.Info("Removal cancelled")
			return nil
		}
	}

	output.Info("Removing site configuration...")
	if err := drv.Remove(site); err != nil {
		return fmt.Errorf("failed to remove site: %w", err)
	}

	// Test and reload (no rollback for uninstall)
	if err := testAndReload(drv, !noReload, nil); err != nil {
		output.Warn("Post-removal check failed: %v", err)
		// Continue anyway since the site is already removed
	}

	return outputResult(
		newSuccessResult(site, "removed"),
		"Site %s removed", site,
	)
}
