package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/avikstrom/siteconf/internal/output"
)

var (
	dryRun       bool
	noReload     bool
	forceInstall bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the site configuration into the web server",
	Long: `Render the site configuration and install it: write it into the web
server's site directory, enable it, test the server configuration and
reload the server.

If the site is already installed with different content, confirmation
is required unless --force is given. A failing configuration test rolls
the installation back.

Examples:
  siteconf install
  siteconf install --dry-run
  siteconf install --force --no-reload`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	addBindingFlags(installCmd)
	installCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without making changes")
	installCmd.Flags().BoolVar(&noReload, "no-reload", false, "Don't reload the web server")
	installCmd.Flags().BoolVarP(&forceInstall, "force", "f", false, "Overwrite a differing installed config without confirmation")

	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	inst, content, err := renderSite()
	if err != nil {
		return err
	}
	site := inst.SiteName()

	drv, err := loadDriver()
	if err != nil {
		return err
	}

	if dryRun {
		return outputInstallDryRun(drv.Paths().Available, drv.Paths().Enabled, site, content)
	}

	// Require root for system operations
	if err := requireRoot(); err != nil {
		return err
	}

	// Capture the previous state so a failed test can restore it
	wasInstalled, err := drv.IsInstalled(site)
	if err != nil {
		return fmt.Errorf("failed to check site status: %w", err)
	}

	previous := ""
	upToDate := false
	if wasInstalled {
		previous, err = drv.Installed(site)
		if err != nil {
			return fmt.Errorf("failed to read installed config: %w", err)
		}
		if previous == content {
			upToDate = true
		} else if !forceInstall {
			if !confirm("Site %s is installed with different content. Overwrite?", site) {
				output.Info("Installation cancelled")
				return nil
			}
		}
	}

	enabled, err := drv.IsEnabled(site)
	if err != nil {
		return fmt.Errorf("failed to check site status: %w", err)
	}

	// Nothing to do: the installed config already matches and is served
	if upToDate && enabled {
		return outputResult(
			map[string]interface{}{
				"success": true,
				"site":    site,
				"enabled": true,
				"changed": false,
			},
			"Site %s is already installed and up to date", site,
		)
	}

	if !upToDate {
		output.Info("Installing site configuration...")
		if err := drv.Install(site, content); err != nil {
			return fmt.Errorf("failed to install site: %w", err)
		}
	}

	if !enabled {
		output.Info("Enabling site...")
		if err := drv.Enable(site); err != nil {
			switch {
			case upToDate:
				// config file was never touched
			case wasInstalled:
				_ = drv.Install(site, previous)
			default:
				_ = drv.Remove(site)
			}
			return fmt.Errorf("failed to enable site: %w", err)
		}
	}

	rollback := func() error {
		output.Info("Rolling back changes...")
		if !enabled {
			if err := drv.Disable(site); err != nil {
				output.Warn("Rollback disable failed: %v", err)
			}
		}
		if wasInstalled {
			if upToDate {
				return nil
			}
			if err := drv.Install(site, previous); err != nil {
				return fmt.Errorf("rollback reinstall failed: %w", err)
			}
			return nil
		}
		if err := drv.Remove(site); err != nil {
			return fmt.Errorf("rollback remove failed: %w", err)
		}
		return nil
	}

	if err := testAndReload(drv, !noReload, rollback); err != nil {
		return err
	}

	return outputResult(
		map[string]interface{}{
			"success": true,
			"site":    site,
			"enabled": true,
			"changed": true,
		},
		"Site %s installed and enabled", site,
	)
}

// outputInstallDryRun outputs what install would do in dry-run mode
func outputInstallDryRun(availableDir, enabledDir, site, content string) error {
	operations := []DryRunOperation{
		{
			Action:  "create_file",
			Target:  filepath.Join(availableDir, site),
			Details: fmt.Sprintf("Site configuration for %s", site),
		},
	}

	if availableDir != enabledDir {
		operations = append(operations, DryRunOperation{
			Action:  "create_symlink",
			Target:  filepath.Join(enabledDir, site),
			Details: fmt.Sprintf("Link to %s", filepath.Join(availableDir, site)),
		})
	}

	if !noReload {
		operations = append(operations,
			DryRunOperation{
				Action:  "test_config",
				Target:  "nginx",
				Details: "Validate configuration syntax",
			},
			DryRunOperation{
				Action:  "reload_server",
				Target:  "nginx",
				Details: "Apply configuration changes",
			},
		)
	}

	return outputDryRun(&DryRunResult{
		Site:          site,
		Operations:    operations,
		ConfigPreview: content,
	})
}
