package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/avikstrom/siteconf/internal/errors"
	"github.com/avikstrom/siteconf/internal/executor"
)

// NginxDriver implements the Driver interface for Nginx
type NginxDriver struct {
	paths Paths
	exec  executor.CommandExecutor
}

// NewNginxWithPaths creates a new Nginx driver with custom paths
func NewNginxWithPaths(available, enabled string) *NginxDriver {
	return &NginxDriver{
		paths: Paths{
			Available: available,
			Enabled:   enabled,
		},
		exec: executor.NewSystemExecutor(),
	}
}

// NewNginxWithExecutor creates a new Nginx driver with custom paths and executor (for testing)
func NewNginxWithExecutor(available, enabled string, exec executor.CommandExecutor) *NginxDriver {
	return &NginxDriver{
		paths: Paths{
			Available: available,
			Enabled:   enabled,
		},
		exec: exec,
	}
}

// Name returns the driver name
func (n *NginxDriver) Name() string {
	return "nginx"
}

// Paths returns the config paths
func (n *NginxDriver) Paths() Paths {
	return n.paths
}

// Install writes a rendered site config into sites-available. The write
// is atomic: nginx never observes a partially written config file.
func (n *NginxDriver) Install(site, content string) error {
	if err := os.MkdirAll(n.paths.Available, 0755); err != nil {
		return fmt.Errorf("failed to create sites-available directory: %w", err)
	}
	if err := os.MkdirAll(n.paths.Enabled, 0755); err != nil {
		return fmt.Errorf("failed to create sites-enabled directory: %w", err)
	}

	configPath := filepath.Join(n.paths.Available, site)
	if err := renameio.WriteFile(configPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Remove deletes an installed site config
func (n *NginxDriver) Remove(site string) error {
	// First disable the site
	if enabled, _ := n.IsEnabled(site); enabled && n.paths.SplitLayout() {
		if err := n.Disable(site); err != nil {
			return err
		}
	}

	configPath := filepath.Join(n.paths.Available, site)
	if err := os.Remove(configPath); err != nil {
		if os.IsNotExist(err) {
			return errors.SiteNotInstalled(site)
		}
		return fmt.Errorf("failed to remove config file: %w", err)
	}

	return nil
}

// Enable activates a site by creating a symlink in sites-enabled.
// On layouts without an enabled directory, installing is enabling and
// Enable is a no-op.
func (n *NginxDriver) Enable(site string) error {
	source := filepath.Join(n.paths.Available, site)

	// Check if source exists
	if _, err := os.Stat(source); os.IsNotExist(err) {
		return errors.SiteNotInstalled(site)
	}

	if !n.paths.SplitLayout() {
		return nil
	}

	target := filepath.Join(n.paths.Enabled, site)

	// Check if already enabled
	if _, err := os.Lstat(target); err == nil {
		return fmt.Errorf("site %s is already enabled", site)
	}

	if err := os.Symlink(source, target); err != nil {
		return fmt.Errorf("failed to enable site: %w", err)
	}

	return nil
}

// Disable deactivates a site by removing the symlink
func (n *NginxDriver) Disable(site string) error {
	if !n.paths.SplitLayout() {
		return fmt.Errorf("site %s cannot be disabled separately on this layout, remove it instead", site)
	}

	target := filepath.Join(n.paths.Enabled, site)

	info, err := os.Lstat(target)
	if os.IsNotExist(err) {
		return fmt.Errorf("site %s is not enabled", site)
	}
	if err != nil {
		return fmt.Errorf("failed to check site status: %w", err)
	}

	// Only remove symlinks; a regular file here was not created by us
	if info.Mode()&os.ModeSymlink == 0 {
		return fmt.Errorf("site %s is not a symlink, refusing to remove", site)
	}

	if err := os.Remove(target); err != nil {
		return fmt.Errorf("failed to disable site: %w", err)
	}

	return nil
}

// IsInstalled checks if a site config is present in sites-available
func (n *NginxDriver) IsInstalled(site string) (bool, error) {
	_, err := os.Stat(filepath.Join(n.paths.Available, site))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check site status: %w", err)
	}
	return true, nil
}

// IsEnabled checks if a site is enabled
func (n *NginxDriver) IsEnabled(site string) (bool, error) {
	if !n.paths.SplitLayout() {
		return n.IsInstalled(site)
	}

	_, err := os.Lstat(filepath.Join(n.paths.Enabled, site))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check site status: %w", err)
	}
	return true, nil
}

// Installed returns the current on-disk content of a site config
func (n *NginxDriver) Installed(site string) (string, error) {
	content, err := os.ReadFile(filepath.Join(n.paths.Available, site))
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.SiteNotInstalled(site)
		}
		return "", fmt.Errorf("failed to read config file: %w", err)
	}
	return string(content), nil
}

// Test validates the nginx config syntax
func (n *NginxDriver) Test() error {
	output, err := n.exec.Execute("nginx", "-t")
	if err != nil {
		return fmt.Errorf("nginx config test failed: %s", string(output))
	}
	return nil
}

// Reload reloads nginx to apply changes
func (n *NginxDriver) Reload() error {
	output, err := n.exec.Execute("systemctl", "reload", "nginx")
	if err != nil {
		// Try nginx -s reload as fallback
		output, err = n.exec.Execute("nginx", "-s", "reload")
		if err != nil {
			return fmt.Errorf("failed to reload nginx: %s", string(output))
		}
	}
	return nil
}
