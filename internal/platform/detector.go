// Package platform provides platform-specific path detection for the
// nginx configuration directories.
package platform

import (
	"fmt"
	"os"
	"runtime"
)

// PathConfig contains the nginx site configuration paths.
type PathConfig struct {
	Available string
	Enabled   string
}

// DetectPaths returns platform-specific default paths for nginx site
// configuration. It checks common installation locations based on the OS.
func DetectPaths() (*PathConfig, error) {
	return detectPaths(runtime.GOOS, pathExists)
}

func detectPaths(goos string, exists func(string) bool) (*PathConfig, error) {
	switch goos {
	case "darwin":
		return detectDarwinPaths(exists)
	case "linux":
		return detectLinuxPaths(exists)
	default:
		return nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

// detectDarwinPaths detects paths for macOS (Homebrew installations).
// Homebrew nginx has no sites-enabled convention; the servers directory
// serves both roles.
func detectDarwinPaths(exists func(string) bool) (*PathConfig, error) {
	// Check for Apple Silicon Homebrew path first
	if exists("/opt/homebrew") {
		return &PathConfig{
			Available: "/opt/homebrew/etc/nginx/servers",
			Enabled:   "/opt/homebrew/etc/nginx/servers",
		}, nil
	}

	// Check for Intel Homebrew path
	if exists("/usr/local/etc/nginx") {
		return &PathConfig{
			Available: "/usr/local/etc/nginx/servers",
			Enabled:   "/usr/local/etc/nginx/servers",
		}, nil
	}

	return nil, fmt.Errorf("homebrew nginx not found (checked /opt/homebrew and /usr/local/etc/nginx)")
}

// detectLinuxPaths detects paths for Linux distributions. The layout
// conventions must be checked before the bare config directory: on
// RHEL/CentOS /etc/nginx exists but only conf.d is included by
// nginx.conf, so a site written to sites-available would never be
// served.
func detectLinuxPaths(exists func(string) bool) (*PathConfig, error) {
	// Debian/Ubuntu split layout
	if exists("/etc/nginx/sites-available") {
		return &PathConfig{
			Available: "/etc/nginx/sites-available",
			Enabled:   "/etc/nginx/sites-enabled",
		}, nil
	}

	// RHEL/CentOS layout, which has no enabled/available split
	if exists("/etc/nginx/conf.d") {
		return &PathConfig{
			Available: "/etc/nginx/conf.d",
			Enabled:   "/etc/nginx/conf.d",
		}, nil
	}

	// Bare /etc/nginx with neither convention: fall back to the Debian
	// split, created on install
	if exists("/etc/nginx") {
		return &PathConfig{
			Available: "/etc/nginx/sites-available",
			Enabled:   "/etc/nginx/sites-enabled",
		}, nil
	}

	return nil, fmt.Errorf("nginx configuration paths not found (checked /etc/nginx/sites-available, /etc/nginx/conf.d and /etc/nginx)")
}

// pathExists checks if a path exists on the filesystem.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Platform returns a string describing the current platform.
func Platform() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}
