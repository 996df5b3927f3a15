// Package driver installs rendered site configuration into the web
// server's configuration directories.
//
// The driver package implements a single interface for the install
// lifecycle so that command code stays independent of the web server's
// on-disk layout, and so tests can substitute a mock.
//
// # Nginx Layouts
//
//   - Debian/Ubuntu: sites-available plus a sites-enabled symlink dir
//   - RHEL/Homebrew: a single conf.d/servers directory, where a site
//     is enabled by virtue of being installed
//
// Paths.SplitLayout distinguishes the two; Enable and Disable degrade
// accordingly.
//
// # Basic Usage
//
// Create a driver instance with platform-specific paths:
//
//	import "github.com/avikstrom/siteconf/internal/driver"
//
//	drv := driver.NewNginxWithPaths(
//	    "/etc/nginx/sites-available",
//	    "/etc/nginx/sites-enabled",
//	)
//
//	err := drv.Install("example.com", renderedContent)
//
// Install writes atomically (via renameio), so a crash or concurrent
// reload never observes a truncated site config.
//
// # Testing
//
// NewNginxWithExecutor accepts a mock executor.CommandExecutor so Test
// and Reload can run without touching the host's nginx:
//
//	mockExec := &executor.MockExecutor{}
//	drv := driver.NewNginxWithExecutor(availableDir, enabledDir, mockExec)
//
// MockDriver is a full test double for command-level tests.
//
// # Error Handling
//
// All driver methods return descriptive errors that include context about
// the operation that failed. Errors are wrapped using fmt.Errorf with %w
// to maintain the error chain.
package driver
