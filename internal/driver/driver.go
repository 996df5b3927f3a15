package driver

// Driver is the interface for installing rendered site configuration
// into a web server.
type Driver interface {
	// Name returns the driver name (nginx)
	Name() string

	// Install writes a rendered site config
	Install(site, content string) error

	// Remove deletes an installed site config
	Remove(site string) error

	// Enable activates an installed site
	Enable(site string) error

	// Disable deactivates a site
	Disable(site string) error

	// IsInstalled checks if a site config is present
	IsInstalled(site string) (bool, error)

	// IsEnabled checks if a site is enabled
	IsEnabled(site string) (bool, error)

	// Installed returns the current on-disk content of a site config,
	// for drift detection against a fresh render
	Installed(site string) (string, error)

	// Test validates the web server config syntax
	Test() error

	// Reload reloads the web server
	Reload() error

	// Paths returns the driver's config paths
	Paths() Paths
}

// Paths contains the web server config directory paths.
// Available and Enabled may be the same directory on layouts without
// a sites-enabled convention (RHEL conf.d, Homebrew servers).
type Paths struct {
	Available string // config available directory
	Enabled   string // config enabled directory
}

// SplitLayout reports whether the paths use separate available and
// enabled directories.
func (p Paths) SplitLayout() bool {
	return p.Available != p.Enabled
}
