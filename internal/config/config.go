package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avikstrom/siteconf/internal/errors"
)

// Binding keys referenced by the site template. The installation. prefix
// is part of the template's placeholder namespace.
const (
	KeyHostname   = "installation.system.hostname"
	KeyRunDir     = "installation.paths.run_dir"
	KeyInstallDir = "installation.paths.install_dir"
)

// DefaultPath is the default location of the installation bindings file.
const DefaultPath = "/etc/siteconf/installation.yaml"

// Installation holds the values substituted into the site template.
type Installation struct {
	System System `yaml:"system"`
	Paths  Paths  `yaml:"paths"`
}

// System identifies the server the site is installed on.
type System struct {
	Hostname string `yaml:"hostname"`
}

// Paths locates the application on the filesystem.
type Paths struct {
	RunDir     string `yaml:"run_dir"`
	InstallDir string `yaml:"install_dir"`
}

// New creates an empty Installation.
func New() *Installation {
	return &Installation{}
}

// Load reads the installation bindings from the given file. An empty path
// means DefaultPath. A missing default file yields an empty Installation,
// so bindings may be supplied entirely through flags; a missing explicit
// file is an error.
func Load(path string) (*Installation, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return New(), nil
		}
		return nil, fmt.Errorf("failed to read bindings file: %w", err)
	}

	inst := New()
	if err := yaml.Unmarshal(data, inst); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfig, "failed to parse bindings file", err)
	}

	return inst, nil
}

// Bindings flattens the installation values into the dotted keys the
// template references. Empty values are omitted, so the template engine
// reports them as missing.
func (i *Installation) Bindings() map[string]string {
	bindings := make(map[string]string, 3)
	set := func(key, value string) {
		if value != "" {
			bindings[key] = value
		}
	}
	set(KeyHostname, i.System.Hostname)
	set(KeyRunDir, i.Paths.RunDir)
	set(KeyInstallDir, i.Paths.InstallDir)
	return bindings
}

// Apply merges raw key=value overrides into the installation, returning
// an error for keys the installation does not define.
func (i *Installation) Apply(overrides map[string]string) error {
	for key, value := range overrides {
		switch key {
		case KeyHostname:
			i.System.Hostname = value
		case KeyRunDir:
			i.Paths.RunDir = value
		case KeyInstallDir:
			i.Paths.InstallDir = value
		default:
			return fmt.Errorf("unknown binding key: %s", key)
		}
	}
	return nil
}

// SiteName returns the name the rendered config is installed under,
// which is the hostname the server block matches on.
func (i *Installation) SiteName() string {
	return i.System.Hostname
}
