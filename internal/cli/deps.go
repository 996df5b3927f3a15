package cli

import (
	"os"

	"github.com/avikstrom/siteconf/internal/config"
	"github.com/avikstrom/siteconf/internal/driver"
	"github.com/avikstrom/siteconf/internal/errors"
	"github.com/avikstrom/siteconf/internal/input"
	"github.com/avikstrom/siteconf/internal/platform"
)

// Dependencies aggregates all CLI external dependencies for testability
type Dependencies struct {
	BindingsLoader   BindingsLoader
	PlatformDetector PlatformDetector
	DriverFactory    DriverFactory
	RootChecker      RootChecker
	StdinReader      StdinReader
}

// BindingsLoader loads the installation bindings file
type BindingsLoader interface {
	Load(path string) (*config.Installation, error)
}

// PlatformDetector handles platform path detection
type PlatformDetector interface {
	DetectPaths() (*platform.PathConfig, error)
}

// DriverFactory creates driver instances
type DriverFactory interface {
	Create(paths driver.Paths) (driver.Driver, error)
}

// RootChecker checks root privileges
type RootChecker interface {
	RequireRoot() error
}

// StdinReader reads from stdin
type StdinReader interface {
	ReadString(delim byte) (string, error)
}

// Package-level dependencies (can be overridden for testing)
var deps = &Dependencies{
	BindingsLoader:   &realBindingsLoader{},
	PlatformDetector: &realPlatformDetector{},
	DriverFactory:    &realDriverFactory{},
	RootChecker:      &realRootChecker{},
	StdinReader:      &realStdinReader{},
}

// SetDeps replaces the package dependencies (for testing)
func SetDeps(d *Dependencies) {
	deps = d
}

// GetDeps returns the current dependencies (for testing)
func GetDeps() *Dependencies {
	return deps
}

// Real implementations that delegate to existing functions

type realBindingsLoader struct{}

func (r *realBindingsLoader) Load(path string) (*config.Installation, error) {
	return config.Load(path)
}

type realPlatformDetector struct{}

func (r *realPlatformDetector) DetectPaths() (*platform.PathConfig, error) {
	return platform.DetectPaths()
}

type realDriverFactory struct{}

func (r *realDriverFactory) Create(paths driver.Paths) (driver.Driver, error) {
	return driver.NewNginxWithPaths(paths.Available, paths.Enabled), nil
}

type realRootChecker struct{}

func (r *realRootChecker) RequireRoot() error {
	if os.Geteuid() != 0 {
		return errors.ErrRootRequired
	}
	return nil
}

type realStdinReader struct {
	reader input.Reader
}

func (r *realStdinReader) ReadString(delim byte) (string, error) {
	if r.reader == nil {
		r.reader = input.NewStdinReader()
	}
	return r.reader.ReadString(delim)
}
