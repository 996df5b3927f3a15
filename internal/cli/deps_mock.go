package cli

import (
	"io"
	"strings"

	"github.com/avikstrom/siteconf/internal/config"
	"github.com/avikstrom/siteconf/internal/driver"
	"github.com/avikstrom/siteconf/internal/errors"
	"github.com/avikstrom/siteconf/internal/platform"
)

// MockBindingsLoader is a test double for BindingsLoader
type MockBindingsLoader struct {
	Inst      *config.Installation
	LoadErr   error
	LoadCalls []string
}

func (m *MockBindingsLoader) Load(path string) (*config.Installation, error) {
	m.LoadCalls = append(m.LoadCalls, path)
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Inst == nil {
		m.Inst = config.New()
	}
	// Copy so flag overrides in one test don't leak into the next
	inst := *m.Inst
	return &inst, nil
}

// MockPlatformDetector is a test double for PlatformDetector
type MockPlatformDetector struct {
	Paths *platform.PathConfig
	Err   error
}

func (m *MockPlatformDetector) DetectPaths() (*platform.PathConfig, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Paths != nil {
		return m.Paths, nil
	}
	// Return default mock paths
	return &platform.PathConfig{
		Available: "/etc/nginx/sites-available",
		Enabled:   "/etc/nginx/sites-enabled",
	}, nil
}

// MockDriverFactory is a test double for DriverFactory
type MockDriverFactory struct {
	Driver driver.Driver
	Err    error
}

func (m *MockDriverFactory) Create(paths driver.Paths) (driver.Driver, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Driver != nil {
		return m.Driver, nil
	}
	// Return a default mock driver if none provided
	return driver.NewMockDriver("nginx", paths.Available, paths.Enabled), nil
}

// MockRootChecker is a test double for RootChecker
type MockRootChecker struct {
	IsRoot bool
	Calls  int
}

func (m *MockRootChecker) RequireRoot() error {
	m.Calls++
	if !m.IsRoot {
		return errors.ErrRootRequired
	}
	return nil
}

// MockStdinReader is a test double for StdinReader
type MockStdinReader struct {
	Input string
	pos   int
}

func (m *MockStdinReader) ReadString(delim byte) (string, error) {
	if m.pos >= len(m.Input) {
		return "", io.EOF
	}
	idx := strings.IndexByte(m.Input[m.pos:], delim)
	if idx == -1 {
		result := m.Input[m.pos:]
		m.pos = len(m.Input)
		return result, nil
	}
	result := m.Input[m.pos : m.pos+idx+1]
	m.pos += idx + 1
	return result, nil
}

// MockDependenciesBuilder helps create mock dependencies for tests
type MockDependenciesBuilder struct {
	deps *Dependencies
}

// NewMockDeps creates a new MockDependenciesBuilder with sensible defaults
func NewMockDeps() *MockDependenciesBuilder {
	return &MockDependenciesBuilder{
		deps: &Dependencies{
			BindingsLoader:   &MockBindingsLoader{Inst: config.New()},
			PlatformDetector: &MockPlatformDetector{},
			DriverFactory:    &MockDriverFactory{},
			RootChecker:      &MockRootChecker{IsRoot: true},
			StdinReader:      &MockStdinReader{Input: "y\n"},
		},
	}
}

// WithBindings sets the installation bindings for the mock
func (b *MockDependenciesBuilder) WithBindings(inst *config.Installation) *MockDependenciesBuilder {
	b.deps.BindingsLoader = &MockBindingsLoader{Inst: inst}
	return b
}

// WithBindingsLoader sets a custom bindings loader
func (b *MockDependenciesBuilder) WithBindingsLoader(loader BindingsLoader) *MockDependenciesBuilder {
	b.deps.BindingsLoader = loader
	return b
}

// WithDriver sets the driver for the mock
func (b *MockDependenciesBuilder) WithDriver(drv driver.Driver) *MockDependenciesBuilder {
	b.deps.DriverFactory = &MockDriverFactory{Driver: drv}
	return b
}

// WithDriverFactory sets a custom driver factory
func (b *MockDependenciesBuilder) WithDriverFactory(factory DriverFactory) *MockDependenciesBuilder {
	b.deps.DriverFactory = factory
	return b
}

// WithRootAccess sets whether root access is available
func (b *MockDependenciesBuilder) WithRootAccess(isRoot bool) *MockDependenciesBuilder {
	b.deps.RootChecker = &MockRootChecker{IsRoot: isRoot}
	return b
}

// WithStdinInput sets the stdin input for the mock
func (b *MockDependenciesBuilder) WithStdinInput(input string) *MockDependenciesBuilder {
	b.deps.StdinReader = &MockStdinReader{Input: input}
	return b
}

// WithPlatformPaths sets custom platform paths
func (b *MockDependenciesBuilder) WithPlatformPaths(paths *platform.PathConfig) *MockDependenciesBuilder {
	b.deps.PlatformDetector = &MockPlatformDetector{Paths: paths}
	return b
}

// WithPlatformError sets an error for platform detection
func (b *MockDependenciesBuilder) WithPlatformError(err error) *MockDependenciesBuilder {
	b.deps.PlatformDetector = &MockPlatformDetector{Err: err}
	return b
}

// Build returns the configured Dependencies
func (b *MockDependenciesBuilder) Build() *Dependencies {
	return b.deps
}
