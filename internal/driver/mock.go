package driver

// MockDriver is a test double for Driver interface
type MockDriver struct {
	name  string
	paths Paths

	// Function mocks - set these to customize behavior
	InstallFunc     func(site, content string) error
	RemoveFunc      func(site string) error
	EnableFunc      func(site string) error
	DisableFunc     func(site string) error
	IsInstalledFunc func(site string) (bool, error)
	IsEnabledFunc   func(site string) (bool, error)
	InstalledFunc   func(site string) (string, error)
	TestFunc        func() error
	ReloadFunc      func() error

	// Call tracking - check these to verify interactions
	InstallCalls     []InstallCall
	RemoveCalls      []string
	EnableCalls      []string
	DisableCalls     []string
	IsInstalledCalls []string
	IsEnabledCalls   []string
	InstalledCalls   []string
	TestCalls        int
	ReloadCalls      int
}

// InstallCall records arguments passed to Install
type InstallCall struct {
	Site    string
	Content string
}

// NewMockDriver creates a new MockDriver with default no-op implementations
func NewMockDriver(name, availableDir, enabledDir string) *MockDriver {
	return &MockDriver{
		name: name,
		paths: Paths{
			Available: availableDir,
			Enabled:   enabledDir,
		},
	}
}

// Name returns the driver name
func (m *MockDriver) Name() string {
	return m.name
}

// Paths returns the configured paths
func (m *MockDriver) Paths() Paths {
	return m.paths
}

// Install records the call and invokes the mock function if set
func (m *MockDriver) Install(site, content string) error {
	m.InstallCalls = append(m.InstallCalls, InstallCall{Site: site, Content: content})
	if m.InstallFunc != nil {
		return m.InstallFunc(site, content)
	}
	return nil
}

// Remove records the call and invokes the mock function if set
func (m *MockDriver) Remove(site string) error {
	m.RemoveCalls = append(m.RemoveCalls, site)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(site)
	}
	return nil
}

// Enable records the call and invokes the mock function if set
func (m *MockDriver) Enable(site string) error {
	m.EnableCalls = append(m.EnableCalls, site)
	if m.EnableFunc != nil {
		return m.EnableFunc(site)
	}
	return nil
}

// Disable records the call and invokes the mock function if set
func (m *MockDriver) Disable(site string) error {
	m.DisableCalls = append(m.DisableCalls, site)
	if m.DisableFunc != nil {
		return m.DisableFunc(site)
	}
	return nil
}

// IsInstalled records the call and invokes the mock function if set
func (m *MockDriver) IsInstalled(site string) (bool, error) {
	m.IsInstalledCalls = append(m.IsInstalledCalls, site)
	if m.IsInstalledFunc != nil {
		return m.IsInstalledFunc(site)
	}
	return false, nil
}

// IsEnabled records the call and invokes the mock function if set
func (m *MockDriver) IsEnabled(site string) (bool, error) {
	m.IsEnabledCalls = append(m.IsEnabledCalls, site)
	if m.IsEnabledFunc != nil {
		return m.IsEnabledFunc(site)
	}
	return false, nil
}

// Installed records the call and invokes the mock function if set
func (m *MockDriver) Installed(site string) (string, error) {
	m.InstalledCalls = append(m.InstalledCalls, site)
	if m.InstalledFunc != nil {
		return m.InstalledFunc(site)
	}
	return "", nil
}

// Test records the call and invokes the mock function if set
func (m *MockDriver) Test() error {
	m.TestCalls++
	if m.TestFunc != nil {
		return m.TestFunc()
	}
	return nil
}

// Reload records the call and invokes the mock function if set
func (m *MockDriver) Reload() error {
	m.ReloadCalls++
	if m.ReloadFunc != nil {
		return m.ReloadFunc()
	}
	return nil
}

// Reset clears all call tracking
func (m *MockDriver) Reset() {
	m.InstallCalls = nil
	m.RemoveCalls = nil
	m.EnableCalls = nil
	m.DisableCalls = nil
	m.IsInstalledCalls = nil
	m.IsEnabledCalls = nil
	m.InstalledCalls = nil
	m.TestCalls = 0
	m.ReloadCalls = 0
}
