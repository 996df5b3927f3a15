package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avikstrom/siteconf/internal/config"
	"github.com/avikstrom/siteconf/internal/executor"
)

func TestCheckSystemRequirements(t *testing.T) {
	setupTest(t, validInstallation())

	mock := &executor.MockExecutor{
		ExecuteFunc: func(name string, args ...string) ([]byte, error) {
			return []byte("nginx version: nginx/1.24.0"), nil
		},
	}

	results := checkSystemRequirements(mock)

	if len(results) < 3 {
		t.Fatalf("expected at least 3 checks, got %d", len(results))
	}
	if results[0].Status != "success" || !strings.Contains(results[0].Message, "1.24.0") {
		t.Errorf("expected nginx version check to pass, got %+v", results[0])
	}
}

func TestCheckSystemRequirementsNoNginx(t *testing.T) {
	setupTest(t, validInstallation())

	mock := &executor.MockExecutor{
		LookPathFunc: func(file string) (string, error) {
			return "", fmt.Errorf("not found")
		},
	}

	results := checkSystemRequirements(mock)

	if len(results) != 1 {
		t.Fatalf("expected short-circuit after missing nginx, got %d results", len(results))
	}
	if results[0].Status != "error" {
		t.Errorf("expected error status, got %s", results[0].Status)
	}
}

func TestCheckSystemRequirementsUnknownVersion(t *testing.T) {
	setupTest(t, validInstallation())

	mock := &executor.MockExecutor{
		ExecuteFunc: func(name string, args ...string) ([]byte, error) {
			return []byte("something unexpected"), nil
		},
	}

	results := checkSystemRequirements(mock)

	if results[0].Status != "warning" {
		t.Errorf("expected warning for unknown version, got %+v", results[0])
	}
}

func TestCheckDirWritable(t *testing.T) {
	dir := t.TempDir()

	result := checkDirWritable(dir)
	if result.Status != "success" {
		t.Errorf("expected writable directory to pass, got %+v", result)
	}

	// The probe file must not be left behind
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected probe file to be removed, found %d entries", len(entries))
	}
}

func TestCheckDirWritableMissing(t *testing.T) {
	result := checkDirWritable(filepath.Join(t.TempDir(), "absent"))

	if result.Status != "warning" {
		t.Errorf("expected warning for missing directory, got %+v", result)
	}
}

func TestCheckDirWritableReadOnly(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	dir := t.TempDir()
	if err := os.Chmod(dir, 0555); err != nil {
		t.Fatalf("failed to chmod: %v", err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0755) })

	result := checkDirWritable(dir)
	if result.Status != "warning" {
		t.Errorf("expected warning for read-only directory, got %+v", result)
	}
}

func TestCheckSystemRequirementsReportsDirs(t *testing.T) {
	setupTest(t, validInstallation())

	mock := &executor.MockExecutor{
		ExecuteFunc: func(name string, args ...string) ([]byte, error) {
			return []byte("nginx version: nginx/1.24.0"), nil
		},
	}

	results := checkSystemRequirements(mock)

	var sawAvailable, sawEnabled bool
	for _, r := range results {
		if strings.Contains(r.Message, "/etc/nginx/sites-available") {
			sawAvailable = true
		}
		if strings.Contains(r.Message, "/etc/nginx/sites-enabled") {
			sawEnabled = true
		}
	}
	if !sawAvailable || !sawEnabled {
		t.Errorf("expected both site directories checked, got %+v", results)
	}
}

func TestCheckBindingsComplete(t *testing.T) {
	setupTest(t, validInstallation())

	results := checkBindings()

	if len(results) != 3 {
		t.Fatalf("expected 3 binding checks, got %d", len(results))
	}
	for _, r := range results {
		if r.Status != "success" {
			t.Errorf("expected success for %s", r.Message)
		}
	}
}

func TestCheckBindingsMissing(t *testing.T) {
	inst := validInstallation()
	inst.Paths.InstallDir = ""
	setupTest(t, inst)

	results := checkBindings()

	var sawMissing bool
	for _, r := range results {
		if r.Status == "error" && strings.Contains(r.Message, config.KeyInstallDir) {
			sawMissing = true
		}
	}
	if !sawMissing {
		t.Errorf("expected error naming %s, got %+v", config.KeyInstallDir, results)
	}
}

func TestCheckSiteNotInstalled(t *testing.T) {
	setupTest(t, validInstallation())

	results := checkSite()

	if len(results) != 1 || results[0].Status != "warning" {
		t.Errorf("expected single warning for missing site, got %+v", results)
	}
}

func TestCheckSiteInstalledAndCurrent(t *testing.T) {
	mockDriver := setupTest(t, validInstallation())

	_, content, err := renderSite()
	if err != nil {
		t.Fatalf("renderSite failed: %v", err)
	}
	mockDriver.IsInstalledFunc = func(site string) (bool, error) { return true, nil }
	mockDriver.IsEnabledFunc = func(site string) (bool, error) { return true, nil }
	mockDriver.InstalledFunc = func(site string) (string, error) { return content, nil }

	results := checkSite()

	if len(results) != 3 {
		t.Fatalf("expected 3 site checks, got %d: %+v", len(results), results)
	}
	for _, r := range results {
		if r.Status != "success" {
			t.Errorf("expected all site checks to pass, got %+v", r)
		}
	}
}

func TestCheckSiteUnrenderable(t *testing.T) {
	inst := validInstallation()
	inst.System.Hostname = ""
	setupTest(t, inst)

	results := checkSite()

	if len(results) != 1 || results[0].Status != "warning" {
		t.Errorf("expected render warning, got %+v", results)
	}
}

func TestRunDoctorJSON(t *testing.T) {
	setupTest(t, validInstallation())

	jsonOutput = true

	// Smoke test: doctor must not error even on a host without nginx
	if err := runDoctor(doctorCmd, nil); err != nil {
		t.Errorf("runDoctor failed: %v", err)
	}
}
