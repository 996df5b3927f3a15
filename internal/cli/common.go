package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avikstrom/siteconf/internal/config"
	"github.com/avikstrom/siteconf/internal/driver"
	"github.com/avikstrom/siteconf/internal/errors"
	"github.com/avikstrom/siteconf/internal/logger"
	"github.com/avikstrom/siteconf/internal/output"
	"github.com/avikstrom/siteconf/internal/template"
)

// Binding source flags, shared by every command that renders the template
var (
	bindingsPath string
	hostname     string
	runDir       string
	installDir   string
	setOverrides []string
	templatePath string
)

// addBindingFlags registers the binding source flags on a command
func addBindingFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&bindingsPath, "config", "c", "", "Installation bindings file (default "+config.DefaultPath+")")
	cmd.Flags().StringVar(&hostname, "hostname", "", "Server name the site answers on")
	cmd.Flags().StringVar(&runDir, "run-dir", "", "Runtime directory containing the uwsgi socket")
	cmd.Flags().StringVar(&installDir, "install-dir", "", "Installation directory containing static resources")
	cmd.Flags().StringArrayVar(&setOverrides, "set", nil, "Raw binding override (key=value, repeatable)")
	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "Site template file (default: embedded nginx template)")
}

// loadBindings loads the bindings file and applies flag overrides,
// most specific last.
func loadBindings() (*config.Installation, error) {
	inst, err := deps.BindingsLoader.Load(bindingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load bindings: %w", err)
	}

	if hostname != "" {
		inst.System.Hostname = hostname
	}
	if runDir != "" {
		inst.Paths.RunDir = runDir
	}
	if installDir != "" {
		inst.Paths.InstallDir = installDir
	}

	overrides := make(map[string]string, len(setOverrides))
	for _, kv := range setOverrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set value %q, expected key=value", kv)
		}
		overrides[key] = value
	}
	if err := inst.Apply(overrides); err != nil {
		return nil, err
	}

	if err := validateBindings(inst); err != nil {
		return nil, err
	}

	logger.DebugFields("bindings resolved", map[string]interface{}{
		"hostname":    inst.System.Hostname,
		"run_dir":     inst.Paths.RunDir,
		"install_dir": inst.Paths.InstallDir,
	})

	return inst, nil
}

// loadTemplate returns the template text, from --template if given,
// otherwise the embedded site template.
func loadTemplate() (string, error) {
	if templatePath == "" {
		return template.Default(), nil
	}
	logger.Debug("loading template from %s", templatePath)
	return template.Load(templatePath)
}

// renderSite resolves bindings and template and renders the site config.
// Rendering fails fast, naming the first missing binding.
func renderSite() (*config.Installation, string, error) {
	inst, err := loadBindings()
	if err != nil {
		return nil, "", err
	}

	tmpl, err := loadTemplate()
	if err != nil {
		return nil, "", err
	}

	content, err := template.Expand(tmpl, inst.Bindings())
	if err != nil {
		return nil, "", err
	}

	return inst, content, nil
}

// loadDriver detects platform paths and creates the web server driver
func loadDriver() (driver.Driver, error) {
	paths, err := deps.PlatformDetector.DetectPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to detect web server paths: %w", err)
	}

	drv, err := deps.DriverFactory.Create(driver.Paths{
		Available: paths.Available,
		Enabled:   paths.Enabled,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}

	return drv, nil
}

// requireRoot checks for root privileges via the injected checker
func requireRoot() error {
	return deps.RootChecker.RequireRoot()
}

// confirm prompts the user and returns true on a yes answer
func confirm(format string, args ...interface{}) bool {
	output.Print(format+" [y/N]: ", args...)
	answer, _ := deps.StdinReader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}

// testAndReload tests config and reloads the web server
// If rollback is provided, it will be called on test failure
func testAndReload(drv driver.Driver, reload bool, rollback func() error) error {
	output.Info("Testing configuration...")
	if err := drv.Test(); err != nil {
		if rollback != nil {
			if rbErr := rollback(); rbErr != nil {
				output.Warn("Rollback failed: %v", rbErr)
			}
		}
		return fmt.Errorf("configuration test failed: %w", err)
	}

	if reload {
		output.Info("Reloading %s...", drv.Name())
		if err := drv.Reload(); err != nil {
			return fmt.Errorf("failed to reload %s: %w", drv.Name(), err)
		}
	}

	return nil
}

// outputResult handles JSON or human-readable output
func outputResult(data interface{}, successMsg string, args ...interface{}) error {
	if jsonOutput {
		return output.JSON(data)
	}
	output.Success(successMsg, args...)
	return nil
}

// validateBindings checks the shape of the supplied binding values.
// Absent values are not an error here; the template engine reports
// those per referenced key.
func validateBindings(inst *config.Installation) error {
	if inst.System.Hostname != "" {
		if err := validateHostname(inst.System.Hostname); err != nil {
			return err
		}
	}
	if err := validateAbsPath("run_dir", inst.Paths.RunDir); err != nil {
		return err
	}
	if err := validateAbsPath("install_dir", inst.Paths.InstallDir); err != nil {
		return err
	}
	return nil
}

// validateHostname checks if hostname is a plausible server name
func validateHostname(name string) error {
	if name == "" {
		return errors.Validation("hostname cannot be empty")
	}
	if strings.Contains(name, " ") {
		return errors.Validation("hostname cannot contain spaces")
	}
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
		return errors.Validation("hostname cannot start or end with hyphen")
	}
	if strings.Contains(name, "/") {
		return errors.Validation("hostname cannot contain slashes")
	}
	return nil
}

// validateAbsPath checks that a path binding, when set, is absolute
func validateAbsPath(name, path string) error {
	if path == "" {
		return nil // absent values surface as missing bindings
	}
	if !filepath.IsAbs(path) {
		return errors.Validation(fmt.Sprintf("%s must be an absolute path: %s", name, path))
	}
	return nil
}

// CommandResult represents a common result structure for CLI commands
type CommandResult struct {
	Success bool   `json:"success"`
	Site    string `json:"site"`
	Action  string `json:"action,omitempty"`
	Message string `json:"message,omitempty"`
}

// newSuccessResult creates a success result
func newSuccessResult(site, action string) CommandResult {
	return CommandResult{
		Success: true,
		Site:    site,
		Action:  action,
	}
}

// DryRunOperation describes one operation a command would perform
type DryRunOperation struct {
	Action  string `json:"action"`
	Target  string `json:"target"`
	Details string `json:"details,omitempty"`
}

// DryRunResult describes everything a command would do in dry-run mode
type DryRunResult struct {
	Site          string            `json:"site"`
	Operations    []DryRunOperation `json:"operations"`
	ConfigPreview string            `json:"config_preview,omitempty"`
}

// outputDryRun prints a dry-run result as JSON or human-readable text
func outputDryRun(result *DryRunResult) error {
	if jsonOutput {
		return output.JSON(result)
	}

	output.Info("Dry run for site %s, no changes made", result.Site)
	for _, op := range result.Operations {
		if op.Details != "" {
			output.Print("  %-16s %s (%s)", op.Action, op.Target, op.Details)
		} else {
			output.Print("  %-16s %s", op.Action, op.Target)
		}
	}
	if result.ConfigPreview != "" {
		output.Print("")
		output.Print("%s", result.ConfigPreview)
	}
	return nil
}
