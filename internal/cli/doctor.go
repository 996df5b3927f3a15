package cli

import (
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avikstrom/siteconf/internal/executor"
	"github.com/avikstrom/siteconf/internal/output"
	"github.com/avikstrom/siteconf/internal/template"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system status and diagnose issues",
	Long: `Run diagnostic checks on the system and the site configuration.

Checks:
  - nginx installation and version
  - Web server configuration directories
  - Installation bindings completeness
  - Installed site status

Examples:
  siteconf doctor
  siteconf doctor --json`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	addBindingFlags(doctorCmd)

	rootCmd.AddCommand(doctorCmd)
}

// CheckResult represents a single diagnostic check result
type CheckResult struct {
	Status  string `json:"status"` // "success", "warning", "error"
	Message string `json:"message"`
}

// DoctorReport contains all diagnostic results
type DoctorReport struct {
	SystemRequirements []CheckResult `json:"system_requirements"`
	Bindings           []CheckResult `json:"bindings"`
	Site               []CheckResult `json:"site"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	exec := executor.NewSystemExecutor()

	report := &DoctorReport{}
	report.SystemRequirements = checkSystemRequirements(exec)
	report.Bindings = checkBindings()
	report.Site = checkSite()

	if jsonOutput {
		return output.JSON(report)
	}

	displayDoctorResults(report)
	return nil
}

var nginxVersionPattern = regexp.MustCompile(`nginx/(\d+\.\d+\.\d+)`)

func checkSystemRequirements(exec executor.CommandExecutor) []CheckResult {
	results := []CheckResult{}

	// nginx binary
	if _, err := exec.LookPath("nginx"); err != nil {
		results = append(results, CheckResult{
			Status:  "error",
			Message: "nginx not found on PATH",
		})
		return results
	}

	// nginx prints its version banner to stderr; CombinedOutput catches it
	versionOut, _ := exec.Execute("nginx", "-v")
	if m := nginxVersionPattern.FindSubmatch(versionOut); m != nil {
		results = append(results, CheckResult{
			Status:  "success",
			Message: "nginx " + string(m[1]) + " installed",
		})
	} else {
		results = append(results, CheckResult{
			Status:  "warning",
			Message: "nginx installed, version unknown",
		})
	}

	// systemctl is optional; the driver falls back to nginx -s reload
	if _, err := exec.LookPath("systemctl"); err != nil {
		results = append(results, CheckResult{
			Status:  "warning",
			Message: "systemctl not found, reload will use nginx -s reload",
		})
	} else {
		results = append(results, CheckResult{
			Status:  "success",
			Message: "systemctl available for reloads",
		})
	}

	// Site directories: present and writable
	if paths, err := deps.PlatformDetector.DetectPaths(); err != nil {
		results = append(results, CheckResult{
			Status:  "error",
			Message: "web server paths not detected: " + err.Error(),
		})
	} else {
		results = append(results, checkDirWritable(paths.Available))
		if paths.Enabled != paths.Available {
			results = append(results, checkDirWritable(paths.Enabled))
		}
	}

	return results
}

// checkDirWritable reports whether dir exists and files can be created
// in it, by creating and removing a probe file.
func checkDirWritable(dir string) CheckResult {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return CheckResult{
			Status:  "warning",
			Message: dir + " does not exist, install will create it",
		}
	}

	f, err := os.CreateTemp(dir, ".siteconf-doctor-*")
	if err != nil {
		return CheckResult{
			Status:  "warning",
			Message: dir + " is not writable, install will need sudo",
		}
	}
	f.Close()
	os.Remove(f.Name())

	return CheckResult{
		Status:  "success",
		Message: dir + " is writable",
	}
}

func checkBindings() []CheckResult {
	inst, err := loadBindings()
	if err != nil {
		return []CheckResult{{
			Status:  "error",
			Message: "failed to load bindings: " + err.Error(),
		}}
	}

	tmpl, err := loadTemplate()
	if err != nil {
		return []CheckResult{{
			Status:  "error",
			Message: "failed to load template: " + err.Error(),
		}}
	}

	names, err := template.Placeholders(tmpl)
	if err != nil {
		return []CheckResult{{
			Status:  "error",
			Message: "malformed template: " + err.Error(),
		}}
	}

	results := []CheckResult{}
	bindings := inst.Bindings()
	for _, name := range names {
		if value := bindings[name]; value != "" {
			results = append(results, CheckResult{
				Status:  "success",
				Message: name + " = " + value,
			})
		} else {
			results = append(results, CheckResult{
				Status:  "error",
				Message: name + " is not set",
			})
		}
	}
	return results
}

func checkSite() []CheckResult {
	inst, content, err := renderSite()
	if err != nil {
		return []CheckResult{{
			Status:  "warning",
			Message: "site cannot be rendered: " + err.Error(),
		}}
	}
	site := inst.SiteName()

	drv, err := loadDriver()
	if err != nil {
		return []CheckResult{{
			Status:  "error",
			Message: err.Error(),
		}}
	}

	installed, err := drv.IsInstalled(site)
	if err != nil {
		return []CheckResult{{
			Status:  "error",
			Message: "failed to check site status: " + err.Error(),
		}}
	}
	if !installed {
		return []CheckResult{{
			Status:  "warning",
			Message: site + " is not installed",
		}}
	}

	results := []CheckResult{{
		Status:  "success",
		Message: site + " is installed",
	}}

	if enabled, err := drv.IsEnabled(site); err == nil && enabled {
		results = append(results, CheckResult{
			Status:  "success",
			Message: site + " is enabled",
		})
	} else {
		results = append(results, CheckResult{
			Status:  "warning",
			Message: site + " is not enabled",
		})
	}

	if onDisk, err := drv.Installed(site); err == nil {
		if onDisk == content {
			results = append(results, CheckResult{
				Status:  "success",
				Message: "installed config matches current render",
			})
		} else {
			results = append(results, CheckResult{
				Status:  "warning",
				Message: "installed config differs from current render",
			})
		}
	}

	return results
}

func displayDoctorResults(report *DoctorReport) {
	sections := []struct {
		title  string
		checks []CheckResult
	}{
		{"System requirements", report.SystemRequirements},
		{"Installation bindings", report.Bindings},
		{"Site", report.Site},
	}

	for _, section := range sections {
		output.Print("")
		output.Print("%s", section.title)
		output.Print("%s", strings.Repeat("-", len(section.title)))
		for _, check := range section.checks {
			switch check.Status {
			case "success":
				output.Success("%s", check.Message)
			case "warning":
				output.Warn("%s", check.Message)
			default:
				output.Error("%s", check.Message)
			}
		}
	}
	output.Print("")
}
