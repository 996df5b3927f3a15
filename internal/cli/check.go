package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avikstrom/siteconf/internal/output"
	"github.com/avikstrom/siteconf/internal/template"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the bindings satisfy the template",
	Long: `Check that every placeholder in the site template has a value in the
installation bindings.

Unlike render, which stops at the first missing value, check reports
every missing binding and exits non-zero if any are absent.

Examples:
  siteconf check
  siteconf check --config ./installation.yaml --json`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	addBindingFlags(checkCmd)

	rootCmd.AddCommand(checkCmd)
}

// checkReport is the JSON shape of a check run
type checkReport struct {
	Complete     bool     `json:"complete"`
	Placeholders []string `json:"placeholders"`
	Missing      []string `json:"missing,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	inst, err := loadBindings()
	if err != nil {
		return err
	}

	tmpl, err := loadTemplate()
	if err != nil {
		return err
	}

	placeholders, err := template.Placeholders(tmpl)
	if err != nil {
		return err
	}
	missing, err := template.Missing(tmpl, inst.Bindings())
	if err != nil {
		return err
	}

	report := checkReport{
		Complete:     len(missing) == 0,
		Placeholders: placeholders,
		Missing:      missing,
	}

	if jsonOutput {
		if err := output.JSON(report); err != nil {
			return err
		}
	} else {
		bindings := inst.Bindings()
		rows := make([][]string, 0, len(placeholders))
		for _, name := range placeholders {
			status := "ok"
			if bindings[name] == "" {
				status = "missing"
			}
			rows = append(rows, []string{name, status})
		}
		output.Table([]string{"BINDING", "STATUS"}, rows)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing configuration values: %s", strings.Join(missing, ", "))
	}

	if !jsonOutput {
		output.Success("All %d bindings present", len(placeholders))
	}
	return nil
}
