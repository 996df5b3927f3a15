package cli

import (
	"github.com/spf13/cobra"

	"github.com/avikstrom/siteconf/internal/output"
	"github.com/avikstrom/siteconf/internal/template"
)

var placeholdersCmd = &cobra.Command{
	Use:   "placeholders",
	Short: "List the placeholders the template references",
	Long: `List the placeholder names the site template references, in order of
first appearance.

Examples:
  siteconf placeholders
  siteconf placeholders --template ./custom-site.conf --json`,
	Args: cobra.NoArgs,
	RunE: runPlaceholders,
}

func init() {
	// Only the template flag matters here, but sharing the full set keeps
	// invocations interchangeable across commands.
	addBindingFlags(placeholdersCmd)

	rootCmd.AddCommand(placeholdersCmd)
}

func runPlaceholders(cmd *cobra.Command, args []string) error {
	tmpl, err := loadTemplate()
	if err != nil {
		return err
	}

	names, err := template.Placeholders(tmpl)
	if err != nil {
		return err
	}

	if jsonOutput {
		return output.JSON(map[string]interface{}{
			"placeholders": names,
		})
	}

	for _, name := range names {
		output.Print("%s", name)
	}
	return nil
}
