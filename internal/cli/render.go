package cli

import (
	"fmt"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"

	"github.com/avikstrom/siteconf/internal/output"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the site configuration",
	Long: `Render the site template with the installation bindings.

The result is written to stdout, or to a file with --output. Rendering
fails before producing any output if a binding the template references
is missing.

Examples:
  siteconf render --config /etc/siteconf/installation.yaml
  siteconf render --hostname example.com --run-dir /var/run/app --install-dir /opt/app
  siteconf render --output /tmp/example.com.conf
  siteconf render --template ./custom-site.conf`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	addBindingFlags(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Write rendered config to file instead of stdout")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	inst, content, err := renderSite()
	if err != nil {
		return err
	}

	if renderOutput == "" {
		if jsonOutput {
			return output.JSON(map[string]interface{}{
				"success": true,
				"site":    inst.SiteName(),
				"content": content,
			})
		}
		fmt.Print(content)
		return nil
	}

	// Atomic write, so readers never observe a partial render
	if err := renameio.WriteFile(renderOutput, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write rendered config: %w", err)
	}

	return outputResult(
		map[string]interface{}{
			"success": true,
			"site":    inst.SiteName(),
			"output":  renderOutput,
		},
		"Site config for %s written to %s", inst.SiteName(), renderOutput,
	)
}
