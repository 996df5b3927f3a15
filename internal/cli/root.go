package cli

import (
	"os"

	"github.com/avikstrom/siteconf/internal/logger"
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	verbose    bool
	version    = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "siteconf",
	Short: "Front-end web server configuration for the application",
	Long: `siteconf renders and installs the nginx site configuration that fronts
the application: an HTTP server block proxying requests to the uwsgi
socket and serving static resources from the installation directory.

The site template is filled in from the installation bindings (hostname
and filesystem paths), validated fail-fast, and can be installed into
the web server with syntax checking and reload.`,
}

// Execute runs the root command
func Execute() {
	// Initialize logger based on verbose flag (parsed by cobra)
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
}
