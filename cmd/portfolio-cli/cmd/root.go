package cmd

import (
	"context"
	"os"

	"github.com/divyank00/portfolio/internal/app"
	"github.com/divyank00/portfolio/internal/config"
	"github.com/divyank00/portfolio/internal/logging"
	"github.com/spf13/cobra"
)

var (
	contentDir string
	siteFile   string
)

var rootCmd = &cobra.Command{
	Use:   "portfolio-cli",
	Short: "Portfolio site tooling",
	Long: `portfolio-cli builds and inspects the portfolio site.

Available commands:
  build       Render the site into a static directory
  projects    List the featured projects found in the content directory
  version     Print the version number

Use "portfolio-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.New()
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&contentDir, "content", "", "content directory (defaults to CONTENT_DIR or ./content)")
	rootCmd.PersistentFlags().StringVar(&siteFile, "site", "", "site config YAML (defaults to SITE_FILE or the built-in config)")
}

// loadConfig reads the environment and applies the persistent flags. The CLI never watches files.
func loadConfig() *config.Config {
	cfg := config.New()
	if contentDir != "" {
		cfg.ContentDir = contentDir
	}
	if siteFile != "" {
		cfg.SiteFile = siteFile
	}
	cfg.HotReload = false
	return cfg
}

func openApp(ctx context.Context) (*app.App, error) {
	return app.New(ctx, loadConfig())
}
