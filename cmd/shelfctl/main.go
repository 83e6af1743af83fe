// shelfctl is a terminal admin client for a library catalog REST API.
// Run without arguments to start the interactive browser; subcommands
// cover scripted listing, inspection and deletion, plus a built-in demo
// API server.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shelfctl/cmd/shelfctl/ui"
	"shelfctl/internal/api"
	"shelfctl/internal/catalog"
	"shelfctl/internal/config"
	"shelfctl/internal/logging"
)

var (
	// Global flags
	flagAPIURL  string
	flagConfig  string
	flagTimeout time.Duration
	flagVerbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "shelfctl",
	Short: "shelfctl - library catalog admin",
	Long: `shelfctl administers a library catalog over its REST API:
books, authors, publishers and categories, with list, create, edit and
delete flows.

Run without arguments to start the interactive browser.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return fmt.Errorf("initialize logging: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse()
	},
}

// loadConfig merges the config file with the command-line flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagAPIURL != "" {
		cfg.API.BaseURL = flagAPIURL
	}
	if flagTimeout > 0 {
		cfg.API.Timeout = flagTimeout.String()
	}
	if flagVerbose {
		cfg.Logging.Enabled = true
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// newServices builds the service bundle from the effective config.
func newServices() (*catalog.Services, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	client := api.NewClient(cfg.API.BaseURL,
		api.WithTimeout(cfg.API.TimeoutDuration()),
		api.WithLogger(logger),
	)
	return catalog.NewServices(client), cfg, nil
}

func runBrowse() error {
	services, cfg, err := newServices()
	if err != nil {
		return err
	}

	logger.Info("starting interactive browser",
		zap.String("base_url", cfg.API.BaseURL))

	app := ui.NewApp(services, ui.NewStyles(ui.ThemeByName(cfg.UI.Theme)), logger)
	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "catalog API base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path (default ~/.shelfctl/config.yaml)")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "request timeout (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug file logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
