// Package main provides the skylander CLI entry point. Run without
// arguments it starts the interactive TUI; subcommands expose the same
// operations for scripting.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"skylander/cmd/skylander/config"
	"skylander/cmd/skylander/ui"
	"skylander/internal/logging"
	"skylander/internal/session"
)

var (
	// Global flags
	verbose bool
	apiURL  string

	// Logger for subcommands; the TUI logs to category files instead.
	logger *zap.Logger
)

// rootCmd launches the interactive client by default.
var rootCmd = &cobra.Command{
	Use:   "skylander",
	Short: "SkyLander - crowdsourced geolocation enrollment client",
	Long: `SkyLander is the terminal client for crowdsourced geolocation
enrollment: register physical locations with a coordinate, an address,
and a short verification video, and track their review status.

Administrators review submitted enrollments and bind ArUco marker ids
via the companion detection server.

Run without arguments to start the interactive interface.`,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// runInteractive starts the full-screen TUI.
func runInteractive() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir, err := config.ConfigDir()
	if err == nil {
		if err := logging.Initialize(dir, cfg.DebugMode); err != nil {
			fmt.Fprintf(os.Stderr, "warning: debug logging unavailable: %v\n", err)
		}
		defer logging.Close()
	}

	store, err := session.DefaultFileStore()
	if err != nil {
		return fmt.Errorf("cannot locate session store: %w", err)
	}

	app := ui.NewApp(cfg, store)
	p := tea.NewProgram(ui.NewModel(app), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// loadConfig resolves configuration with the --api-url flag on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	if apiURL != "" {
		cfg.APIBaseURL = apiURL
	}
	return cfg, nil
}

func init() {
	// Assigned here rather than in the composite literal so the closure's
	// reference to rootCmd does not form an initialization cycle.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// The interactive UI owns the terminal; skip zap there.
		if cmd == rootCmd {
			return nil
		}
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "override the enrollment API base URL")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(locationsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(arucoCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
