package cmd

import (
	"fmt"
	"os"

	"github.com/metlab/inventory/config"
	"github.com/metlab/inventory/internal/app"
	"github.com/metlab/inventory/internal/logging"
	"github.com/spf13/cobra"
)

var (
	dbPath   string
	logLevel string
)

// rootCmd starts the interactive console when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Store inventory tracking",
	Long: `Tracks store items, categories, suppliers, stock movements and the
accounts allowed to manage them, in a single local SQLite file.

Run without arguments to open the interactive console.`,
	SilenceUsage: true,
	RunE:         runConsole,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the SQLite database file (overrides INVENTORY_DB_PATH)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides INVENTORY_LOG_LEVEL)")
}

func loadConfig() config.Config {
	cfg := config.LoadConfig()
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if logLevel != "" {
		cfg.Logger.Level = logLevel
	}
	return cfg
}

// openApp builds the application for a command. Callers must Close it.
func openApp(cmd *cobra.Command) (*app.App, error) {
	cfg := loadConfig()

	logger, err := logging.New(cfg.Logger)
	if err != nil {
		return nil, err
	}

	a, err := app.New(cmd.Context(), cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("open database: %w", err)
	}
	return a, nil
}

func closeApp(a *app.App) {
	_ = a.Close()
	_ = a.Logger.Sync()
}
