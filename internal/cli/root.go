package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/commonsapp/commons/internal/factory"
	sqlitestorage "github.com/commonsapp/commons/internal/storage/sqlite"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "commons",
		Short: "CLI for the commons app",
		Long: `commons manages local accounts, sessions and communities.

All data is kept in a SQLite database under the data directory, so a
session started in one invocation is still active in the next.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.EnsureDataDir(); err != nil {
				return err
			}

			logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
			if cfg.Verbose {
				logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			}

			var err error
			app, err = factory.New(cmd.Context(), factory.Config{
				Logger:       logger,
				StorageType:  factory.StorageTypeSQLite,
				SQLiteConfig: &sqlitestorage.Config{Path: cfg.DatabasePath()},
			})
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app != nil {
				return app.Close()
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Data directory (env: COMMONS_DATA_DIR)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newSignupCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newCommunityCmd())
	rootCmd.AddCommand(newStatesCmd())

	return rootCmd
}

// Execute runs the root command, reporting errors in the configured format
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		NewOutput(cfg.Output).PrintError(err)
		os.Exit(1)
	}
}
