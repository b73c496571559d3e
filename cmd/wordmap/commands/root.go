// Package commands implements the wordmap administration CLI.
package commands

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JaimeStill/wordmap/internal/config"
	"github.com/JaimeStill/wordmap/pkg/logging"
)

var (
	configDir string
	envFile   string

	cfg    *config.Config
	logger *slog.Logger
)

// Execute runs the root command.
func Execute() error {
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "wordmap",
		Short:        "Administer the wordmap service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			loaded, err := config.LoadFrom(configDir)
			if err != nil {
				return err
			}
			cfg = loaded
			logger = logging.NewWithWriter(&cfg.Logging, cmd.ErrOrStderr())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory containing config.toml")
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before configuration")

	root.AddCommand(migrateCmd(), seedCmd(), routesCmd(), openapiCmd())
	return root
}
