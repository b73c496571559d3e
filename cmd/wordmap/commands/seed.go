package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/wordmap/internal/seed"
	"github.com/JaimeStill/wordmap/pkg/database"
)

func seedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert starter posts and words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := seed.Load(file)
			if err != nil {
				return err
			}

			db, err := database.New(&cfg.Database, logger)
			if err != nil {
				return err
			}
			conn := db.Connection()
			defer conn.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Database.ConnTimeoutDuration()*10)
			defer cancel()

			res, err := seed.Run(ctx, conn, data)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d posts and %d words\n", res.Posts, res.Words)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "external seed file (overrides embedded)")
	return cmd
}
