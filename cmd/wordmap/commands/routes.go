package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/wordmap/internal/api"
	"github.com/JaimeStill/wordmap/internal/infrastructure"
	"github.com/JaimeStill/wordmap/pkg/routes"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table with reverse-lookup names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildAPI()
			if err != nil {
				return err
			}
			return printRoutes(cmd.OutOrStdout(), a.Table)
		},
	}
}

func buildAPI() (*api.API, error) {
	infra, err := infrastructure.NewWithLogger(cfg, logger)
	if err != nil {
		return nil, err
	}
	return api.NewModule(cfg, infra)
}

func printRoutes(w io.Writer, table *routes.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tPATH\tNAME")
	for _, e := range table.Entries() {
		fmt.Fprintf(tw, "%s\t%s%s\t%s\n", e.Method, table.BasePath(), e.Path, e.Name)
	}
	return tw.Flush()
}
