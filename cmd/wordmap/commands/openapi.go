package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/wordmap/pkg/openapi"
)

func openapiCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Write the OpenAPI document to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildAPI()
			if err != nil {
				return err
			}
			if err := openapi.WriteJSON(a.Spec, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "openapi.json", "output file")
	return cmd
}
