package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newReportsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reports",
		Short: "List the reports in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, cleanup, err := opts.useCase(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			defs, err := uc.ListDefinitions(cmd.Context(), opts.scope())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tREQUIRED")
			for _, d := range defs {
				fmt.Fprintf(w, "%s\t%s\t%s\n", d.ID, d.Title, strings.Join(d.RequiredParams, ","))
			}
			return w.Flush()
		},
	}
}
