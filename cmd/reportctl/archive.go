package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"report-srv/internal/report"
	"report-srv/pkg/paginator"
)

func newArchiveCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Save and inspect archived reports",
	}

	cmd.AddCommand(
		newArchiveSaveCmd(opts),
		newArchiveGetCmd(opts),
		newArchiveListCmd(opts),
		newArchiveRenderCmd(opts),
	)
	return cmd
}

func newArchiveSaveCmd(opts *rootOptions) *cobra.Command {
	var (
		label       string
		rendererKey string
		params      []string
	)

	cmd := &cobra.Command{
		Use:   "save <report id>",
		Short: "Archive a report with its parameters and print the archive key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parameters, err := parseParams(params)
			if err != nil {
				return err
			}

			uc, cleanup, err := opts.useCase(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			o, err := uc.SaveAs(cmd.Context(), opts.scope(), report.SaveInput{
				ReportID:   args[0],
				Label:      label,
				Renderer:   rendererFlag(cmd, rendererKey),
				Parameters: parameters,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), o.ArchiveKey)
			return nil
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "archive label (default: report title)")
	cmd.Flags().StringVarP(&rendererKey, "renderer", "r", "pdf", "renderer stored with the entry")
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "report parameter as key=value, repeatable")

	return cmd
}

func newArchiveGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print an archive entry as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, cleanup, err := opts.useCase(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			o, err := uc.GetArchive(cmd.Context(), opts.scope(), report.GetArchiveInput{Key: args[0]})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(o)
		},
	}
}

func newArchiveListCmd(opts *rootOptions) *cobra.Command {
	var (
		reportID string
		page     int
		limit    int64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archive entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, cleanup, err := opts.useCase(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			o, err := uc.ListArchives(cmd.Context(), opts.scope(), report.ListArchivesInput{
				ReportID: reportID,
				Paginate: paginator.PaginateQuery{Page: page, Limit: limit},
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tREPORT\tLABEL\tRENDERER\tCREATED")
			for _, a := range o.Archives {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", a.Key, a.ReportID, a.Label, a.Renderer, a.CreatedAt.Format(time.RFC3339))
			}
			fmt.Fprintf(w, "page %d/%d, %d total\n", o.Paginator.CurrentPage, o.Paginator.TotalPages(), o.Paginator.Total)
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&reportID, "report", "", "only entries of this report")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().Int64Var(&limit, "limit", paginator.DefaultLimit, "entries per page")

	return cmd
}

func newArchiveRenderCmd(opts *rootOptions) *cobra.Command {
	var (
		rendererKey string
		out         string
	)

	cmd := &cobra.Command{
		Use:   "render <key>",
		Short: "Render an archived report with its stored parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, cleanup, err := opts.useCase(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			o, err := uc.RenderArchive(cmd.Context(), opts.scope(), report.RenderArchiveInput{
				Key:      args[0],
				Renderer: rendererFlag(cmd, rendererKey),
				Lang:     opts.lang,
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, out, o)
		},
	}

	cmd.Flags().StringVarP(&rendererKey, "renderer", "r", "", "renderer key (default: the stored one)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")

	return cmd
}
