package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"report-srv/internal/report"
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var (
		rendererKey string
		params      []string
		out         string
	)

	cmd := &cobra.Command{
		Use:   "render <report id>",
		Short: "Render a report to stdout or a file",
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

			o, err := uc.Render(cmd.Context(), opts.scope(), report.RenderInput{
				ReportID:   args[0],
				Renderer:   rendererFlag(cmd, rendererKey),
				Parameters: parameters,
				Lang:       opts.lang,
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, out, o)
		},
	}

	cmd.Flags().StringVarP(&rendererKey, "renderer", "r", "pdf", "renderer key (json, html, pdf)")
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "report parameter as key=value, repeatable")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")

	return cmd
}

func writeOutput(cmd *cobra.Command, path string, o report.RenderOutput) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(o.Payload)
		return err
	}
	if err := os.WriteFile(path, o.Payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%s, %d bytes)\n", path, o.ContentType, len(o.Payload))
	return nil
}
