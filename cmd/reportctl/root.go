package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"report-srv/config"
	configSQLite "report-srv/config/sqlite"
	"report-srv/internal/catalog"
	"report-srv/internal/model"
	"report-srv/internal/renderer"
	"report-srv/internal/report"
	fileSource "report-srv/internal/report/repository/file"
	reportSQLite "report-srv/internal/report/repository/sqlite"
	reportUsecase "report-srv/internal/report/usecase"
	"report-srv/pkg/locale"
	"report-srv/pkg/log"
)

type rootOptions struct {
	catalogPath string
	dataDir     string
	archiveDB   string
	pdfEngine   string
	lang        string
	user        string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "reportctl",
		Short:         "Render and archive BHIMA reports from the command line",
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.catalogPath, "catalog", "", "report catalog YAML (default: built-in catalog)")
	flags.StringVar(&opts.dataDir, "data-dir", ".", "directory holding <report id>.json datasets")
	flags.StringVar(&opts.archiveDB, "archive-db", "report-archive.db", "SQLite archive database")
	flags.StringVar(&opts.pdfEngine, "pdf-engine", config.PDFEngineBuiltin, "PDF engine (builtin or chrome)")
	flags.StringVar(&opts.lang, "lang", locale.DefaultLang, "report language (en or fr)")
	flags.StringVar(&opts.user, "user", "reportctl", "user recorded on archive entries")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")

	cmd.AddCommand(
		newReportsCmd(opts),
		newRenderCmd(opts),
		newArchiveCmd(opts),
	)

	return cmd
}

func (o *rootOptions) scope() model.Scope {
	return model.Scope{UserID: o.user, Username: o.user, Role: "cli"}
}

func (o *rootOptions) logger() log.Logger {
	if !o.verbose {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{Level: "debug", Mode: "development", Encoding: "console"})
}

// useCase wires the report usecase over the file source and the SQLite archive.
func (o *rootOptions) useCase(ctx context.Context) (report.UseCase, func(), error) {
	l := o.logger()

	cat, err := catalog.Load(o.catalogPath)
	if err != nil {
		return nil, nil, err
	}

	rdr, err := renderer.New(l, renderer.Config{PDFEngine: o.pdfEngine})
	if err != nil {
		return nil, nil, err
	}

	db, err := configSQLite.Connect(ctx, config.SQLiteConfig{Path: o.archiveDB})
	if err != nil {
		_ = rdr.Close()
		return nil, nil, err
	}
	if err := reportSQLite.EnsureSchema(ctx, db); err != nil {
		_ = rdr.Close()
		_ = configSQLite.Disconnect()
		return nil, nil, err
	}

	uc := reportUsecase.New(l, cat, rdr, reportSQLite.New(db, l), fileSource.New(o.dataDir), nil, nil, nil, reportUsecase.Config{})

	cleanup := func() {
		_ = rdr.Close()
		_ = configSQLite.Disconnect()
	}
	return uc, cleanup, nil
}

// parseParams turns repeated key=value flags into report parameters. A key given more than
// once becomes a list.
func parseParams(pairs []string) (map[string]any, error) {
	params := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid parameter %q, want key=value", pair)
		}

		switch prev := params[k].(type) {
		case nil:
			params[k] = v
		case []any:
			params[k] = append(prev, v)
		default:
			params[k] = []any{prev, v}
		}
	}
	return params, nil
}

func rendererFlag(cmd *cobra.Command, value string) *string {
	if !cmd.Flags().Changed("renderer") {
		return nil
	}
	return &value
}
