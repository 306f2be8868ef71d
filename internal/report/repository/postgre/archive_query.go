package postgre

import (
	"encoding/json"
	"fmt"
	"time"

	"report-srv/internal/model"
	"report-srv/internal/report/repository"
)

const (
	insertArchiveQuery = `INSERT INTO report_archive
	(archive_key, report_id, label, url, renderer, parameters, created_by, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	selectArchiveQuery = `SELECT archive_key::text, report_id, label, url, renderer, parameters, created_by, created_at
	FROM report_archive`
)

type scanner interface {
	Scan(dest ...any) error
}

func buildArchiveEntry(opts repository.CreateArchiveOptions) *model.ArchiveEntry {
	params := opts.Parameters
	if len(params) == 0 {
		params = []byte("{}")
	}
	createdAt := opts.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return &model.ArchiveEntry{
		Key:        opts.Key,
		ReportID:   opts.ReportID,
		Label:      opts.Label,
		URL:        opts.URL,
		Renderer:   opts.Renderer,
		Parameters: json.RawMessage(params),
		CreatedBy:  opts.CreatedBy,
		CreatedAt:  createdAt.UTC(),
	}
}

func scanArchiveEntry(s scanner) (*model.ArchiveEntry, error) {
	var (
		entry  model.ArchiveEntry
		params []byte
	)
	if err := s.Scan(&entry.Key, &entry.ReportID, &entry.Label, &entry.URL, &entry.Renderer,
		&params, &entry.CreatedBy, &entry.CreatedAt); err != nil {
		return nil, err
	}
	entry.Parameters = json.RawMessage(params)
	entry.CreatedAt = entry.CreatedAt.UTC()
	return &entry, nil
}

// buildListArchivesFilter - Build the WHERE clause shared by the count and page queries.
func buildListArchivesFilter(opts repository.ListArchivesOptions) (string, []any) {
	if opts.ReportID == "" {
		return "", nil
	}
	return ` WHERE report_id = $1`, []any{opts.ReportID}
}

// buildListArchivesQuery - Build the page query, newest first.
func buildListArchivesQuery(where string, args []any, opts repository.ListArchivesOptions) (string, []any) {
	query := selectArchiveQuery + where + ` ORDER BY created_at DESC, archive_key`

	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if opts.Offset > 0 {
		args = append(args, opts.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	return query, args
}
