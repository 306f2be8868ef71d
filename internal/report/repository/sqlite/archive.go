package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"report-srv/internal/model"
	"report-srv/internal/report/repository"
)

const (
	insertArchiveQuery = `INSERT INTO report_archive
	(archive_key, report_id, label, url, renderer, parameters, created_by, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	selectArchiveQuery = `SELECT archive_key, report_id, label, url, renderer, parameters, created_by, created_at
	FROM report_archive`
)

type scanner interface {
	Scan(dest ...any) error
}

// CreateArchive - Insert a new archive entry.
func (r *implRepository) CreateArchive(ctx context.Context, opts repository.CreateArchiveOptions) (*model.ArchiveEntry, error) {
	params := opts.Parameters
	if len(params) == 0 {
		params = []byte("{}")
	}
	createdAt := opts.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	entry := &model.ArchiveEntry{
		Key:        opts.Key,
		ReportID:   opts.ReportID,
		Label:      opts.Label,
		URL:        opts.URL,
		Renderer:   opts.Renderer,
		Parameters: json.RawMessage(params),
		CreatedBy:  opts.CreatedBy,
		CreatedAt:  createdAt.UTC(),
	}

	_, err := r.db.ExecContext(ctx, insertArchiveQuery,
		entry.Key, entry.ReportID, entry.Label, entry.URL, entry.Renderer,
		string(entry.Parameters), entry.CreatedBy, entry.CreatedAt.UnixNano())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, repository.ErrDuplicateKey
		}
		r.l.Errorf(ctx, "report.repository.sqlite.CreateArchive: Failed to insert archive entry: %v", err)
		return nil, repository.ErrArchiveCreateFailed
	}

	return entry, nil
}

// GetArchiveByKey - Get an archive entry by its key.
func (r *implRepository) GetArchiveByKey(ctx context.Context, key string) (*model.ArchiveEntry, error) {
	row := r.db.QueryRowContext(ctx, selectArchiveQuery+` WHERE archive_key = ?`, key)

	entry, err := scanArchiveEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrArchiveNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.sqlite.GetArchiveByKey: Failed to get archive entry: %v", err)
		return nil, err
	}

	return entry, nil
}

// ListArchives - List archive entries, newest first.
func (r *implRepository) ListArchives(ctx context.Context, opts repository.ListArchivesOptions) ([]*model.ArchiveEntry, int64, error) {
	where := ""
	args := []any{}
	if opts.ReportID != "" {
		where = ` WHERE report_id = ?`
		args = append(args, opts.ReportID)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM report_archive`+where, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "report.repository.sqlite.ListArchives: Failed to count archive entries: %v", err)
		return nil, 0, err
	}

	query := selectArchiveQuery + where + ` ORDER BY created_at DESC, archive_key`
	if opts.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, opts.Limit, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.sqlite.ListArchives: Failed to list archive entries: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	entries := make([]*model.ArchiveEntry, 0)
	for rows.Next() {
		entry, err := scanArchiveEntry(rows)
		if err != nil {
			r.l.Errorf(ctx, "report.repository.sqlite.ListArchives: Failed to scan archive entry: %v", err)
			return nil, 0, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func scanArchiveEntry(s scanner) (*model.ArchiveEntry, error) {
	var (
		entry     model.ArchiveEntry
		params    string
		createdAt int64
	)
	if err := s.Scan(&entry.Key, &entry.ReportID, &entry.Label, &entry.URL, &entry.Renderer,
		&params, &entry.CreatedBy, &createdAt); err != nil {
		return nil, err
	}
	entry.Parameters = json.RawMessage(params)
	entry.CreatedAt = time.Unix(0, createdAt).UTC()
	return &entry, nil
}
