package postgre

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"report-srv/internal/model"
	"report-srv/internal/report/repository"
)

// uniqueViolation is the Postgres error code for a duplicate key.
const uniqueViolation = "23505"

// CreateArchive - Insert a new archive entry.
func (r *implRepository) CreateArchive(ctx context.Context, opts repository.CreateArchiveOptions) (*model.ArchiveEntry, error) {
	entry := buildArchiveEntry(opts)

	_, err := r.db.ExecContext(ctx, insertArchiveQuery,
		entry.Key, entry.ReportID, entry.Label, entry.URL, entry.Renderer,
		[]byte(entry.Parameters), entry.CreatedBy, entry.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, repository.ErrDuplicateKey
		}
		r.l.Errorf(ctx, "report.repository.postgre.CreateArchive: Failed to insert archive entry: %v", err)
		return nil, repository.ErrArchiveCreateFailed
	}

	return entry, nil
}

// GetArchiveByKey - Get an archive entry by its key.
func (r *implRepository) GetArchiveByKey(ctx context.Context, key string) (*model.ArchiveEntry, error) {
	row := r.db.QueryRowContext(ctx, selectArchiveQuery+` WHERE archive_key::text = $1`, key)

	entry, err := scanArchiveEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrArchiveNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.GetArchiveByKey: Failed to get archive entry: %v", err)
		return nil, err
	}

	return entry, nil
}

// ListArchives - List archive entries, newest first.
func (r *implRepository) ListArchives(ctx context.Context, opts repository.ListArchivesOptions) ([]*model.ArchiveEntry, int64, error) {
	where, args := buildListArchivesFilter(opts)

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM report_archive`+where, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListArchives: Failed to count archive entries: %v", err)
		return nil, 0, err
	}

	query, args := buildListArchivesQuery(where, args, opts)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListArchives: Failed to list archive entries: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	entries := make([]*model.ArchiveEntry, 0)
	for rows.Next() {
		entry, err := scanArchiveEntry(rows)
		if err != nil {
			r.l.Errorf(ctx, "report.repository.postgre.ListArchives: Failed to scan archive entry: %v", err)
			return nil, 0, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListArchives: Failed to iterate archive entries: %v", err)
		return nil, 0, err
	}

	return entries, total, nil
}
