package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// created_at holds unix nanoseconds so ordering stays exact.
const archiveSchema = `
CREATE TABLE IF NOT EXISTS report_archive (
	archive_key TEXT PRIMARY KEY,
	report_id   TEXT NOT NULL,
	label       TEXT NOT NULL,
	url         TEXT NOT NULL,
	renderer    TEXT NOT NULL,
	parameters  TEXT NOT NULL DEFAULT '{}',
	created_by  TEXT NOT NULL,
	created_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS report_archive_report_created_idx
	ON report_archive (report_id, created_at DESC);
`

// EnsureSchema creates the archive table when it is missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, archiveSchema); err != nil {
		return fmt.Errorf("failed to create report_archive: %w", err)
	}
	return nil
}
