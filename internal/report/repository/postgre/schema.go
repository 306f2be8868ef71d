package postgre

import (
	"context"
	"database/sql"
	"fmt"
)

const archiveSchema = `
CREATE TABLE IF NOT EXISTS report_archive (
	archive_key UUID PRIMARY KEY,
	report_id   TEXT NOT NULL,
	label       TEXT NOT NULL,
	url         TEXT NOT NULL,
	renderer    TEXT NOT NULL,
	parameters  JSONB NOT NULL DEFAULT '{}'::jsonb,
	created_by  TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
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
