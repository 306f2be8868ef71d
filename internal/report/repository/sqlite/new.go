package sqlite

import (
	"database/sql"

	"report-srv/internal/report/repository"
	"report-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New returns an archive repository backed by an embedded SQLite database.
func New(db *sql.DB, l log.Logger) repository.ArchiveRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
