package repository

import (
	"time"

	"report-srv/internal/catalog"
)

type CreateArchiveOptions struct {
	Key        string
	ReportID   string
	Label      string
	URL        string
	Renderer   string
	Parameters []byte // JSON
	CreatedBy  string
	CreatedAt  time.Time
}

type ListArchivesOptions struct {
	ReportID string
	Limit    int64
	Offset   int64
}

type ComputeOptions struct {
	Definition catalog.Definition
	Parameters map[string]any
}

type SaveLastParametersOptions struct {
	UserID     string
	ReportID   string
	Parameters map[string]any
	TTL        time.Duration
}
