package repository

import (
	"context"
	"time"

	"report-srv/internal/model"
)

// ArchiveRepository stores saved reports. Entries are append-only.
//
//go:generate mockery --name ArchiveRepository
type ArchiveRepository interface {
	CreateArchive(ctx context.Context, opts CreateArchiveOptions) (*model.ArchiveEntry, error)
	GetArchiveByKey(ctx context.Context, key string) (*model.ArchiveEntry, error)
	// ListArchives returns one page of entries, newest first, and the total matching count.
	ListArchives(ctx context.Context, opts ListArchivesOptions) ([]*model.ArchiveEntry, int64, error)
}

// SourceRepository computes report datasets.
//
//go:generate mockery --name SourceRepository
type SourceRepository interface {
	Compute(ctx context.Context, opts ComputeOptions) (model.Dataset, error)
}

// CacheRepository holds rendered artifacts and last used parameters.
//
//go:generate mockery --name CacheRepository
type CacheRepository interface {
	// GetArtifact returns nil, nil on a cache miss.
	GetArtifact(ctx context.Context, hash string) (*model.Artifact, error)
	SaveArtifact(ctx context.Context, hash string, artifact model.Artifact, ttl time.Duration) error
	// GetLastParameters returns nil, nil when nothing was recorded.
	GetLastParameters(ctx context.Context, userID, reportID string) (map[string]any, error)
	SaveLastParameters(ctx context.Context, opts SaveLastParametersOptions) error
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ArchiveRepository
	SourceRepository
}
