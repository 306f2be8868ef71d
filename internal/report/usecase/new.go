package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"report-srv/internal/catalog"
	"report-srv/internal/renderer"
	"report-srv/internal/report"
	"report-srv/internal/report/repository"
	"report-srv/pkg/log"
	"report-srv/pkg/minio"
)

const (
	defaultSnapshotBucket    = "bhima-reports"
	defaultCacheTTL          = 5 * time.Minute
	defaultLastParamsTTL     = 30 * 24 * time.Hour
	defaultDownloadURLExpiry = 30 * time.Minute
)

// Config holds configuration for report rendering and archiving.
type Config struct {
	// CacheTTL of rendered artifacts. Zero disables the artifact cache.
	CacheTTL          time.Duration
	LastParamsTTL     time.Duration
	DownloadURLExpiry time.Duration
	SnapshotBucket    string
}

type implUseCase struct {
	l         log.Logger
	catalog   *catalog.Catalog
	renderer  renderer.Renderer
	archive   repository.ArchiveRepository
	source    repository.SourceRepository
	cache     repository.CacheRepository
	minio     minio.MinIO
	publisher report.Publisher
	config    Config

	group  singleflight.Group
	now    func() time.Time
	newKey func() string
}

// New creates a new report UseCase implementation.
// cache, minioClient and publisher are optional; the features they back are skipped when nil.
func New(
	l log.Logger,
	cat *catalog.Catalog,
	rdr renderer.Renderer,
	archiveRepo repository.ArchiveRepository,
	sourceRepo repository.SourceRepository,
	cacheRepo repository.CacheRepository,
	minioClient minio.MinIO,
	publisher report.Publisher,
	cfg Config,
) report.UseCase {
	if cfg.SnapshotBucket == "" {
		cfg.SnapshotBucket = defaultSnapshotBucket
	}
	if cfg.CacheTTL < 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.LastParamsTTL <= 0 {
		cfg.LastParamsTTL = defaultLastParamsTTL
	}
	if cfg.DownloadURLExpiry <= 0 {
		cfg.DownloadURLExpiry = defaultDownloadURLExpiry
	}

	return &implUseCase{
		l:         l,
		catalog:   cat,
		renderer:  rdr,
		archive:   archiveRepo,
		source:    sourceRepo,
		cache:     cacheRepo,
		minio:     minioClient,
		publisher: publisher,
		config:    cfg,
		now:       time.Now,
		newKey:    uuid.NewString,
	}
}
