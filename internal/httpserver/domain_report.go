package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"report-srv/config"
	"report-srv/internal/catalog"
	"report-srv/internal/middleware"
	"report-srv/internal/renderer"
	"report-srv/internal/report"
	reportHTTP "report-srv/internal/report/delivery/http"
	reportProducer "report-srv/internal/report/delivery/kafka/producer"
	"report-srv/internal/report/repository"
	reportPostgre "report-srv/internal/report/repository/postgre"
	reportRedis "report-srv/internal/report/repository/redis"
	reportSQLite "report-srv/internal/report/repository/sqlite"
	reportUsecase "report-srv/internal/report/usecase"
)

// setupReportDomain initializes the report domain (repo -> usecase -> delivery)
func (srv HTTPServer) setupReportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) (renderer.Renderer, error) {
	cat, err := catalog.Load(srv.config.Report.CatalogPath)
	if err != nil {
		return nil, err
	}

	rdr, err := renderer.New(srv.l, renderer.Config{
		Timeout:          srv.config.Renderer.Timeout,
		PDFEngine:        srv.config.Renderer.PDFEngine,
		ChromeBin:        srv.config.Renderer.ChromeBin,
		ChromeControlURL: srv.config.Renderer.ChromeControlURL,
	})
	if err != nil {
		return nil, err
	}

	pgRepo := reportPostgre.New(srv.postgresDB, srv.l)
	archiveRepo, err := srv.archiveRepository(ctx, pgRepo)
	if err != nil {
		_ = rdr.Close()
		return nil, err
	}

	var cacheRepo repository.CacheRepository
	if srv.redisClient != nil {
		cacheRepo = reportRedis.New(srv.redisClient, srv.l)
	}

	var publisher report.Publisher
	if srv.kafkaProducer != nil {
		publisher = reportProducer.New(srv.l, srv.kafkaProducer)
	}

	uc := reportUsecase.New(srv.l, cat, rdr, archiveRepo, pgRepo, cacheRepo, srv.minioClient, publisher, reportUsecase.Config{
		CacheTTL:          srv.config.Report.CacheTTL,
		LastParamsTTL:     srv.config.Report.LastParamsTTL,
		DownloadURLExpiry: srv.config.Report.DownloadURLExpiry,
		SnapshotBucket:    srv.config.MinIO.Bucket,
	})

	handler := reportHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Report domain registered (%d reports, archive driver %s)", len(cat.List()), srv.config.Archive.Driver)
	return rdr, nil
}

func (srv HTTPServer) archiveRepository(ctx context.Context, pgRepo repository.PostgresRepository) (repository.ArchiveRepository, error) {
	switch srv.config.Archive.Driver {
	case config.ArchiveDriverSQLite:
		if err := reportSQLite.EnsureSchema(ctx, srv.archiveDB); err != nil {
			return nil, fmt.Errorf("failed to prepare sqlite archive: %w", err)
		}
		return reportSQLite.New(srv.archiveDB, srv.l), nil
	default:
		if err := reportPostgre.EnsureSchema(ctx, srv.archiveDB); err != nil {
			return nil, fmt.Errorf("failed to prepare postgres archive: %w", err)
		}
		return pgRepo, nil
	}
}
