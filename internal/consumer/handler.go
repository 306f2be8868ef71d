package consumer

import (
	"context"
	"fmt"

	"report-srv/config"
	"report-srv/internal/catalog"
	"report-srv/internal/renderer"
	reportConsumer "report-srv/internal/report/delivery/kafka/consumer"
	"report-srv/internal/report/repository"
	reportPostgre "report-srv/internal/report/repository/postgre"
	reportSQLite "report-srv/internal/report/repository/sqlite"
	reportUsecase "report-srv/internal/report/usecase"
)

type domainConsumers struct {
	renderer       renderer.Renderer
	reportConsumer reportConsumer.Consumer
}

// setupDomains initializes the report domain (repositories, usecase, consumer)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
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
	var archiveRepo repository.ArchiveRepository = pgRepo
	if srv.config.Archive.Driver == config.ArchiveDriverSQLite {
		archiveRepo = reportSQLite.New(srv.archiveDB, srv.l)
	}

	// snapshots always render fresh, so no cache and no publisher
	uc := reportUsecase.New(srv.l, cat, rdr, archiveRepo, pgRepo, nil, srv.minioClient, nil, reportUsecase.Config{
		SnapshotBucket: srv.config.MinIO.Bucket,
	})

	cons, err := reportConsumer.New(reportConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.config.Kafka,
		UseCase:     uc,
	})
	if err != nil {
		_ = rdr.Close()
		return nil, fmt.Errorf("failed to create report consumer: %w", err)
	}

	srv.l.Infof(ctx, "Report domain initialized")

	return &domainConsumers{
		renderer:       rdr,
		reportConsumer: cons,
	}, nil
}

func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.reportConsumer.ConsumeArchived(ctx); err != nil {
		return fmt.Errorf("failed to start report consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if err := consumers.reportConsumer.Close(); err != nil {
		srv.l.Errorf(ctx, "Error closing report consumer: %v", err)
	}
	if err := consumers.renderer.Close(); err != nil {
		srv.l.Errorf(ctx, "Error closing renderer: %v", err)
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
