package consumer

import (
	"context"
	"database/sql"

	"report-srv/config"
	"report-srv/pkg/discord"
	"report-srv/pkg/log"
	"report-srv/pkg/minio"
)

// ConsumerServer runs the archive snapshot worker.
type ConsumerServer struct {
	l      log.Logger
	config *config.Config

	postgresDB  *sql.DB
	archiveDB   *sql.DB
	minioClient minio.MinIO

	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server
type Config struct {
	Logger log.Logger
	Config *config.Config

	// PostgresDB computes datasets. ArchiveDB holds archive entries.
	PostgresDB  *sql.DB
	ArchiveDB   *sql.DB
	MinIOClient minio.MinIO

	Discord discord.IDiscord
}

// Run starts the consumers and blocks until ctx is cancelled.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		srv.stopConsumers(ctx, consumers)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(context.WithoutCancel(ctx), consumers)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}
