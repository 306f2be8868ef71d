package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"report-srv/config"
	configMinio "report-srv/config/minio"
	configPostgre "report-srv/config/postgre"
	configSQLite "report-srv/config/sqlite"
	"report-srv/internal/consumer"
	"report-srv/pkg/discord"
	"report-srv/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Report Snapshot Consumer...")

	// PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(context.Background(), postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	archiveDB := postgresDB
	if cfg.Archive.Driver == config.ArchiveDriverSQLite {
		archiveDB, err = configSQLite.Connect(ctx, cfg.SQLite)
		if err != nil {
			logger.Errorf(ctx, "Failed to open SQLite archive: %v", err)
			return
		}
		defer configSQLite.Disconnect()
		logger.Info(ctx, "SQLite archive opened")
	}

	// MinIO
	minioClient, err := configMinio.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	defer configMinio.Disconnect()
	logger.Info(ctx, "MinIO client initialized")

	// Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	}

	srv, err := consumer.New(consumer.Config{
		Logger:      logger,
		Config:      cfg,
		PostgresDB:  postgresDB,
		ArchiveDB:   archiveDB,
		MinIOClient: minioClient,
		Discord:     discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server stopped gracefully")
}
