package main

import (
	"context"
	"fmt"

	"report-srv/config"
	configKafka "report-srv/config/kafka"
	configMinio "report-srv/config/minio"
	configPostgre "report-srv/config/postgre"
	configRedis "report-srv/config/redis"
	configSQLite "report-srv/config/sqlite"
	_ "report-srv/docs" // Import swagger docs
	"report-srv/internal/httpserver"
	"report-srv/pkg/discord"
	pkgJWT "report-srv/pkg/jwt"
	pkgKafka "report-srv/pkg/kafka"
	"report-srv/pkg/log"
	"report-srv/pkg/minio"
	pkgRedis "report-srv/pkg/redis"
)

// @title       BHIMA Report Service API
// @description Report rendering, preview and archive API.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name bhima_auth_token
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. PostgreSQL (datasets, and archives unless archive.driver is sqlite)
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	archiveDB := postgresDB
	if cfg.Archive.Driver == config.ArchiveDriverSQLite {
		archiveDB, err = configSQLite.Connect(ctx, cfg.SQLite)
		if err != nil {
			logger.Errorf(ctx, "Failed to open SQLite archive: %v", err)
			return
		}
		defer configSQLite.Disconnect()
		logger.Infof(ctx, "SQLite archive opened at %s", cfg.SQLite.Path)
	}

	// 4. Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	}

	// 5. Optional backends
	redisClient := connectRedis(ctx, logger, cfg)
	if redisClient != nil {
		defer configRedis.Disconnect()
	}
	minioClient := connectMinIO(ctx, logger, cfg)
	if minioClient != nil {
		defer configMinio.Disconnect()
	}
	kafkaProducer := connectProducer(ctx, logger, cfg)
	if kafkaProducer != nil {
		defer configKafka.DisconnectProducer()
	}

	// 6. JWT verification
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize JWT manager: %v", err)
		return
	}

	// 7. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		PostgresDB: postgresDB,
		ArchiveDB:  archiveDB,

		RedisClient:   redisClient,
		MinIOClient:   minioClient,
		KafkaProducer: kafkaProducer,

		JWTManager:   jwtManager,
		CookieConfig: cfg.Cookie,

		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}
}

// connectRedis returns nil when Redis is unreachable; rendering then runs without the artifact cache.
func connectRedis(ctx context.Context, logger log.Logger, cfg *config.Config) pkgRedis.IRedis {
	client, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Warnf(ctx, "Redis unavailable, artifact cache disabled: %v", err)
		return nil
	}
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	return client
}

func connectMinIO(ctx context.Context, logger log.Logger, cfg *config.Config) minio.MinIO {
	client, err := configMinio.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Warnf(ctx, "MinIO unavailable, archive downloads disabled: %v", err)
		return nil
	}
	logger.Infof(ctx, "MinIO connected, snapshot bucket %s", cfg.MinIO.Bucket)
	return client
}

func connectProducer(ctx context.Context, logger log.Logger, cfg *config.Config) pkgKafka.IProducer {
	if len(cfg.Kafka.Brokers) == 0 {
		return nil
	}
	producer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Warnf(ctx, "Kafka producer unavailable, snapshots disabled: %v", err)
		return nil
	}
	logger.Infof(ctx, "Kafka producer publishing to %s", cfg.Kafka.Topic)
	return producer
}

