package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ArchiveDriverPostgres = "postgres"
	ArchiveDriverSQLite   = "sqlite"

	PDFEngineBuiltin = "builtin"
	PDFEngineChrome  = "chrome"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - report datasets and the archive table
	Postgres PostgresConfig

	// SQLite - embedded archive store for single-node installs
	SQLite SQLiteConfig

	// Redis - artifact cache, last used parameters
	Redis RedisConfig

	// MinIO - archived PDF snapshots
	MinIO MinIOConfig

	// Kafka - archive events
	Kafka KafkaConfig

	// Reporting
	Report   ReportConfig
	Archive  ArchiveConfig
	Renderer RendererConfig

	// JWT - Authentication
	JWT    JWTConfig
	Cookie CookieConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// SQLiteConfig is the configuration for the embedded archive database.
type SQLiteConfig struct {
	Path string
}

// ReportConfig configures the report catalog and caching.
type ReportConfig struct {
	// CatalogPath points to a YAML catalog. Empty means the built-in catalog.
	CatalogPath       string
	CacheTTL          time.Duration
	LastParamsTTL     time.Duration
	DownloadURLExpiry time.Duration
}

// ArchiveConfig selects the archive store backend.
type ArchiveConfig struct {
	Driver string
}

// RendererConfig configures the renderer adapter.
type RendererConfig struct {
	Timeout          time.Duration
	PDFEngine        string
	ChromeBin        string
	ChromeControlURL string
}

// CookieConfig configures the auth cookie. Used to read the token when no Authorization header is sent.
type CookieConfig struct {
	Name string
}

// JWTConfig is used to verify tokens. This service does not issue tokens.
type JWTConfig struct {
	Algorithm string
	Issuer    string
	Audience  []string
	SecretKey string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	viper.SetConfigName("report-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/bhima/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// SQLite
	cfg.SQLite.Path = viper.GetString("sqlite.path")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// MinIO - archived snapshots
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")

	// Kafka - archive events (optional)
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")
	cfg.Kafka.GroupID = viper.GetString("kafka.group_id")

	// Reporting
	cfg.Report.CatalogPath = viper.GetString("report.catalog_path")
	cfg.Report.CacheTTL = viper.GetDuration("report.cache_ttl")
	cfg.Report.LastParamsTTL = viper.GetDuration("report.last_params_ttl")
	cfg.Report.DownloadURLExpiry = viper.GetDuration("report.download_url_expiry")
	cfg.Archive.Driver = viper.GetString("archive.driver")
	cfg.Renderer.Timeout = viper.GetDuration("renderer.timeout")
	cfg.Renderer.PDFEngine = viper.GetString("renderer.pdf_engine")
	cfg.Renderer.ChromeBin = viper.GetString("renderer.chrome_bin")
	cfg.Renderer.ChromeControlURL = viper.GetString("renderer.chrome_control_url")

	// JWT
	cfg.JWT.Algorithm = viper.GetString("jwt.algorithm")
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.Audience = viper.GetStringSlice("jwt.audience")
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")

	// Cookie
	cfg.Cookie.Name = viper.GetString("cookie.name")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "bhima")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "public")

	// SQLite
	viper.SetDefault("sqlite.path", "report-archive.db")

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// MinIO
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "bhima-reports")

	// Kafka
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "report.archived")
	viper.SetDefault("kafka.group_id", "report-snapshot")

	// Reporting
	viper.SetDefault("report.catalog_path", "")
	viper.SetDefault("report.cache_ttl", "5m")
	viper.SetDefault("report.last_params_ttl", "720h")
	viper.SetDefault("report.download_url_expiry", "30m")
	viper.SetDefault("archive.driver", ArchiveDriverPostgres)
	viper.SetDefault("renderer.timeout", "10s")
	viper.SetDefault("renderer.pdf_engine", PDFEngineBuiltin)

	// JWT
	viper.SetDefault("jwt.algorithm", "HS256")
	viper.SetDefault("jwt.issuer", "bhima-auth")
	viper.SetDefault("jwt.audience", []string{"report-srv"})

	// Cookie
	viper.SetDefault("cookie.name", "bhima_auth_token")
}

func validate(cfg *Config) error {
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters")
	}

	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535")
	}

	switch cfg.Archive.Driver {
	case ArchiveDriverPostgres:
	case ArchiveDriverSQLite:
		if cfg.SQLite.Path == "" {
			return fmt.Errorf("sqlite.path is required when archive.driver is sqlite")
		}
	default:
		return fmt.Errorf("archive.driver must be %q or %q", ArchiveDriverPostgres, ArchiveDriverSQLite)
	}

	switch cfg.Renderer.PDFEngine {
	case PDFEngineBuiltin, PDFEngineChrome:
	default:
		return fmt.Errorf("renderer.pdf_engine must be %q or %q", PDFEngineBuiltin, PDFEngineChrome)
	}

	if cfg.Renderer.Timeout <= 0 {
		return fmt.Errorf("renderer.timeout must be positive")
	}
	if cfg.Report.CacheTTL < 0 {
		return fmt.Errorf("report.cache_ttl cannot be negative")
	}

	return nil
}
