package consumer

import (
	"fmt"
)

// New creates a new consumer server with dependency validation
func New(cfg Config) (*ConsumerServer, error) {
	srv := &ConsumerServer{
		l:           cfg.Logger,
		config:      cfg.Config,
		postgresDB:  cfg.PostgresDB,
		archiveDB:   cfg.ArchiveDB,
		minioClient: cfg.MinIOClient,
		discord:     cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *ConsumerServer) validate() error {
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if srv.config == nil {
		return fmt.Errorf("config is required")
	}
	if len(srv.config.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka brokers are required")
	}
	if srv.postgresDB == nil {
		return fmt.Errorf("postgres db is required")
	}
	if srv.archiveDB == nil {
		return fmt.Errorf("archive db is required")
	}
	// snapshots are the only thing this server produces
	if srv.minioClient == nil {
		return fmt.Errorf("minio client is required")
	}
	return nil
}
