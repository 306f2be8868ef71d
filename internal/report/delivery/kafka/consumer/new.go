package consumer

import (
	"context"
	"fmt"

	"report-srv/config"
	"report-srv/internal/report"
	kafkaDelivery "report-srv/internal/report/delivery/kafka"
	pkgKafka "report-srv/pkg/kafka"
	"report-srv/pkg/log"
)

// Config holds the configuration for the snapshot consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     report.UseCase
}

// Consumer renders archive snapshots announced on report.archived.
type Consumer interface {
	ConsumeArchived(ctx context.Context) error
	Close() error
}

type consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          report.UseCase

	archivedGroup pkgKafka.IConsumer
}

// New creates a new snapshot consumer
func New(cfg Config) (Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

// Close closes all consumer groups
func (c *consumer) Close() error {
	if c.archivedGroup != nil {
		if err := c.archivedGroup.Close(); err != nil {
			return fmt.Errorf("failed to close archived group: %w", err)
		}
	}

	return nil
}

func (c *consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrCreateConsumerGroupFailed, groupID, err)
	}

	return group, nil
}

func (c *consumer) topic() string {
	if c.kafkaConfig.Topic != "" {
		return c.kafkaConfig.Topic
	}
	return kafkaDelivery.TopicReportArchived
}

func (c *consumer) groupID() string {
	if c.kafkaConfig.GroupID != "" {
		return c.kafkaConfig.GroupID
	}
	return kafkaDelivery.GroupIDReportSnapshot
}
