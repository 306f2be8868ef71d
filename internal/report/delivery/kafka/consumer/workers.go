package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IBM/sarama"

	"report-srv/internal/model"
	"report-srv/internal/report"
	kafkaDelivery "report-srv/internal/report/delivery/kafka"
	"report-srv/pkg/scope"
)

// handleArchivedMessage snapshots one archive entry. Entries that can never be snapshotted are
// reported as skipped rather than failed.
func (c *consumer) handleArchivedMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	c.l.Infof(ctx, "report.delivery.kafka.consumer.handleArchivedMessage: Processing message from partition %d, offset %d",
		msg.Partition, msg.Offset)

	var message kafkaDelivery.ArchivedMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "report.delivery.kafka.consumer.handleArchivedMessage: Invalid message format (skipping): %v", err)
		return nil
	}
	if message.Key == "" {
		c.l.Warnf(ctx, "report.delivery.kafka.consumer.handleArchivedMessage: Invalid message: missing key (skipping)")
		return nil
	}

	ctx = scope.SetScopeToContext(ctx, model.Scope{
		UserID: "system",
		Role:   "system",
	})

	err := c.uc.Snapshot(ctx, toSnapshotInput(message))
	switch {
	case err == nil:
	case errors.Is(err, report.ErrArchiveNotFound), errors.Is(err, report.ErrReportNotFound):
		c.l.Warnf(ctx, "report.delivery.kafka.consumer.handleArchivedMessage: Archive %s cannot be snapshotted (skipping): %v", message.Key, err)
		return nil
	default:
		c.l.Errorf(ctx, "report.delivery.kafka.consumer.handleArchivedMessage: usecase Snapshot failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "report.delivery.kafka.consumer.handleArchivedMessage: Snapshot stored for archive %s", message.Key)
	return nil
}
