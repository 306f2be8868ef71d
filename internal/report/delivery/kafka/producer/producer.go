package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"report-srv/internal/report"
	kafkaDelivery "report-srv/internal/report/delivery/kafka"
)

// PublishArchived announces a new archive entry, keyed by archive key.
func (p *implProducer) PublishArchived(ctx context.Context, event report.ArchivedEvent) error {
	msg := kafkaDelivery.ArchivedMessage{
		Key:       event.Key,
		ReportID:  event.ReportID,
		CreatedAt: event.CreatedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal archived event: %w", err)
	}

	if err := p.producer.Publish([]byte(event.Key), body); err != nil {
		return fmt.Errorf("failed to publish archived event: %w", err)
	}

	p.l.Infof(ctx, "Published archived event for %s (report %s)", event.Key, event.ReportID)
	return nil
}
