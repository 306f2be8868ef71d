package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type archivedHandler struct {
	consumer *consumer
}

func (h *archivedHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *archivedHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *archivedHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		// single attempt: failed snapshots are logged and the offset still moves on
		if err := h.consumer.handleArchivedMessage(session.Context(), msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "report.delivery.kafka.consumer.ConsumeArchived: Failed to process archived message: %v", err)
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
