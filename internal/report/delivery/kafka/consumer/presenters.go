package consumer

import (
	"report-srv/internal/report"
	kafkaDelivery "report-srv/internal/report/delivery/kafka"
)

func toSnapshotInput(m kafkaDelivery.ArchivedMessage) report.SnapshotInput {
	return report.SnapshotInput{
		Key: m.Key,
	}
}
