package producer

import (
	"report-srv/internal/report"
	pkgKafka "report-srv/pkg/kafka"
	"report-srv/pkg/log"
)

// Producer publishes report domain events.
type Producer interface {
	report.Publisher
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
