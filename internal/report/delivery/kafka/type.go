package kafka

import (
	"time"
)

const (
	TopicReportArchived   = "report.archived"
	GroupIDReportSnapshot = "report-snapshot"
)

// ArchivedMessage is the payload of report.archived.
type ArchivedMessage struct {
	Key       string    `json:"key"`
	ReportID  string    `json:"report_id"`
	CreatedAt time.Time `json:"created_at"`
}
