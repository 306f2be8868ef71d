package model

import (
	"encoding/json"
	"time"
)

// ArchiveEntry is a saved report: the definition it came from and the parameters it was run with.
type ArchiveEntry struct {
	Key        string
	ReportID   string
	Label      string
	URL        string
	Renderer   string
	Parameters json.RawMessage
	CreatedBy  string
	CreatedAt  time.Time
}

// DecodeParameters returns the stored parameter snapshot.
func (e ArchiveEntry) DecodeParameters() (map[string]any, error) {
	params := map[string]any{}
	if len(e.Parameters) == 0 {
		return params, nil
	}
	if err := json.Unmarshal(e.Parameters, &params); err != nil {
		return nil, err
	}
	return params, nil
}

// Artifact is a rendered report.
type Artifact struct {
	ContentType string `json:"content_type"`
	FileName    string `json:"file_name"`
	Payload     []byte `json:"payload"`
}

// Dataset is the computed data of a report, keyed by the names its contract promises.
// Rows live under DatasetRowsKey and the grand total under DatasetTotalKey.
type Dataset map[string]any

const (
	DatasetRowsKey  = "rows"
	DatasetTotalKey = "total"
)

// Rows returns the dataset rows, or nil when the dataset carries none.
func (d Dataset) Rows() []map[string]any {
	rows, _ := d[DatasetRowsKey].([]map[string]any)
	return rows
}
