package repository

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"report-srv/internal/catalog"
	"report-srv/internal/model"
)

func TestBuildDataset(t *testing.T) {
	def := catalog.Definition{
		ID:          "unbalanced_invoice_payments",
		Keys:        []string{"dateFrom", "dateTo", "rows", "total"},
		TotalColumn: "balance",
	}
	rows := []map[string]any{
		{"debtor": "A", "balance": "10.50"},
		{"debtor": "B", "balance": int64(4)},
		{"debtor": "C", "balance": json.Number("0.5")},
		{"debtor": "D", "balance": nil},
	}

	ds := BuildDataset(def, map[string]any{"dateFrom": "2024-01-01"}, rows)

	assert.Equal(t, 15.0, ds[model.DatasetTotalKey])
	assert.Len(t, ds.Rows(), 4)
	assert.Equal(t, "2024-01-01", ds["dateFrom"])

	v, ok := ds["dateTo"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestBuildDataset_RowCount(t *testing.T) {
	def := catalog.Definition{Keys: []string{"rows", "total"}}

	ds := BuildDataset(def, nil, nil)

	assert.Equal(t, 0, ds[model.DatasetTotalKey])
	assert.NotNil(t, ds[model.DatasetRowsKey])
	assert.Len(t, ds, 2)
}
