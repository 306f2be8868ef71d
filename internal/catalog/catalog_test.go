package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	def, ok := c.Get("unbalanced_invoice_payments")
	require.True(t, ok)
	assert.Equal(t, "reports/finance/unbalanced_invoice_payments", def.URL)
	assert.True(t, def.IsDateParam("dateFrom"))
	assert.False(t, def.IsDateParam("rows"))
	assert.Equal(t, []string{"dateFrom", "dateTo", "rows", "total"}, def.Keys)

	ids := make([]string, 0)
	for _, d := range c.List() {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"unbalanced_invoice_payments", "stock_lots", "employees"}, ids)
}

func TestParse_Defaults(t *testing.T) {
	c, err := Parse([]byte(`
reports:
  - id: x
    url: reports/x
    query: SELECT 1
    columns:
      - key: amount
`))
	require.NoError(t, err)

	def, ok := c.Get("x")
	require.True(t, ok)
	assert.Equal(t, "x", def.Title)
	assert.Equal(t, []string{"rows", "total"}, def.Keys)
	assert.Equal(t, FormatText, def.Columns[0].Format)
	assert.Equal(t, "amount", def.Columns[0].Label)
}

func TestParse_Invalid(t *testing.T) {
	tcs := map[string]string{
		"empty":          `reports: []`,
		"missing id":     "reports:\n  - url: a\n    query: SELECT 1\n",
		"missing url":    "reports:\n  - id: a\n    query: SELECT 1\n",
		"missing query":  "reports:\n  - id: a\n    url: a\n",
		"duplicate":      "reports:\n  - {id: a, url: a, query: SELECT 1}\n  - {id: a, url: b, query: SELECT 1}\n",
		"no rows key":    "reports:\n  - {id: a, url: a, query: SELECT 1, keys: [total]}\n",
		"unknown format": "reports:\n  - id: a\n    url: a\n    query: SELECT 1\n    columns: [{key: c, format: percent}]\n",
		"unknown field":  "reports:\n  - {id: a, url: a, query: SELECT 1, sql: nope}\n",
	}
	for name, src := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src))
			assert.Error(t, err)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reports:\n  - {id: a, url: reports/a, query: SELECT 1}\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	_, ok := c.Get("a")
	assert.True(t, ok)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestIsDateName(t *testing.T) {
	for _, name := range []string{"date", "Date", "dateFrom", "DateTo", "date_to", "DATE_FROM", "invoiceDate", "invoice_date"} {
		assert.True(t, IsDateName(name), name)
	}
	for _, name := range []string{"candidate", "validated", "updated_by", "mandate_id", "dated", "datetime", "depot"} {
		assert.False(t, IsDateName(name), name)
	}
}
