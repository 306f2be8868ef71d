package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"report-srv/internal/catalog"
	"report-srv/internal/report"
)

func TestParseRenderer(t *testing.T) {
	tcs := map[string]struct {
		key     *string
		want    string
		wantErr error
	}{
		"omitted":   {key: nil, want: "pdf"},
		"json":      {key: strPtr("json"), want: "json"},
		"html":      {key: strPtr("html"), want: "html"},
		"pdf":       {key: strPtr("pdf"), want: "pdf"},
		"empty":     {key: strPtr(""), wantErr: report.ErrInvalidRenderer},
		"unknown":   {key: strPtr("unknown"), wantErr: report.ErrInvalidRenderer},
		"uppercase": {key: strPtr("PDF"), wantErr: report.ErrInvalidRenderer},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got, err := parseRenderer(tc.key)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSanitizeParameters(t *testing.T) {
	def := catalog.Definition{
		ID:             "payments",
		DateParams:     []string{"dateFrom", "dateTo", "period"},
		RequiredParams: []string{"dateFrom"},
	}

	tcs := map[string]struct {
		raw      map[string]any
		want     map[string]any
		wantLang string
		wantErr  error
	}{
		"display dates": {
			raw:  map[string]any{"dateFrom": "01/02/2024", "dateTo": "29/02/2024"},
			want: map[string]any{"dateFrom": "2024-02-01", "dateTo": "2024-02-29"},
		},
		"db and rfc3339 dates": {
			raw:  map[string]any{"dateFrom": "2024-02-01 13:45:00", "dateTo": "2024-02-29T23:00:00Z", "period": "2024-02-01"},
			want: map[string]any{"dateFrom": "2024-02-01", "dateTo": "2024-02-29", "period": "2024-02-01"},
		},
		"names containing date are not dates": {
			raw:  map[string]any{"dateFrom": "2024-01-01", "candidate": "Bob", "validated": "1", "updated_by": "u-2", "mandate_id": "m-9"},
			want: map[string]any{"dateFrom": "2024-01-01", "candidate": "Bob", "validated": "1", "updated_by": "u-2", "mandate_id": "m-9"},
		},
		"undeclared date by name": {
			raw:  map[string]any{"dateFrom": "2024-01-01", "invoiceDate": "15/01/2024"},
			want: map[string]any{"dateFrom": "2024-01-01", "invoiceDate": "2024-01-15"},
		},
		"cleaning": {
			raw: map[string]any{
				"dateFrom":  "2024-01-01",
				"$$hashKey": "object:12",
				"empty":     "",
				"nothing":   nil,
				"renderer":  "json",
				"lang":      "fr",
				"depot":     "d-1",
				"limit":     float64(10),
			},
			want:     map[string]any{"dateFrom": "2024-01-01", "depot": "d-1", "limit": float64(10)},
			wantLang: "fr",
		},
		"same day interval": {
			raw:  map[string]any{"dateFrom": "2024-01-01", "dateTo": "01/01/2024"},
			want: map[string]any{"dateFrom": "2024-01-01", "dateTo": "2024-01-01"},
		},
		"bad interval": {
			raw:     map[string]any{"dateFrom": "2024-02-01", "dateTo": "2024-01-31"},
			wantErr: report.ErrBadDateInterval,
		},
		"invalid date": {
			raw:     map[string]any{"dateFrom": "yesterday"},
			wantErr: report.ErrInvalidParameter,
		},
		"non string date": {
			raw:     map[string]any{"dateFrom": float64(20240101)},
			wantErr: report.ErrInvalidParameter,
		},
		"missing required": {
			raw:     map[string]any{"dateTo": "2024-01-31"},
			wantErr: report.ErrMissingParameter,
		},
		"required but empty": {
			raw:     map[string]any{"dateFrom": ""},
			wantErr: report.ErrMissingParameter,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got, lang, err := sanitizeParameters(def, tc.raw)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantLang, lang)
		})
	}
}

func TestSanitizeParameters_DoesNotMutateInput(t *testing.T) {
	raw := map[string]any{"dateFrom": "01/02/2024", "$skip": true, "renderer": "pdf"}

	_, _, err := sanitizeParameters(catalog.Definition{}, raw)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"dateFrom": "01/02/2024", "$skip": true, "renderer": "pdf"}, raw)
}
