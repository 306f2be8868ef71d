package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"report-srv/internal/model"
	"report-srv/internal/renderer"
	"report-srv/internal/report"
	"report-srv/pkg/scope"
)

func TestDispatchTransitions(t *testing.T) {
	tcs := map[string]struct {
		path    []report.DispatchState
		wantErr bool
	}{
		"preview":             {path: []report.DispatchState{report.StatePreviewing, report.StatePreviewReady}},
		"preview then save":   {path: []report.DispatchState{report.StatePreviewing, report.StatePreviewReady, report.StateSaving, report.StateSaved}},
		"failed preview back": {path: []report.DispatchState{report.StatePreviewing, report.StatePreviewFailed, report.StateConfiguring}},
		"save directly":       {path: []report.DispatchState{report.StateSaving, report.StateSaveFailed, report.StateConfiguring}},
		"skip previewing":     {path: []report.DispatchState{report.StatePreviewReady}, wantErr: true},
		"leave saved":         {path: []report.DispatchState{report.StateSaving, report.StateSaved, report.StateConfiguring}, wantErr: true},
		"save a failure":      {path: []report.DispatchState{report.StatePreviewing, report.StatePreviewFailed, report.StateSaving}, wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			d := newDispatch()
			var err error
			for _, s := range tc.path {
				if err = d.to(s); err != nil {
					break
				}
			}
			if tc.wantErr {
				assert.ErrorIs(t, err, errInvalidTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.path[len(tc.path)-1], d.state)
		})
	}
}

func TestDispatchSettle(t *testing.T) {
	d := newDispatch()
	assert.Equal(t, report.StateConfiguring, d.settle(nil))

	require.NoError(t, d.to(report.StatePreviewing))
	assert.Equal(t, report.StatePreviewFailed, d.settle(errors.New("boom")))

	d = newDispatch()
	require.NoError(t, d.to(report.StateSaving))
	assert.Equal(t, report.StateSaved, d.settle(nil))
}

func TestPreview(t *testing.T) {
	deps := newTestDeps(t)
	deps.source.On("Compute", mock.Anything, mock.Anything).Return(datasetX(), nil)
	uc := deps.useCase(t)

	out, err := uc.Preview(context.Background(), testScope, report.PreviewInput{
		ReportID:   "X",
		Parameters: map[string]any{"depot": "d-1", "$$hashKey": "x"},
	})
	require.NoError(t, err)
	assert.Equal(t, report.StatePreviewReady, out.State)
	assert.Equal(t, renderer.ContentTypeHTML, out.ContentType)
	assert.Contains(t, string(out.HTML), "<table")
	assert.Equal(t, map[string]any{"depot": "d-1"}, deps.cache.lastParams["u-1:X"])

	// previews are never served from or written to the artifact cache
	assert.Empty(t, deps.cache.artifacts)
	_, err = uc.Preview(context.Background(), testScope, report.PreviewInput{ReportID: "X"})
	require.NoError(t, err)
	deps.source.AssertNumberOfCalls(t, "Compute", 2)
}

func TestPreview_Failures(t *testing.T) {
	t.Run("compute", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.source.On("Compute", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))
		uc := deps.useCase(t)

		out, err := uc.Preview(context.Background(), testScope, report.PreviewInput{ReportID: "X"})
		assert.ErrorIs(t, err, report.ErrComputeFailed)
		assert.Equal(t, report.StatePreviewFailed, out.State)
		assert.Empty(t, deps.cache.lastParams)
	})

	t.Run("validation", func(t *testing.T) {
		deps := newTestDeps(t)
		uc := deps.useCase(t)

		out, err := uc.Preview(context.Background(), testScope, report.PreviewInput{ReportID: "payments"})
		assert.ErrorIs(t, err, report.ErrMissingParameter)
		assert.Equal(t, report.StatePreviewFailed, out.State)
		assert.Empty(t, deps.cache.lastParams)
	})

	t.Run("bad date", func(t *testing.T) {
		deps := newTestDeps(t)
		uc := deps.useCase(t)

		out, err := uc.Preview(context.Background(), testScope, report.PreviewInput{
			ReportID:   "payments",
			Parameters: map[string]any{"dateFrom": "garbage", "dateTo": "2024-01-31"},
		})
		assert.ErrorIs(t, err, report.ErrInvalidParameter)
		assert.Equal(t, report.StatePreviewFailed, out.State)
		deps.source.AssertNotCalled(t, "Compute", mock.Anything, mock.Anything)
	})

	t.Run("unknown report", func(t *testing.T) {
		uc := newTestDeps(t).useCase(t)

		out, err := uc.Preview(context.Background(), testScope, report.PreviewInput{ReportID: "nope"})
		assert.ErrorIs(t, err, report.ErrReportNotFound)
		assert.Equal(t, report.StatePreviewFailed, out.State)
	})
}

func TestPreview_AnonymousIsNotRemembered(t *testing.T) {
	deps := newTestDeps(t)
	deps.source.On("Compute", mock.Anything, mock.Anything).Return(datasetX(), nil)
	uc := deps.useCase(t)

	_, err := uc.Preview(context.Background(), scope.Anonymous(), report.PreviewInput{ReportID: "X"})
	require.NoError(t, err)
	assert.Empty(t, deps.cache.lastParams)
}

func TestSaveAs(t *testing.T) {
	deps := newTestDeps(t)
	uc := deps.useCase(t)
	uc.newKey = uuid.NewString
	input := report.SaveInput{
		URL:        "reports/finance/payments",
		ReportID:   "payments",
		Label:      "January",
		Parameters: map[string]any{"dateFrom": "01/01/2024", "dateTo": "31/01/2024"},
	}

	first, err := uc.SaveAs(context.Background(), testScope, input)
	require.NoError(t, err)
	second, err := uc.SaveAs(context.Background(), testScope, input)
	require.NoError(t, err)

	assert.Equal(t, report.StateSaved, first.State)
	assert.Equal(t, "payments", first.ReportKey)
	assert.NotEqual(t, first.ArchiveKey, second.ArchiveKey)
	assert.Len(t, deps.archive.entries, 2)

	entry := deps.archive.entries[first.ArchiveKey]
	assert.Equal(t, "pdf", entry.Renderer)
	assert.Equal(t, "January", entry.Label)
	assert.Equal(t, "u-1", entry.CreatedBy)
	assert.JSONEq(t, `{"dateFrom":"2024-01-01","dateTo":"2024-01-31"}`, string(entry.Parameters))

	require.Len(t, deps.publisher.events, 2)
	assert.Equal(t, first.ArchiveKey, deps.publisher.events[0].Key)
	assert.Equal(t, "payments", deps.publisher.events[0].ReportID)

	assert.Equal(t, map[string]any{"dateFrom": "2024-01-01", "dateTo": "2024-01-31"}, deps.cache.lastParams["u-1:payments"])

	// saving never renders
	deps.source.AssertNotCalled(t, "Compute", mock.Anything, mock.Anything)
}

func TestSaveAs_Defaults(t *testing.T) {
	deps := newTestDeps(t)
	uc := deps.useCase(t)

	out, err := uc.SaveAs(context.Background(), testScope, report.SaveInput{ReportID: "X", Renderer: strPtr("json")})
	require.NoError(t, err)

	entry := deps.archive.entries[out.ArchiveKey]
	assert.Equal(t, "reports/x", entry.URL)
	assert.Equal(t, "Report X", entry.Label)
	assert.Equal(t, "json", entry.Renderer)
	assert.Equal(t, testNow, entry.CreatedAt)
}

func TestSaveAs_Failures(t *testing.T) {
	t.Run("invalid renderer", func(t *testing.T) {
		deps := newTestDeps(t)
		uc := deps.useCase(t)

		out, err := uc.SaveAs(context.Background(), testScope, report.SaveInput{ReportID: "X", Renderer: strPtr("xls")})
		assert.ErrorIs(t, err, report.ErrInvalidRenderer)
		assert.Equal(t, report.StateSaveFailed, out.State)
		assert.Empty(t, deps.archive.entries)
	})

	t.Run("sanitizer rejects parameters", func(t *testing.T) {
		tcs := map[string]struct {
			input   report.SaveInput
			wantErr error
		}{
			"unknown report": {
				input:   report.SaveInput{ReportID: "nope"},
				wantErr: report.ErrReportNotFound,
			},
			"missing parameter": {
				input:   report.SaveInput{ReportID: "payments", Parameters: map[string]any{"dateFrom": "2024-01-01"}},
				wantErr: report.ErrMissingParameter,
			},
			"bad interval": {
				input:   report.SaveInput{ReportID: "payments", Parameters: map[string]any{"dateFrom": "2024-02-01", "dateTo": "2024-01-01"}},
				wantErr: report.ErrBadDateInterval,
			},
		}

		for name, tc := range tcs {
			t.Run(name, func(t *testing.T) {
				deps := newTestDeps(t)
				uc := deps.useCase(t)

				out, err := uc.SaveAs(context.Background(), testScope, tc.input)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, report.StateSaveFailed, out.State)
				assert.Empty(t, deps.archive.entries)
				assert.Empty(t, deps.publisher.events)
			})
		}
	})

	t.Run("store failure", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.archive.createErr = errors.New("disk full")
		uc := deps.useCase(t)

		out, err := uc.SaveAs(context.Background(), testScope, report.SaveInput{ReportID: "X"})
		assert.ErrorIs(t, err, report.ErrSaveFailed)
		assert.Equal(t, report.StateSaveFailed, out.State)
		assert.Empty(t, deps.publisher.events)
		assert.Empty(t, deps.cache.lastParams)
	})

	t.Run("publish failure still saves", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.publisher.err = errors.New("broker unavailable")
		uc := deps.useCase(t)

		out, err := uc.SaveAs(context.Background(), testScope, report.SaveInput{ReportID: "X"})
		require.NoError(t, err)
		assert.Equal(t, report.StateSaved, out.State)
	})

	t.Run("last parameters failure ignored", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.cache.saveErr = errors.New("redis down")
		uc := deps.useCase(t)

		out, err := uc.SaveAs(context.Background(), model.Scope{UserID: "u-2"}, report.SaveInput{ReportID: "X"})
		require.NoError(t, err)
		assert.Equal(t, report.StateSaved, out.State)
	})
}
