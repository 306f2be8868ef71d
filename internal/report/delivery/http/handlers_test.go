package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"report-srv/config"
	"report-srv/internal/middleware"
	"report-srv/internal/model"
	"report-srv/internal/report"
	"report-srv/internal/report/mocks"
	"report-srv/pkg/log"
	"report-srv/pkg/paginator"
	"report-srv/pkg/response"
	"report-srv/pkg/scope"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeManager struct{}

func (fakeManager) Verify(token string) (scope.Payload, error) {
	if token != "good" {
		return scope.Payload{}, errors.New("invalid token")
	}
	return scope.Payload{UserID: "u-1", Role: "admin"}, nil
}

var (
	authedScope = model.Scope{UserID: "u-1", Role: "admin"}
	anonScope   = scope.Anonymous()
)

func newRouter(t *testing.T) (*gin.Engine, *mocks.UseCase) {
	t.Helper()

	uc := mocks.NewUseCase(t)
	mw := middleware.New(log.NewNop(), fakeManager{}, config.CookieConfig{Name: "bhima_auth_token"})

	r := gin.New()
	New(log.NewNop(), uc, nil).RegisterRoutes(r.Group(""), mw)
	return r, uc
}

func do(r *gin.Engine, method, target, body string, authed bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if authed {
		req.Header.Set("Authorization", "Bearer good")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResp(t *testing.T, w *httptest.ResponseRecorder) response.Resp {
	t.Helper()
	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRender(t *testing.T) {
	t.Run("json renderer", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.On("Render", mock.Anything, anonScope, report.RenderInput{
			ReportID:   "X",
			Renderer:   strPtr("json"),
			Parameters: map[string]any{"period": "2024"},
			Lang:       "en",
		}).Return(report.RenderOutput{
			ContentType: "application/json",
			FileName:    "x.json",
			Payload:     []byte(`{"total":3}`),
		}, nil)

		w := do(r, http.MethodGet, "/api/v1/reports/X?renderer=json&period=2024", "", false)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.Equal(t, `inline; filename="x.json"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "false", w.Header().Get(headerCacheStatus))
		assert.JSONEq(t, `{"total":3}`, w.Body.String())
	})

	t.Run("absent renderer is passed as nil", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.On("Render", mock.Anything, authedScope, mock.MatchedBy(func(in report.RenderInput) bool {
			return in.Renderer == nil
		})).Return(report.RenderOutput{ContentType: "application/pdf", Payload: []byte("%PDF"), Cached: true}, nil)

		w := do(r, http.MethodGet, "/api/v1/reports/X", "", true)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Equal(t, "true", w.Header().Get(headerCacheStatus))
	})

	t.Run("empty renderer is passed as empty", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.On("Render", mock.Anything, anonScope, mock.MatchedBy(func(in report.RenderInput) bool {
			return in.Renderer != nil && *in.Renderer == ""
		})).Return(report.RenderOutput{}, report.ErrInvalidRenderer)

		w := do(r, http.MethodGet, "/api/v1/reports/X?renderer=", "", false)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, codeInvalidRenderer, decodeResp(t, w).Code)
	})

	t.Run("repeated query keys become lists", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.On("Render", mock.Anything, anonScope, mock.MatchedBy(func(in report.RenderInput) bool {
			v, ok := in.Parameters["account"].([]any)
			return ok && len(v) == 2
		})).Return(report.RenderOutput{ContentType: "text/html", Payload: []byte("<table></table>")}, nil)

		w := do(r, http.MethodGet, "/api/v1/reports/X?renderer=html&account=1&account=2", "", false)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		r, _ := newRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/X", nil)
		req.Header.Set("Authorization", "Bearer bad")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRenderErrors(t *testing.T) {
	tcs := map[string]struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		"invalid renderer":  {err: report.ErrInvalidRenderer, wantStatus: http.StatusBadRequest, wantCode: codeInvalidRenderer},
		"invalid parameter": {err: report.ErrInvalidParameter, wantStatus: http.StatusBadRequest, wantCode: codeBadRequest},
		"missing parameter": {err: report.ErrMissingParameter, wantStatus: http.StatusBadRequest, wantCode: codeMissingParameter},
		"bad interval":      {err: report.ErrBadDateInterval, wantStatus: http.StatusBadRequest, wantCode: codeBadDateInterval},
		"unknown report":    {err: report.ErrReportNotFound, wantStatus: http.StatusNotFound, wantCode: codeNotFound},
		"timeout":           {err: report.ErrRenderTimeout, wantStatus: http.StatusServiceUnavailable, wantCode: codeRenderTimeout},
		"compute failed":    {err: fmt.Errorf("%w: boom", report.ErrComputeFailed), wantStatus: http.StatusInternalServerError, wantCode: codeInternal},
		"render failed":     {err: report.ErrRenderFailed, wantStatus: http.StatusInternalServerError, wantCode: codeInternal},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			r, uc := newRouter(t)
			uc.On("Render", mock.Anything, anonScope, mock.Anything).Return(report.RenderOutput{}, tc.err)

			w := do(r, http.MethodGet, "/api/v1/reports/X?renderer=json", "", false)

			assert.Equal(t, tc.wantStatus, w.Code)
			resp := decodeResp(t, w)
			assert.Equal(t, tc.wantCode, resp.Code)
			assert.Equal(t, tc.wantStatus, resp.ErrorCode)
		})
	}
}

func TestMapErrorPanicsOnUnknown(t *testing.T) {
	h := &handler{l: log.NewNop()}
	assert.Panics(t, func() { _ = h.mapError(errors.New("unexpected")) })
}

func TestListDefinitions(t *testing.T) {
	r, uc := newRouter(t)
	uc.On("ListDefinitions", mock.Anything, anonScope).Return([]report.DefinitionOutput{
		{ID: "X", Title: "Report X", URL: "/reports/x", Keys: []string{"total"}},
	}, nil)

	w := do(r, http.MethodGet, "/api/v1/reports", "", false)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []definitionResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "X", body.Data[0].ID)
	assert.Equal(t, []string{}, body.Data[0].DateParams)
}

func TestPreview(t *testing.T) {
	t.Run("body options", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.On("Preview", mock.Anything, authedScope, mock.MatchedBy(func(in report.PreviewInput) bool {
			return in.ReportID == "X" && in.Parameters["label"] == "Q1" && in.Parameters["extra"] == "yes"
		})).Return(report.PreviewOutput{
			State:       report.StatePreviewReady,
			ContentType: "text/html; charset=utf-8",
			HTML:        []byte("<table></table>"),
		}, nil)

		w := do(r, http.MethodPost, "/api/v1/reports/X/preview?extra=yes", `{"label":"Q1"}`, true)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<table")
		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	})

	t.Run("empty body", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.On("Preview", mock.Anything, anonScope, report.PreviewInput{
			ReportID:   "X",
			Parameters: map[string]any{},
			Lang:       "en",
		}).Return(report.PreviewOutput{State: report.StatePreviewReady, ContentType: "text/html", HTML: []byte("<table>")}, nil)

		w := do(r, http.MethodPost, "/api/v1/reports/X/preview", "", false)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		r, _ := newRouter(t)

		w := do(r, http.MethodPost, "/api/v1/reports/X/preview", `{"label":`, false)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, codeBadRequest, decodeResp(t, w).Code)
	})
}

func TestSaveAs(t *testing.T) {
	t.Run("saves with renderer option", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.On("SaveAs", mock.Anything, authedScope, report.SaveInput{
			URL:        "/reports/x",
			ReportID:   "X",
			Label:      "Q1 totals",
			Renderer:   strPtr("pdf"),
			Parameters: map[string]any{"period": "Q1"},
		}).Return(report.SaveOutput{State: report.StateSaved, ReportKey: "X", ArchiveKey: "k-1"}, nil)

		body := `{"url":"/reports/x","report":{"id":7,"report_key":"X","label":"Q1 totals"},"reportOptions":{"renderer":"pdf","period":"Q1"}}`
		w := do(r, http.MethodPost, "/api/v1/archives", body, true)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data saveResp `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, saveResp{ReportKey: "X", Key: "k-1", State: "saved"}, resp.Data)
	})

	t.Run("string id without key", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.On("SaveAs", mock.Anything, anonScope, mock.MatchedBy(func(in report.SaveInput) bool {
			return in.ReportID == "X" && in.Renderer == nil
		})).Return(report.SaveOutput{State: report.StateSaved, ReportKey: "X", ArchiveKey: "k-2"}, nil)

		w := do(r, http.MethodPost, "/api/v1/archives", `{"report":{"id":"X"},"reportOptions":{}}`, false)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("save failure", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.On("SaveAs", mock.Anything, anonScope, mock.Anything).Return(report.SaveOutput{State: report.StateSaveFailed}, report.ErrSaveFailed)

		w := do(r, http.MethodPost, "/api/v1/archives", `{"report":{"report_key":"X"}}`, false)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		r, _ := newRouter(t)

		w := do(r, http.MethodPost, "/api/v1/archives", `not json`, false)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLastParameters(t *testing.T) {
	t.Run("requires auth", func(t *testing.T) {
		r, _ := newRouter(t)

		w := do(r, http.MethodGet, "/api/v1/reports/X/parameters", "", false)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("returns last parameters", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.On("LastParameters", mock.Anything, authedScope, report.LastParametersInput{ReportID: "X"}).
			Return(report.LastParametersOutput{ReportID: "X", Parameters: map[string]any{"period": "Q1"}}, nil)

		w := do(r, http.MethodGet, "/api/v1/reports/X/parameters", "", true)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"error_code":0,"message":"Success","data":{"report_id":"X","parameters":{"period":"Q1"}}}`, w.Body.String())
	})
}

func TestArchives(t *testing.T) {
	createdAt := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)

	t.Run("list", func(t *testing.T) {
		r, uc := newRouter(t)
		q := paginator.PaginateQuery{Page: 2, Limit: 1}
		uc.On("ListArchives", mock.Anything, anonScope, report.ListArchivesInput{ReportID: "X", Paginate: q}).
			Return(report.ListArchivesOutput{
				Archives:  []report.ArchiveOutput{{Key: "k-1", ReportID: "X", CreatedAt: createdAt}},
				Paginator: paginator.New(q, 3, 1),
			}, nil)

		w := do(r, http.MethodGet, "/api/v1/archives?report_id=X&page=2&limit=1", "", false)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data listArchivesResp `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data.Archives, 1)
		assert.Equal(t, "2024-03-15T08:00:00Z", resp.Data.Archives[0].CreatedAt)
		assert.True(t, resp.Data.Paginator.HasNext)
	})

	t.Run("get not found", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.On("GetArchive", mock.Anything, anonScope, report.GetArchiveInput{Key: "nope"}).
			Return(report.ArchiveOutput{}, report.ErrArchiveNotFound)

		w := do(r, http.MethodGet, "/api/v1/archives/nope", "", false)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, codeNotFound, decodeResp(t, w).Code)
	})

	t.Run("render with stored renderer", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.On("RenderArchive", mock.Anything, anonScope, report.RenderArchiveInput{Key: "k-1", Lang: "en"}).
			Return(report.RenderOutput{ContentType: "application/pdf", FileName: "x.pdf", Payload: []byte("%PDF")}, nil)

		w := do(r, http.MethodGet, "/api/v1/archives/k-1/render", "", false)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "%PDF", w.Body.String())
	})

	t.Run("download before snapshot", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.On("DownloadArchive", mock.Anything, anonScope, report.DownloadArchiveInput{Key: "k-1"}).
			Return(report.DownloadOutput{}, report.ErrSnapshotNotReady)

		w := do(r, http.MethodGet, "/api/v1/archives/k-1/download", "", false)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, codeSnapshotNotReady, decodeResp(t, w).Code)
	})

	t.Run("download", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.On("DownloadArchive", mock.Anything, anonScope, report.DownloadArchiveInput{Key: "k-1"}).
			Return(report.DownloadOutput{
				DownloadURL: "http://minio/archives/k-1.pdf",
				ExpiresAt:   createdAt.Add(30 * time.Minute),
				FileName:    "x-20240315.pdf",
				FileSize:    42,
			}, nil)

		w := do(r, http.MethodGet, "/api/v1/archives/k-1/download", "", false)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data downloadResp `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "2024-03-15T08:30:00Z", resp.Data.ExpiresAt)
		assert.Equal(t, int64(42), resp.Data.FileSize)
	})
}

func strPtr(s string) *string {
	return &s
}
