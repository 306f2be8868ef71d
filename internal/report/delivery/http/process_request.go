package http

import (
	"encoding/json"
	"errors"
	"io"

	"report-srv/internal/model"
	"report-srv/pkg/locale"
	"report-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const rendererQueryKey = "renderer"

func (h *handler) processListDefinitionsRequest(c *gin.Context) (model.Scope, error) {
	return scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processRenderRequest(c *gin.Context) (renderReq, model.Scope, error) {
	ctx := c.Request.Context()
	rendererKey, params := splitQuery(c)

	req := renderReq{
		ReportID:   c.Param("report_id"),
		Renderer:   rendererKey,
		Parameters: params,
		Lang:       locale.GetLang(ctx),
	}

	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *handler) processPreviewRequest(c *gin.Context) (previewReq, model.Scope, error) {
	ctx := c.Request.Context()
	req := previewReq{
		ReportID: c.Param("report_id"),
		Lang:     locale.GetLang(ctx),
	}

	params := map[string]any{}
	if c.Request.Body != nil {
		dec := json.NewDecoder(c.Request.Body)
		dec.UseNumber()
		if err := dec.Decode(&params); err != nil && !errors.Is(err, io.EOF) {
			h.l.Errorf(ctx, "report.delivery.http.processPreviewRequest: Decode failed: %v", err)
			return req, model.Scope{}, errInvalidBody
		}
	}
	// query string values fill in anything the body left out
	_, query := splitQuery(c)
	for k, v := range query {
		if _, ok := params[k]; !ok {
			params[k] = v
		}
	}
	req.Parameters = params

	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *handler) processSaveAsRequest(c *gin.Context) (saveReq, model.Scope, error) {
	var req saveReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processSaveAsRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errInvalidBody
	}

	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *handler) processLastParametersRequest(c *gin.Context) (string, model.Scope, error) {
	return c.Param("report_id"), scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processListArchivesRequest(c *gin.Context) (listArchivesReq, model.Scope, error) {
	var req listArchivesReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processListArchivesRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, err
	}

	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *handler) processArchiveKeyRequest(c *gin.Context) (string, model.Scope, error) {
	return c.Param("key"), scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processRenderArchiveRequest(c *gin.Context) (renderArchiveReq, model.Scope, error) {
	ctx := c.Request.Context()
	rendererKey, _ := splitQuery(c)

	req := renderArchiveReq{
		Key:      c.Param("key"),
		Renderer: rendererKey,
		Lang:     locale.GetLang(ctx),
	}

	return req, scope.GetScopeFromContext(ctx), nil
}

// splitQuery separates the renderer key from the report parameters. A present but empty
// renderer stays distinguishable from an absent one. Repeated keys become lists.
func splitQuery(c *gin.Context) (*string, map[string]any) {
	var rendererKey *string
	params := map[string]any{}

	for k, vs := range c.Request.URL.Query() {
		if k == rendererQueryKey {
			v := ""
			if len(vs) > 0 {
				v = vs[0]
			}
			rendererKey = &v
			continue
		}

		switch len(vs) {
		case 0:
		case 1:
			params[k] = vs[0]
		default:
			list := make([]any, 0, len(vs))
			for _, v := range vs {
				list = append(list, v)
			}
			params[k] = list
		}
	}

	return rendererKey, params
}
