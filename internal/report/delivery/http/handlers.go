package http

import (
	"fmt"
	"net/http"
	"strconv"

	"report-srv/internal/report"
	"report-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const headerCacheStatus = "X-Report-Cache"

// @Summary List reports
// @Description List the report definitions known to the catalog
// @Tags Report
// @Produce json
// @Success 200 {array} definitionResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports [get]
func (h *handler) ListDefinitions(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processListDefinitionsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListDefinitions: processListDefinitionsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListDefinitions(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListDefinitions: usecase ListDefinitions failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDefinitionsResp(o))
}

// @Summary Render a report
// @Description Compute a report and return it in the requested format. Omitting renderer yields a PDF.
// @Tags Report
// @Produce json,html,application/pdf
// @Param report_id path string true "Report ID"
// @Param renderer query string false "Renderer key (json, html, pdf)"
// @Param lang query string false "Language (en, fr)"
// @Success 200 {file} file
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/reports/{report_id} [get]
func (h *handler) Render(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processRenderRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Render: processRenderRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Render(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Render: usecase Render failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	h.writeDocument(c, o)
}

// @Summary Preview a report
// @Description Render a report as HTML with the given options. The preview is never cached.
// @Tags Report
// @Accept json
// @Produce html
// @Param report_id path string true "Report ID"
// @Param body body object false "Report options"
// @Success 200 {string} string
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/reports/{report_id}/preview [post]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processPreviewRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Preview: processPreviewRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Preview(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Preview: usecase Preview failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	c.Data(http.StatusOK, o.ContentType, o.HTML)
}

// @Summary Get last used parameters
// @Description Return the options the caller last used for a report
// @Tags Report
// @Produce json
// @Param report_id path string true "Report ID"
// @Success 200 {object} lastParametersResp
// @Failure 401 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/reports/{report_id}/parameters [get]
func (h *handler) LastParameters(c *gin.Context) {
	ctx := c.Request.Context()

	reportID, sc, err := h.processLastParametersRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.LastParameters: processLastParametersRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.LastParameters(ctx, sc, report.LastParametersInput{ReportID: reportID})
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.LastParameters: usecase LastParameters failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newLastParametersResp(o))
}

// @Summary Save a report
// @Description Store the report options as an archive entry
// @Tags Archive
// @Accept json
// @Produce json
// @Param body body saveReq true "Save request"
// @Success 200 {object} saveResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/archives [post]
func (h *handler) SaveAs(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSaveAsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.SaveAs: processSaveAsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.SaveAs(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.SaveAs: usecase SaveAs failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSaveResp(o))
}

// @Summary List archived reports
// @Tags Archive
// @Produce json
// @Param report_id query string false "Filter by report"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} listArchivesResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/archives [get]
func (h *handler) ListArchives(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListArchivesRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListArchives: processListArchivesRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListArchives(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListArchives: usecase ListArchives failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListArchivesResp(o))
}

// @Summary Get an archived report
// @Tags Archive
// @Produce json
// @Param key path string true "Archive key"
// @Success 200 {object} archiveResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/archives/{key} [get]
func (h *handler) GetArchive(c *gin.Context) {
	ctx := c.Request.Context()

	key, sc, err := h.processArchiveKeyRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GetArchive: processArchiveKeyRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetArchive(ctx, sc, report.GetArchiveInput{Key: key})
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GetArchive: usecase GetArchive failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newArchiveResp(o))
}

// @Summary Re-render an archived report
// @Description Render an archived report with its stored options
// @Tags Archive
// @Produce json,html,application/pdf
// @Param key path string true "Archive key"
// @Param renderer query string false "Renderer key, defaults to the stored one"
// @Success 200 {file} file
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/archives/{key}/render [get]
func (h *handler) RenderArchive(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processRenderArchiveRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.RenderArchive: processRenderArchiveRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.RenderArchive(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.RenderArchive: usecase RenderArchive failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	h.writeDocument(c, o)
}

// @Summary Download an archived report
// @Description Generate a presigned download URL for the archived PDF snapshot
// @Tags Archive
// @Produce json
// @Param key path string true "Archive key"
// @Success 200 {object} downloadResp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/archives/{key}/download [get]
func (h *handler) DownloadArchive(c *gin.Context) {
	ctx := c.Request.Context()

	key, sc, err := h.processArchiveKeyRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.DownloadArchive: processArchiveKeyRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.DownloadArchive(ctx, sc, report.DownloadArchiveInput{Key: key})
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.DownloadArchive: usecase DownloadArchive failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDownloadResp(o))
}

func (h *handler) writeDocument(c *gin.Context, o report.RenderOutput) {
	if o.FileName != "" {
		c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", o.FileName))
	}
	c.Header(headerCacheStatus, strconv.FormatBool(o.Cached))
	c.Data(http.StatusOK, o.ContentType, o.Payload)
}
