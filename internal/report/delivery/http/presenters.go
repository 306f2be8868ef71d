package http

import (
	"strings"
	"time"

	"report-srv/internal/report"
	"report-srv/pkg/paginator"
)

type reportRef struct {
	ID        any    `json:"id"`
	ReportKey string `json:"report_key"`
	Label     string `json:"label"`
}

type saveReq struct {
	URL           string         `json:"url"`
	Report        reportRef      `json:"report"`
	ReportOptions map[string]any `json:"reportOptions"`
}

// reportID prefers the report key; BHIMA clients send the numeric row id alongside it.
func (r saveReq) reportID() string {
	if r.Report.ReportKey != "" {
		return r.Report.ReportKey
	}
	if id, ok := r.Report.ID.(string); ok {
		return id
	}
	return ""
}

func (r saveReq) toInput() report.SaveInput {
	params := make(map[string]any, len(r.ReportOptions))
	var rendererKey *string
	for k, v := range r.ReportOptions {
		if k == "renderer" {
			s, _ := v.(string)
			rendererKey = &s
			continue
		}
		params[k] = v
	}

	return report.SaveInput{
		URL:        r.URL,
		ReportID:   r.reportID(),
		Label:      r.Report.Label,
		Renderer:   rendererKey,
		Parameters: params,
	}
}

type renderReq struct {
	ReportID   string
	Renderer   *string
	Parameters map[string]any
	Lang       string
}

func (r renderReq) toInput() report.RenderInput {
	return report.RenderInput{
		ReportID:   r.ReportID,
		Renderer:   r.Renderer,
		Parameters: r.Parameters,
		Lang:       r.Lang,
	}
}

type previewReq struct {
	ReportID   string
	Parameters map[string]any
	Lang       string
}

func (r previewReq) toInput() report.PreviewInput {
	return report.PreviewInput{
		ReportID:   r.ReportID,
		Parameters: r.Parameters,
		Lang:       r.Lang,
	}
}

type listArchivesReq struct {
	ReportID string `form:"report_id"`
	Page     int    `form:"page"`
	Limit    int64  `form:"limit"`
}

func (r listArchivesReq) toInput() report.ListArchivesInput {
	return report.ListArchivesInput{
		ReportID: r.ReportID,
		Paginate: paginator.PaginateQuery{Page: r.Page, Limit: r.Limit},
	}
}

type renderArchiveReq struct {
	Key      string
	Renderer *string
	Lang     string
}

func (r renderArchiveReq) toInput() report.RenderArchiveInput {
	return report.RenderArchiveInput{
		Key:      r.Key,
		Renderer: r.Renderer,
		Lang:     r.Lang,
	}
}

type definitionResp struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	URL            string   `json:"url"`
	Keys           []string `json:"keys"`
	DateParams     []string `json:"date_params"`
	RequiredParams []string `json:"required_params"`
}

type saveResp struct {
	ReportKey string `json:"report_key"`
	Key       string `json:"key"`
	State     string `json:"state"`
}

type lastParametersResp struct {
	ReportID   string         `json:"report_id"`
	Parameters map[string]any `json:"parameters"`
}

type archiveResp struct {
	Key        string         `json:"key"`
	ReportID   string         `json:"report_id"`
	Label      string         `json:"label"`
	URL        string         `json:"url"`
	Renderer   string         `json:"renderer"`
	Parameters map[string]any `json:"parameters"`
	CreatedBy  string         `json:"created_by"`
	CreatedAt  string         `json:"created_at"`
}

type listArchivesResp struct {
	Archives  []archiveResp               `json:"archives"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

type downloadResp struct {
	DownloadURL string `json:"download_url"`
	ExpiresAt   string `json:"expires_at"`
	FileName    string `json:"file_name"`
	FileSize    int64  `json:"file_size"`
}

func (h *handler) newDefinitionsResp(defs []report.DefinitionOutput) []definitionResp {
	out := make([]definitionResp, 0, len(defs))
	for _, d := range defs {
		out = append(out, definitionResp{
			ID:             d.ID,
			Title:          d.Title,
			URL:            d.URL,
			Keys:           nonNil(d.Keys),
			DateParams:     nonNil(d.DateParams),
			RequiredParams: nonNil(d.RequiredParams),
		})
	}
	return out
}

func (h *handler) newSaveResp(o report.SaveOutput) saveResp {
	return saveResp{
		ReportKey: o.ReportKey,
		Key:       o.ArchiveKey,
		State:     strings.ToLower(string(o.State)),
	}
}

func (h *handler) newLastParametersResp(o report.LastParametersOutput) lastParametersResp {
	return lastParametersResp{
		ReportID:   o.ReportID,
		Parameters: o.Parameters,
	}
}

func (h *handler) newArchiveResp(o report.ArchiveOutput) archiveResp {
	return archiveResp{
		Key:        o.Key,
		ReportID:   o.ReportID,
		Label:      o.Label,
		URL:        o.URL,
		Renderer:   o.Renderer,
		Parameters: o.Parameters,
		CreatedBy:  o.CreatedBy,
		CreatedAt:  o.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (h *handler) newListArchivesResp(o report.ListArchivesOutput) listArchivesResp {
	archives := make([]archiveResp, 0, len(o.Archives))
	for _, a := range o.Archives {
		archives = append(archives, h.newArchiveResp(a))
	}
	return listArchivesResp{
		Archives:  archives,
		Paginator: o.Paginator.ToResponse(),
	}
}

func (h *handler) newDownloadResp(o report.DownloadOutput) downloadResp {
	return downloadResp{
		DownloadURL: o.DownloadURL,
		ExpiresAt:   o.ExpiresAt.Format(time.RFC3339),
		FileName:    o.FileName,
		FileSize:    o.FileSize,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
