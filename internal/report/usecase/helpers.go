package usecase

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iancoleman/strcase"

	"report-srv/internal/catalog"
	"report-srv/internal/model"
	"report-srv/internal/renderer"
	"report-srv/internal/report"
	"report-srv/internal/report/repository"
)

const archiveObjectPrefix = "archives/"

// requestHash identifies a rendering. Map keys marshal in sorted order so equal parameter
// sets hash equally.
func requestHash(reportID, key, lang string, params map[string]any) string {
	data, _ := json.Marshal(struct {
		Report     string         `json:"report"`
		Renderer   string         `json:"renderer"`
		Lang       string         `json:"lang"`
		Parameters map[string]any `json:"parameters"`
	}{reportID, key, lang, params})

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// mapRenderError converts renderer errors to domain errors.
func mapRenderError(err error) error {
	switch {
	case errors.Is(err, renderer.ErrInvalidRenderer):
		return fmt.Errorf("%w: %v", report.ErrInvalidRenderer, err)
	case errors.Is(err, renderer.ErrRenderTimeout):
		return report.ErrRenderTimeout
	default:
		return fmt.Errorf("%w: %v", report.ErrRenderFailed, err)
	}
}

// mapArchiveError converts archive repository errors to domain errors.
func mapArchiveError(err error) error {
	if errors.Is(err, repository.ErrArchiveNotFound) {
		return report.ErrArchiveNotFound
	}
	return err
}

func toRenderOutput(a model.Artifact, cached bool) report.RenderOutput {
	return report.RenderOutput{
		ContentType: a.ContentType,
		FileName:    a.FileName,
		Payload:     a.Payload,
		Cached:      cached,
	}
}

func toDefinitionOutput(def catalog.Definition) report.DefinitionOutput {
	return report.DefinitionOutput{
		ID:             def.ID,
		Title:          def.Title,
		URL:            def.URL,
		Keys:           def.Keys,
		DateParams:     def.DateParams,
		RequiredParams: def.RequiredParams,
	}
}

func toArchiveOutput(e *model.ArchiveEntry, params map[string]any) report.ArchiveOutput {
	return report.ArchiveOutput{
		Key:        e.Key,
		ReportID:   e.ReportID,
		Label:      e.Label,
		URL:        e.URL,
		Renderer:   e.Renderer,
		Parameters: params,
		CreatedBy:  e.CreatedBy,
		CreatedAt:  e.CreatedAt,
	}
}

func snapshotObjectName(key string) string {
	return archiveObjectPrefix + key + "." + renderer.KeyPDF
}

func snapshotFileName(e *model.ArchiveEntry) string {
	return fmt.Sprintf("%s-%s.%s", strcase.ToKebab(e.ReportID), e.CreatedAt.Format("20060102"), renderer.KeyPDF)
}

// expiresAt formats a presigned URL expiry for responses.
func expiresAt(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
