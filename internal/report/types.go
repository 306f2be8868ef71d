package report

import (
	"time"

	"report-srv/pkg/paginator"
)

// DispatchState is a state of the preview/save flow.
type DispatchState string

const (
	StateConfiguring   DispatchState = "CONFIGURING"
	StatePreviewing    DispatchState = "PREVIEWING"
	StatePreviewReady  DispatchState = "PREVIEW_READY"
	StatePreviewFailed DispatchState = "PREVIEW_FAILED"
	StateSaving        DispatchState = "SAVING"
	StateSaved         DispatchState = "SAVED"
	StateSaveFailed    DispatchState = "SAVE_FAILED"
)

// RenderInput asks for one rendering of a report. A nil Renderer means the caller named none.
type RenderInput struct {
	ReportID   string
	Renderer   *string
	Parameters map[string]any
	Lang       string
}

type RenderOutput struct {
	ContentType string
	FileName    string
	Payload     []byte
	Cached      bool
}

type PreviewInput struct {
	ReportID   string
	Parameters map[string]any
	Lang       string
}

type PreviewOutput struct {
	State       DispatchState
	ContentType string
	HTML        []byte
}

type SaveInput struct {
	URL        string
	ReportID   string
	Label      string
	Renderer   *string
	Parameters map[string]any
}

type SaveOutput struct {
	State DispatchState
	// ReportKey names the report whose archive listing the client navigates to.
	ReportKey  string
	ArchiveKey string
}

type LastParametersInput struct {
	ReportID string
}

type LastParametersOutput struct {
	ReportID   string
	Parameters map[string]any
}

type DefinitionOutput struct {
	ID             string
	Title          string
	URL            string
	Keys           []string
	DateParams     []string
	RequiredParams []string
}

type GetArchiveInput struct {
	Key string
}

type ArchiveOutput struct {
	Key        string
	ReportID   string
	Label      string
	URL        string
	Renderer   string
	Parameters map[string]any
	CreatedBy  string
	CreatedAt  time.Time
}

type ListArchivesInput struct {
	ReportID string
	Paginate paginator.PaginateQuery
}

type ListArchivesOutput struct {
	Archives  []ArchiveOutput
	Paginator paginator.Paginator
}

type RenderArchiveInput struct {
	Key      string
	Renderer *string
	Lang     string
}

type DownloadArchiveInput struct {
	Key string
}

type DownloadOutput struct {
	DownloadURL string
	ExpiresAt   time.Time
	FileName    string
	FileSize    int64
}

type SnapshotInput struct {
	Key string
}

// ArchivedEvent is published after an archive entry is stored.
type ArchivedEvent struct {
	Key       string
	ReportID  string
	CreatedAt time.Time
}
