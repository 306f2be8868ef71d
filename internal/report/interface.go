package report

import (
	"context"

	"report-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	ListDefinitions(ctx context.Context, sc model.Scope) ([]DefinitionOutput, error)
	Render(ctx context.Context, sc model.Scope, input RenderInput) (RenderOutput, error)
	Preview(ctx context.Context, sc model.Scope, input PreviewInput) (PreviewOutput, error)
	SaveAs(ctx context.Context, sc model.Scope, input SaveInput) (SaveOutput, error)
	LastParameters(ctx context.Context, sc model.Scope, input LastParametersInput) (LastParametersOutput, error)

	GetArchive(ctx context.Context, sc model.Scope, input GetArchiveInput) (ArchiveOutput, error)
	ListArchives(ctx context.Context, sc model.Scope, input ListArchivesInput) (ListArchivesOutput, error)
	RenderArchive(ctx context.Context, sc model.Scope, input RenderArchiveInput) (RenderOutput, error)
	DownloadArchive(ctx context.Context, sc model.Scope, input DownloadArchiveInput) (DownloadOutput, error)

	// Snapshot renders the PDF of an archive entry into object storage.
	Snapshot(ctx context.Context, input SnapshotInput) error
}

// Publisher announces new archive entries.
//
//go:generate mockery --name Publisher
type Publisher interface {
	PublishArchived(ctx context.Context, event ArchivedEvent) error
}
