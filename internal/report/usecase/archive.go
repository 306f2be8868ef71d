package usecase

import (
	"context"
	"errors"
	"fmt"

	"report-srv/internal/model"
	"report-srv/internal/renderer"
	"report-srv/internal/report"
	"report-srv/internal/report/repository"
	"report-srv/pkg/minio"
	"report-srv/pkg/paginator"
)

// GetArchive - Get an archive entry by key
func (uc *implUseCase) GetArchive(ctx context.Context, sc model.Scope, input report.GetArchiveInput) (report.ArchiveOutput, error) {
	entry, params, err := uc.loadArchive(ctx, input.Key)
	if err != nil {
		return report.ArchiveOutput{}, err
	}
	return toArchiveOutput(entry, params), nil
}

// ListArchives - List archive entries, newest first
func (uc *implUseCase) ListArchives(ctx context.Context, sc model.Scope, input report.ListArchivesInput) (report.ListArchivesOutput, error) {
	input.Paginate.Adjust()

	entries, total, err := uc.archive.ListArchives(ctx, repository.ListArchivesOptions{
		ReportID: input.ReportID,
		Limit:    input.Paginate.Limit,
		Offset:   input.Paginate.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ListArchives: Failed to list archive entries: %v", err)
		return report.ListArchivesOutput{}, err
	}

	archives := make([]report.ArchiveOutput, 0, len(entries))
	for _, e := range entries {
		params, err := e.DecodeParameters()
		if err != nil {
			uc.l.Warnf(ctx, "report.usecase.ListArchives: Failed to decode parameters of %s: %v", e.Key, err)
			params = map[string]any{}
		}
		archives = append(archives, toArchiveOutput(e, params))
	}

	return report.ListArchivesOutput{
		Archives:  archives,
		Paginator: paginator.New(input.Paginate, total, len(archives)),
	}, nil
}

// RenderArchive - Re-render an archived report. Without a renderer the entry's own is used.
func (uc *implUseCase) RenderArchive(ctx context.Context, sc model.Scope, input report.RenderArchiveInput) (report.RenderOutput, error) {
	var key string
	if input.Renderer != nil {
		k, err := parseRenderer(input.Renderer)
		if err != nil {
			return report.RenderOutput{}, err
		}
		key = k
	}

	entry, params, err := uc.loadArchive(ctx, input.Key)
	if err != nil {
		return report.RenderOutput{}, err
	}
	if key == "" {
		key = entry.Renderer
	}
	if key == "" {
		key = renderer.DefaultKey
	}

	def, ok := uc.catalog.Get(entry.ReportID)
	if !ok {
		return report.RenderOutput{}, report.ErrReportNotFound
	}

	return uc.render(ctx, renderRequest{
		def:      def,
		key:      key,
		params:   params,
		lang:     pickLang("", input.Lang),
		useCache: true,
	})
}

// DownloadArchive - Get a presigned URL of an archive entry's PDF snapshot
func (uc *implUseCase) DownloadArchive(ctx context.Context, sc model.Scope, input report.DownloadArchiveInput) (report.DownloadOutput, error) {
	entry, _, err := uc.loadArchive(ctx, input.Key)
	if err != nil {
		return report.DownloadOutput{}, err
	}

	if uc.minio == nil {
		return report.DownloadOutput{}, report.ErrSnapshotNotReady
	}

	objectName := snapshotObjectName(entry.Key)
	info, err := uc.minio.GetFileInfo(ctx, uc.config.SnapshotBucket, objectName)
	if minio.IsObjectNotFound(err) {
		return report.DownloadOutput{}, report.ErrSnapshotNotReady
	}
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.DownloadArchive: Failed to stat snapshot %s: %v", objectName, err)
		return report.DownloadOutput{}, fmt.Errorf("%w: %v", report.ErrDownloadURLFailed, err)
	}

	fileName := snapshotFileName(entry)
	presigned, err := uc.minio.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName:  uc.config.SnapshotBucket,
		ObjectName:  objectName,
		Method:      minio.MethodGET,
		Expiry:      uc.config.DownloadURLExpiry,
		FileName:    fileName,
		Disposition: minio.DispositionAttachment,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.DownloadArchive: Failed to generate presigned URL: %v", err)
		return report.DownloadOutput{}, fmt.Errorf("%w: %v", report.ErrDownloadURLFailed, err)
	}

	return report.DownloadOutput{
		DownloadURL: presigned.URL,
		ExpiresAt:   expiresAt(presigned.ExpiresAt),
		FileName:    fileName,
		FileSize:    info.Size,
	}, nil
}

func (uc *implUseCase) loadArchive(ctx context.Context, key string) (*model.ArchiveEntry, map[string]any, error) {
	entry, err := uc.archive.GetArchiveByKey(ctx, key)
	if err != nil {
		err = mapArchiveError(err)
		if !errors.Is(err, report.ErrArchiveNotFound) {
			uc.l.Errorf(ctx, "report.usecase.loadArchive: Failed to get archive entry %s: %v", key, err)
		}
		return nil, nil, err
	}

	params, err := entry.DecodeParameters()
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.loadArchive: Failed to decode parameters of %s: %v", key, err)
		return nil, nil, err
	}

	return entry, params, nil
}
