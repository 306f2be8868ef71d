package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"report-srv/internal/renderer"
	"report-srv/internal/report"
	"report-srv/pkg/minio"
)

var errStorageNotConfigured = errors.New("object storage is not configured")

// Snapshot - Render an archive entry as PDF and upload it under archives/<key>.pdf
func (uc *implUseCase) Snapshot(ctx context.Context, input report.SnapshotInput) error {
	if uc.minio == nil {
		return fmt.Errorf("%w: %v", report.ErrSaveFailed, errStorageNotConfigured)
	}

	entry, params, err := uc.loadArchive(ctx, input.Key)
	if err != nil {
		return err
	}

	def, ok := uc.catalog.Get(entry.ReportID)
	if !ok {
		return report.ErrReportNotFound
	}

	artifact, err := uc.produce(ctx, renderRequest{
		def:    def,
		key:    renderer.KeyPDF,
		params: params,
		lang:   pickLang("", ""),
	})
	if err != nil {
		return err
	}

	_, err = uc.minio.UploadFile(ctx, &minio.UploadRequest{
		BucketName:  uc.config.SnapshotBucket,
		ObjectName:  snapshotObjectName(entry.Key),
		Reader:      bytes.NewReader(artifact.Payload),
		Size:        int64(len(artifact.Payload)),
		ContentType: artifact.ContentType,
		Metadata: map[string]string{
			"archive-key": entry.Key,
			"report-id":   entry.ReportID,
			"created-by":  entry.CreatedBy,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Snapshot: Failed to upload snapshot of %s: %v", entry.Key, err)
		return fmt.Errorf("%w: %v", report.ErrSaveFailed, err)
	}

	uc.l.Infof(ctx, "report.usecase.Snapshot: Stored snapshot of %s (%d bytes)", entry.Key, len(artifact.Payload))
	return nil
}
