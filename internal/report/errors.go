package report

import "errors"

var (
	ErrInvalidRenderer   = errors.New("invalid renderer")
	ErrInvalidParameter  = errors.New("invalid report parameter")
	ErrMissingParameter  = errors.New("missing required report parameter")
	ErrBadDateInterval   = errors.New("dateFrom must not be after dateTo")
	ErrReportNotFound    = errors.New("report not found")
	ErrArchiveNotFound   = errors.New("archive entry not found")
	ErrSnapshotNotReady  = errors.New("archive snapshot is not ready")
	ErrRenderTimeout     = errors.New("report rendering timed out")
	ErrComputeFailed     = errors.New("report data computation failed")
	ErrRenderFailed      = errors.New("report rendering failed")
	ErrSaveFailed        = errors.New("saving report failed")
	ErrDownloadURLFailed = errors.New("failed to generate download URL")
)
