package http

import (
	"errors"
	"net/http"

	"report-srv/internal/report"
	pkgErrors "report-srv/pkg/errors"
)

const (
	codeInvalidRenderer  = "ERRORS.INVALID_RENDERER"
	codeBadRequest       = "ERRORS.BAD_REQUEST"
	codeMissingParameter = "ERRORS.MISSING_PARAMETER"
	codeBadDateInterval  = "ERRORS.BAD_DATE_INTERVAL"
	codeNotFound         = "ERRORS.NOT_FOUND"
	codeSnapshotNotReady = "ERRORS.SNAPSHOT_NOT_READY"
	codeRenderTimeout    = "ERRORS.RENDER_TIMEOUT"
	codeInternal         = "ERRORS.INTERNAL"
)

var (
	errInvalidRenderer  = pkgErrors.NewHTTPError(http.StatusBadRequest, codeInvalidRenderer, "Invalid renderer")
	errInvalidParameter = pkgErrors.NewHTTPError(http.StatusBadRequest, codeBadRequest, "Invalid report parameter")
	errMissingParameter = pkgErrors.NewHTTPError(http.StatusBadRequest, codeMissingParameter, "Missing required report parameter")
	errBadDateInterval  = pkgErrors.NewHTTPError(http.StatusBadRequest, codeBadDateInterval, "Start date is after end date")
	errReportNotFound   = pkgErrors.NewHTTPError(http.StatusNotFound, codeNotFound, "Report not found")
	errArchiveNotFound  = pkgErrors.NewHTTPError(http.StatusNotFound, codeNotFound, "Archive entry not found")
	errSnapshotNotReady = pkgErrors.NewHTTPError(http.StatusConflict, codeSnapshotNotReady, "Archive snapshot is not ready yet")
	errRenderTimeout    = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, codeRenderTimeout, "Report rendering timed out")
	errComputeFailed    = pkgErrors.NewHTTPError(http.StatusInternalServerError, codeInternal, "Report data computation failed")
	errRenderFailed     = pkgErrors.NewHTTPError(http.StatusInternalServerError, codeInternal, "Report rendering failed")
	errSaveFailed       = pkgErrors.NewHTTPError(http.StatusInternalServerError, codeInternal, "Saving report failed")
	errDownloadURL      = pkgErrors.NewHTTPError(http.StatusInternalServerError, codeInternal, "Failed to generate download URL")
	errInvalidBody      = pkgErrors.NewHTTPError(http.StatusBadRequest, codeBadRequest, "Invalid request body")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrInvalidRenderer):
		return errInvalidRenderer
	case errors.Is(err, report.ErrInvalidParameter):
		return errInvalidParameter
	case errors.Is(err, report.ErrMissingParameter):
		return errMissingParameter
	case errors.Is(err, report.ErrBadDateInterval):
		return errBadDateInterval
	case errors.Is(err, report.ErrReportNotFound):
		return errReportNotFound
	case errors.Is(err, report.ErrArchiveNotFound):
		return errArchiveNotFound
	case errors.Is(err, report.ErrSnapshotNotReady):
		return errSnapshotNotReady
	case errors.Is(err, report.ErrRenderTimeout):
		return errRenderTimeout
	case errors.Is(err, report.ErrComputeFailed):
		return errComputeFailed
	case errors.Is(err, report.ErrRenderFailed):
		return errRenderFailed
	case errors.Is(err, report.ErrSaveFailed):
		return errSaveFailed
	case errors.Is(err, report.ErrDownloadURLFailed):
		return errDownloadURL
	default:
		panic(err)
	}
}
