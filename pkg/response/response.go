package response

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"

	"report-srv/pkg/discord"
	"report-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 envelope around data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes err as an envelope. HTTPErrors keep their status and code, anything else is
// treated as a malformed request. Server side failures are reported to Discord when configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *errors.HTTPError
	if !stderrors.As(err, &httpErr) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Code:      CodeBadRequest,
			Message:   err.Error(),
		})
		return
	}

	if httpErr.StatusCode >= http.StatusInternalServerError {
		reportBug(c, d, fmt.Sprintf("%s %s: %s", c.Request.Method, c.Request.URL.Path, httpErr.Error()))
	}

	c.JSON(httpErr.StatusCode, Resp{
		ErrorCode: httpErr.StatusCode,
		Code:      httpErr.Code,
		Message:   httpErr.Message,
	})
}

// ErrorWithMap resolves err through mapping before writing it.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, d discord.IDiscord) {
	for target, httpErr := range mapping {
		if stderrors.Is(err, target) {
			Error(c, httpErr, d)
			return
		}
	}
	Error(c, err, d)
}

// Unauthorized writes a 401 envelope.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Code:      CodeUnauthorized,
		Message:   "Unauthorized",
	})
}

// PanicError writes a 500 envelope for a recovered panic.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	reportBug(c, d, fmt.Sprintf("panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Code:      CodeInternal,
		Message:   "Internal server error",
	})
}

func reportBug(c *gin.Context, d discord.IDiscord, msg string) {
	if d == nil {
		return
	}
	ctx := context.WithoutCancel(c.Request.Context())
	go func() {
		_ = d.ReportBug(ctx, msg)
	}()
}
