package errors

import "fmt"

// HTTPError is a domain error already mapped to an HTTP status and a stable error code.
type HTTPError struct {
	StatusCode int
	Code       string
	Message    string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(statusCode int, code, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
}
