package errors

import "net/http"

// HTTPError is an error that knows how it should be rendered over HTTP.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
	Details    any
}

// NewHTTPError creates an HTTPError whose error code mirrors the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       statusCode,
		Message:    message,
	}
}

// WithDetails returns a copy of e carrying structured details for the response body.
func (e *HTTPError) WithDetails(details any) *HTTPError {
	cp := *e
	cp.Details = details
	return &cp
}

func (e *HTTPError) Error() string {
	return e.Message
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
)
