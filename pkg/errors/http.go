package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error carrying the HTTP status and a machine-readable kind.
type HTTPError struct {
	StatusCode int
	Kind       string
	Message    string
	Details    map[string]any
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, msg string) *HTTPError {
	return &HTTPError{StatusCode: code, Message: msg}
}

// WithKind returns a copy tagged with kind, e.g. "VALIDATION".
func (e *HTTPError) WithKind(kind string) *HTTPError {
	cp := *e
	cp.Kind = kind
	return &cp
}

// WithDetail returns a copy carrying an additional detail entry.
func (e *HTTPError) WithDetail(key string, value any) *HTTPError {
	cp := *e
	cp.Details = make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		cp.Details[k] = v
	}
	cp.Details[key] = value
	return &cp
}

func (e *HTTPError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return e.Message
}

var (
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)
