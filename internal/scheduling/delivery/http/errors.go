package http

import (
	"errors"
	"net/http"

	"smart-task-scheduler/internal/resolver"
	"smart-task-scheduler/internal/scheduling"
	taskHTTP "smart-task-scheduler/internal/task/delivery/http"
	pkgErrors "smart-task-scheduler/pkg/errors"
)

const KindValidation = "VALIDATION"

// mapError translates scheduling errors into HTTP errors. Constraint errors
// keep their code as the kind, so a client can tell
// PAGINATION_CONSTRAINT_VIOLATION from a plain VALIDATION failure.
func (h *handler) mapError(err error) error {
	var ce *resolver.ConstraintError
	if errors.As(err, &ce) {
		httpErr := pkgErrors.NewHTTPError(http.StatusBadRequest, ce.Message).
			WithKind(ce.Code).
			WithDetail("field", ce.Field)
		if ce.Expected != "" {
			httpErr = httpErr.WithDetail("expected", ce.Expected)
		}
		return httpErr
	}

	switch {
	case errors.Is(err, scheduling.ErrTextRequired):
		return fieldError("text", err.Error())
	case errors.Is(err, scheduling.ErrInvalidNavigate):
		return fieldError("navigate", err.Error())
	}
	return taskHTTP.MapError(err)
}

func bindError(err error) error {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}
	return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error()).WithKind(KindValidation)
}

func fieldError(field, msg string) error {
	return pkgErrors.NewHTTPError(http.StatusBadRequest, msg).
		WithKind(KindValidation).
		WithDetail("field", field)
}
