package http

import (
	"errors"
	"net/http"

	"smart-task-scheduler/internal/preference"
	pkgErrors "smart-task-scheduler/pkg/errors"
)

const KindValidation = "VALIDATION"

// mapError translates preference usecase errors into HTTP errors.
func (h *handler) mapError(err error) error {
	if errors.Is(err, preference.ErrAlreadySet) {
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error()).WithKind("ALREADY_SET")
	}
	var fe *preference.FieldError
	if errors.As(err, &fe) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, fe.Err.Error()).
			WithKind(KindValidation).
			WithDetail("field", fe.Field)
	}
	return pkgErrors.ErrInternalServerError
}
