package http

import (
	"errors"
	"net/http"

	"smart-task-scheduler/internal/subtask"
	"smart-task-scheduler/internal/task"
	pkgErrors "smart-task-scheduler/pkg/errors"
)

const (
	KindValidation = "VALIDATION"
	KindNotFound   = "NOT_FOUND"
)

func validationError(msg string) error {
	return pkgErrors.NewHTTPError(http.StatusBadRequest, msg).WithKind(KindValidation)
}

// mapError translates subtask usecase errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound), errors.Is(err, subtask.ErrSubtaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error()).WithKind(KindNotFound)
	case errors.Is(err, subtask.ErrTitleRequired), errors.Is(err, subtask.ErrTitleTooLong):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error()).
			WithKind(KindValidation).
			WithDetail("field", "title")
	}
	return pkgErrors.ErrInternalServerError
}
