package http

import (
	"errors"
	"net/http"

	"smart-task-scheduler/internal/task"
	pkgErrors "smart-task-scheduler/pkg/errors"
)

const (
	KindValidation = "VALIDATION"
	KindNotFound   = "NOT_FOUND"
)

// fieldOf names the request field a validation error refers to.
var fieldOf = map[error]string{
	task.ErrTitleRequired:     "title",
	task.ErrStartRequired:     "scheduledStart",
	task.ErrInvalidDuration:   "durationMinutes",
	task.ErrInvalidInterval:   "scheduledEnd",
	task.ErrInvalidTaskType:   "taskType",
	task.ErrInvalidPriority:   "priority",
	task.ErrInvalidStatus:     "status",
	task.ErrInvalidRange:      "to",
	task.ErrTaskAlreadyClosed: "status",
}

// MapError translates task usecase errors into HTTP errors. It is exported for
// the scheduling delivery, which commits through the same usecase.
func MapError(err error) error {
	if errors.Is(err, task.ErrTaskNotFound) {
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error()).WithKind(KindNotFound)
	}
	for target, field := range fieldOf {
		if errors.Is(err, target) {
			return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error()).
				WithKind(KindValidation).
				WithDetail("field", field)
		}
	}
	return pkgErrors.ErrInternalServerError
}

func (h *handler) mapError(err error) error {
	return MapError(err)
}

// bindError wraps binding and parsing failures as VALIDATION errors.
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
