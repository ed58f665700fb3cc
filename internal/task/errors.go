package task

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTitleRequired     = errors.New("title is required")
	ErrStartRequired     = errors.New("scheduledStart is required")
	ErrInvalidDuration   = errors.New("durationMinutes must be between 1 and 1440")
	ErrInvalidInterval   = errors.New("scheduledEnd must be after scheduledStart")
	ErrInvalidTaskType   = errors.New("taskType must be Meeting, Training or Studies")
	ErrInvalidPriority   = errors.New("priority must be LOW, MEDIUM or HIGH")
	ErrInvalidStatus     = errors.New("status must be TODO, IN_PROGRESS or COMPLETED")
	ErrInvalidRange      = errors.New("busy range end must be after start")
	ErrTaskAlreadyClosed = errors.New("completed tasks cannot be rescheduled")
)
