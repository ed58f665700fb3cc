package subtask

import "errors"

var (
	ErrSubtaskNotFound = errors.New("subtask not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrTitleTooLong    = errors.New("title must be at most 200 characters")
)
