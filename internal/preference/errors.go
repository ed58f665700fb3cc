package preference

import "errors"

var (
	ErrAlreadySet              = errors.New("preferences are already set")
	ErrInvalidTime             = errors.New("time must be HH:MM or HH:MM:SS")
	ErrIncompleteRange         = errors.New("start and end must be given together")
	ErrInvalidWorkday          = errors.New("workday end must be after start")
	ErrInvalidFocus            = errors.New("focus peak end must be after start")
	ErrInvalidDaysOff          = errors.New("daysOff must be weekday numbers 0 to 6")
	ErrInvalidDuration         = errors.New("defaultDurationMinutes must be between 0 and 1440")
	ErrInvalidDeadlineBehavior = errors.New("deadlineBehavior must be EARLY, ON_TIME or LAST_MINUTE")
	ErrInvalidFlexibility      = errors.New("flexibility must be LOW, MEDIUM or HIGH")
	ErrInvalidPreferenceTime   = errors.New("preferenceTime must be Morning, Afternoon, Evening or No preference")
	ErrInvalidWeekday          = errors.New("preferred days must be weekday names")
	ErrInvalidTaskType         = errors.New("task type must be Meeting, Training or Studies")
)

// FieldError ties a validation error to the request field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Err.Error() }

func (e *FieldError) Unwrap() error { return e.Err }
