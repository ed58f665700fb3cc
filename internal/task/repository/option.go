package repository

import (
	"time"

	"smart-task-scheduler/internal/model"
)

// CreateTaskOptions holds the row to insert. Start and End are required.
type CreateTaskOptions struct {
	ID              string
	UserID          string
	Title           string
	TaskType        model.TaskType
	Description     string
	Priority        model.Priority
	DurationMinutes int
	DueDate         *time.Time
	Start           time.Time
	End             time.Time
}

// RescheduleTaskOptions moves a task and rewrites its editable fields.
type RescheduleTaskOptions struct {
	ID              string
	UserID          string
	Title           string
	TaskType        model.TaskType
	Description     string
	Priority        model.Priority
	DurationMinutes int
	DueDate         *time.Time
	Start           time.Time
	End             time.Time
}

type GetTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions filters one user's tasks. From/To match on scheduled_start.
type ListTasksOptions struct {
	UserID string
	Status model.Status
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

type ListScheduledOptions struct {
	UserID string
	From   time.Time
	To     time.Time
}

// UpdateTaskOptions rewrites the fields that do not affect the interval.
type UpdateTaskOptions struct {
	ID          string
	UserID      string
	Title       string
	TaskType    model.TaskType
	Description string
	Priority    model.Priority
	DueDate     *time.Time
}

type UpdateStatusOptions struct {
	ID     string
	UserID string
	Status model.Status
}

type SetCalendarEventOptions struct {
	ID              string
	UserID          string
	CalendarEventID string
}

type DeleteTaskOptions struct {
	ID     string
	UserID string
}
