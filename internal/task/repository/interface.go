package repository

import (
	"context"

	"smart-task-scheduler/internal/model"
)

// Repository is the task store. The *IfFree methods run the overlap check and
// the write in one transaction that holds the user's lock; on overlap they
// write nothing and return the blocking tasks.
type Repository interface {
	CreateIfFree(ctx context.Context, opt CreateTaskOptions) (model.Task, []model.Task, error)
	RescheduleIfFree(ctx context.Context, opt RescheduleTaskOptions) (model.Task, []model.Task, error)
	// UpdateStatusIfFree re-checks overlap only when a COMPLETED task reopens.
	UpdateStatusIfFree(ctx context.Context, opt UpdateStatusOptions) (model.Task, []model.Task, error)

	// GetTask returns a zero Task (ID == "") when nothing matches.
	GetTask(ctx context.Context, opt GetTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	// ListScheduled returns open tasks whose interval intersects the range.
	ListScheduled(ctx context.Context, opt ListScheduledOptions) ([]model.Task, error)

	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	SetCalendarEventID(ctx context.Context, opt SetCalendarEventOptions) error
	DeleteTask(ctx context.Context, opt DeleteTaskOptions) (bool, error)
}
