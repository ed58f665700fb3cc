package repository

import (
	"context"

	"smart-task-scheduler/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	CreateSubtask(ctx context.Context, opt CreateSubtaskOptions) (model.Subtask, error)
	// ListSubtasks returns the task's subtasks oldest first.
	ListSubtasks(ctx context.Context, opt ListSubtasksOptions) ([]model.Subtask, error)
	// ToggleSubtask flips is_done and returns a zero Subtask when not found.
	ToggleSubtask(ctx context.Context, opt GetSubtaskOptions) (model.Subtask, error)
	DeleteSubtask(ctx context.Context, opt GetSubtaskOptions) (bool, error)
}
