package subtask

import (
	"context"

	"smart-task-scheduler/internal/model"
)

// UseCase manages the checklist under a task. Every call first resolves the
// parent task in the caller's scope, so a foreign task reads as not found.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Add(ctx context.Context, sc model.Scope, input AddInput) (model.Subtask, error)
	List(ctx context.Context, sc model.Scope, taskID string) ([]model.Subtask, error)
	Toggle(ctx context.Context, sc model.Scope, input ItemInput) (model.Subtask, error)
	Delete(ctx context.Context, sc model.Scope, input ItemInput) error
}
