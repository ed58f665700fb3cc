package task

import (
	"context"

	"smart-task-scheduler/internal/availability"
	"smart-task-scheduler/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Commits. Each re-validates the interval under the user's commit lock.
	CreateDirect(ctx context.Context, sc model.Scope, input CreateDirectInput) (CommitResult, error)
	CreateFromSuggestion(ctx context.Context, sc model.Scope, input CreateFromSuggestionInput) (CommitResult, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (CommitResult, error)

	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	// UpdateStatus reopening a COMPLETED task is a commit and may conflict.
	UpdateStatus(ctx context.Context, sc model.Scope, input UpdateStatusInput) (CommitResult, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Busy lists tasks and imported calendar events that block time.
	Busy(ctx context.Context, sc model.Scope, input BusyInput) ([]availability.Busy, error)
}
