package preference

import (
	"context"

	"smart-task-scheduler/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, sc model.Scope) (GetOutput, error)
	// Set stores the preferences once; a second call returns ErrAlreadySet.
	Set(ctx context.Context, sc model.Scope, input SetInput) (model.Preferences, error)
}
