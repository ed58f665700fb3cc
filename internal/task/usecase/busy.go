package usecase

import (
	"context"

	"smart-task-scheduler/internal/availability"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/task"
)

// Busy lists everything that blocks the user's time in [From, To).
func (uc *implUseCase) Busy(ctx context.Context, sc model.Scope, input task.BusyInput) ([]availability.Busy, error) {
	if !input.To.After(input.From) {
		return nil, task.ErrInvalidRange
	}
	return uc.busy(ctx, sc.UserID, input.From, input.To, "")
}
