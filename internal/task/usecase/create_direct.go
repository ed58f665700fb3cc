package usecase

import (
	"context"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/task"
)

// CreateDirect commits a task at the exact interval the caller asked for.
// Overlap with busy time returns a conflict result carrying the attempted draft.
func (uc *implUseCase) CreateDirect(ctx context.Context, sc model.Scope, input task.CreateDirectInput) (task.CommitResult, error) {
	draft, err := normalizeDraft(input.Draft)
	if err != nil {
		return task.CommitResult{}, err
	}
	iv, ok := draft.Interval()
	if !ok {
		return task.CommitResult{}, task.ErrStartRequired
	}

	uc.l.Infof(ctx, "CreateDirect: user=%s duration=%d", sc.UserID, draft.DurationMinutes)

	return uc.commit(ctx, sc, commitRequest{
		source:   "direct",
		draft:    draft,
		interval: iv,
		dueDate:  draft.WindowEnd,
	})
}
