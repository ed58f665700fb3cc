package usecase

import (
	"context"
	"strings"
	"time"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/task"
	"smart-task-scheduler/internal/task/repository"
)

// Update applies a partial update. Changing the start or the duration moves
// the task and goes through the same commit path as a create.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.CommitResult, error) {
	existing, err := uc.repo.GetTask(ctx, repository.GetTaskOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "Update.GetTask: %v", err)
		return task.CommitResult{}, err
	}
	if existing.ID == "" {
		return task.CommitResult{}, task.ErrTaskNotFound
	}

	draft := mergeDraft(model.TaskDraft{
		Title:       strings.TrimSpace(input.Title),
		TaskType:    input.TaskType,
		Priority:    input.Priority,
		Description: input.Description,
	}, existing)
	dueDate := existing.DueDate
	if input.DueDate != nil {
		dueDate = input.DueDate
	}

	if input.Start == nil && input.DurationMinutes == 0 {
		draft.DurationMinutes = max(existing.DurationMinutes, 1)
		draft, err = normalizeDraft(draft)
		if err != nil {
			return task.CommitResult{}, err
		}
		t, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
			ID:          existing.ID,
			UserID:      sc.UserID,
			Title:       draft.Title,
			TaskType:    draft.TaskType,
			Description: draft.Description,
			Priority:    draft.Priority,
			DueDate:     dueDate,
		})
		if err != nil {
			uc.l.Errorf(ctx, "Update.UpdateTask: %v", err)
			return task.CommitResult{}, err
		}
		if t.ID == "" {
			return task.CommitResult{}, task.ErrTaskNotFound
		}
		return task.CommitResult{Outcome: task.OutcomeCommitted, Task: t}, nil
	}

	if existing.Status == model.StatusCompleted {
		return task.CommitResult{}, task.ErrTaskAlreadyClosed
	}
	start := existing.ScheduledStart
	if input.Start != nil {
		start = input.Start
	}
	if start == nil {
		return task.CommitResult{}, task.ErrStartRequired
	}
	draft.Start = start
	draft.DurationMinutes = existing.DurationMinutes
	if input.DurationMinutes != 0 {
		draft.DurationMinutes = input.DurationMinutes
	}
	draft, err = normalizeDraft(draft)
	if err != nil {
		return task.CommitResult{}, err
	}
	iv, _ := draft.Interval()

	uc.l.Infof(ctx, "Update: user=%s task=%s moving to %s", sc.UserID, existing.ID, iv.Start.Format(time.RFC3339))

	return uc.commit(ctx, sc, commitRequest{
		source:   "update",
		draft:    draft,
		interval: iv,
		existing: existing,
		dueDate:  dueDate,
	})
}
