package usecase

import (
	"context"
	"time"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/task"
	"smart-task-scheduler/internal/task/repository"
)

// CreateFromSuggestion commits a slot picked from a suggestion page. The slot
// is re-validated since the calendar may have changed after it was ranked.
// With a TaskID the existing task is moved instead of a new one created.
func (uc *implUseCase) CreateFromSuggestion(ctx context.Context, sc model.Scope, input task.CreateFromSuggestionInput) (task.CommitResult, error) {
	if input.Start.IsZero() {
		return task.CommitResult{}, task.ErrStartRequired
	}
	if !input.End.After(input.Start) {
		return task.CommitResult{}, task.ErrInvalidInterval
	}

	draft := input.Draft
	var existing model.Task
	if input.TaskID != "" {
		t, err := uc.repo.GetTask(ctx, repository.GetTaskOptions{ID: input.TaskID, UserID: sc.UserID})
		if err != nil {
			uc.l.Errorf(ctx, "CreateFromSuggestion.GetTask: %v", err)
			return task.CommitResult{}, err
		}
		if t.ID == "" {
			return task.CommitResult{}, task.ErrTaskNotFound
		}
		if t.Status == model.StatusCompleted {
			return task.CommitResult{}, task.ErrTaskAlreadyClosed
		}
		existing = t
		draft = mergeDraft(draft, t)
	}

	start := input.Start
	draft.Start = &start
	draft.DurationMinutes = int(input.End.Sub(input.Start) / time.Minute)
	draft, err := normalizeDraft(draft)
	if err != nil {
		return task.CommitResult{}, err
	}

	dueDate := draft.WindowEnd
	if existing.ID != "" && dueDate == nil {
		dueDate = existing.DueDate
	}

	uc.l.Infof(ctx, "CreateFromSuggestion: user=%s task=%q start=%s", sc.UserID, input.TaskID, start.Format(time.RFC3339))

	return uc.commit(ctx, sc, commitRequest{
		source:   "suggestion",
		draft:    draft,
		interval: model.Interval{Start: input.Start, End: input.End},
		existing: existing,
		dueDate:  dueDate,
	})
}

// mergeDraft fills the draft's empty fields from an existing task.
func mergeDraft(d model.TaskDraft, t model.Task) model.TaskDraft {
	if d.Title == "" {
		d.Title = t.Title
	}
	if d.TaskType == "" {
		d.TaskType = t.TaskType
	}
	if d.Priority == "" {
		d.Priority = t.Priority
	}
	if d.Description == "" {
		d.Description = t.Description
	}
	return d
}
