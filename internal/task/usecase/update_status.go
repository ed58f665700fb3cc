package usecase

import (
	"context"

	"smart-task-scheduler/internal/availability"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/task"
	"smart-task-scheduler/internal/task/repository"
)

// UpdateStatus changes a task's status. Completing a task frees its time, so
// the mirrored calendar event is removed as well. Reopening a completed task
// claims its interval again and is a commit: it conflicts when the time was
// booked in the meantime.
func (uc *implUseCase) UpdateStatus(ctx context.Context, sc model.Scope, input task.UpdateStatusInput) (task.CommitResult, error) {
	status, ok := model.ParseStatus(string(input.Status))
	if !ok {
		return task.CommitResult{}, task.ErrInvalidStatus
	}

	existing, err := uc.repo.GetTask(ctx, repository.GetTaskOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "UpdateStatus.GetTask: %v", err)
		return task.CommitResult{}, err
	}
	if existing.ID == "" {
		return task.CommitResult{}, task.ErrTaskNotFound
	}

	req := commitRequest{source: "reopen", existing: existing}
	reopen := existing.Status == model.StatusCompleted && status != model.StatusCompleted &&
		existing.ScheduledStart != nil && existing.ScheduledEnd != nil
	if reopen {
		unlock := uc.locks.Lock(sc.UserID)
		defer unlock()

		req.interval = model.Interval{Start: *existing.ScheduledStart, End: *existing.ScheduledEnd}
		req.draft = mergeDraft(model.TaskDraft{DurationMinutes: existing.DurationMinutes}, existing)

		busy, err := uc.busy(ctx, sc.UserID, req.interval.Start, req.interval.End, existing.ID)
		if err != nil {
			uc.metrics.IncCommit(req.source, "error")
			return task.CommitResult{}, err
		}
		if blocking := availability.New(busy).Conflicts(req.interval.Start, req.interval.End); len(blocking) > 0 {
			return uc.conflict(ctx, req, blocking), nil
		}
	}

	t, overlap, err := uc.repo.UpdateStatusIfFree(ctx, repository.UpdateStatusOptions{
		ID:     input.ID,
		UserID: sc.UserID,
		Status: status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "UpdateStatus.UpdateStatusIfFree: %v", err)
		return task.CommitResult{}, err
	}
	if len(overlap) > 0 {
		return uc.conflict(ctx, req, availability.FromTasks(overlap)), nil
	}
	if t.ID == "" {
		return task.CommitResult{}, task.ErrTaskNotFound
	}

	switch {
	case reopen:
		t = uc.mirror(ctx, sc, t, "")
		uc.metrics.IncCommit(req.source, string(task.OutcomeCommitted))
	case status == model.StatusCompleted && t.CalendarEventID != "" && uc.calOpts.Mirror:
		uc.tryDeleteCalendarEvent(ctx, t.CalendarEventID)
		if err := uc.repo.SetCalendarEventID(ctx, repository.SetCalendarEventOptions{ID: t.ID, UserID: sc.UserID}); err != nil {
			uc.l.Warnf(ctx, "UpdateStatus: clearing event id for %s failed (non-fatal): %v", t.ID, err)
		} else {
			t.CalendarEventID = ""
		}
	}
	return task.CommitResult{Outcome: task.OutcomeCommitted, Task: t}, nil
}
