package usecase

import (
	"context"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/task"
	"smart-task-scheduler/internal/task/repository"
)

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	t, err := uc.repo.GetTask(ctx, repository.GetTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "Delete.GetTask: %v", err)
		return err
	}
	if t.ID == "" {
		return task.ErrTaskNotFound
	}

	deleted, err := uc.repo.DeleteTask(ctx, repository.DeleteTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "Delete.DeleteTask: %v", err)
		return err
	}
	if !deleted {
		return task.ErrTaskNotFound
	}

	if uc.calOpts.Mirror {
		uc.tryDeleteCalendarEvent(ctx, t.CalendarEventID)
	}
	return nil
}
