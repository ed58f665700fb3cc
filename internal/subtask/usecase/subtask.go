package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/subtask"
	"smart-task-scheduler/internal/subtask/repository"
)

// parent returns task.ErrTaskNotFound unless the caller owns the task.
func (uc *implUseCase) parent(ctx context.Context, sc model.Scope, taskID string) error {
	_, err := uc.tasks.Detail(ctx, sc, taskID)
	return err
}

// Add appends an open subtask to the task.
func (uc *implUseCase) Add(ctx context.Context, sc model.Scope, input subtask.AddInput) (model.Subtask, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Subtask{}, subtask.ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return model.Subtask{}, subtask.ErrTitleTooLong
	}
	if err := uc.parent(ctx, sc, input.TaskID); err != nil {
		return model.Subtask{}, err
	}

	st, err := uc.repo.CreateSubtask(ctx, repository.CreateSubtaskOptions{
		ID:          uc.newID(),
		TaskID:      input.TaskID,
		UserID:      sc.UserID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
	})
	if err != nil {
		uc.l.Errorf(ctx, "subtask.Add.CreateSubtask: %v", err)
		return model.Subtask{}, err
	}
	return st, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, taskID string) ([]model.Subtask, error) {
	if err := uc.parent(ctx, sc, taskID); err != nil {
		return nil, err
	}
	subtasks, err := uc.repo.ListSubtasks(ctx, repository.ListSubtasksOptions{TaskID: taskID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "subtask.List.ListSubtasks: %v", err)
		return nil, err
	}
	return subtasks, nil
}

// Toggle flips the done flag.
func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope, input subtask.ItemInput) (model.Subtask, error) {
	if err := uc.parent(ctx, sc, input.TaskID); err != nil {
		return model.Subtask{}, err
	}
	st, err := uc.repo.ToggleSubtask(ctx, repository.GetSubtaskOptions{ID: input.ID, TaskID: input.TaskID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "subtask.Toggle.ToggleSubtask: %v", err)
		return model.Subtask{}, err
	}
	if st.ID == "" {
		return model.Subtask{}, subtask.ErrSubtaskNotFound
	}
	return st, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, input subtask.ItemInput) error {
	if err := uc.parent(ctx, sc, input.TaskID); err != nil {
		return err
	}
	deleted, err := uc.repo.DeleteSubtask(ctx, repository.GetSubtaskOptions{ID: input.ID, TaskID: input.TaskID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "subtask.Delete.DeleteSubtask: %v", err)
		return err
	}
	if !deleted {
		return subtask.ErrSubtaskNotFound
	}
	return nil
}
