package usecase

import (
	"context"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/task"
	"smart-task-scheduler/internal/task/repository"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	if input.Status != "" {
		st, ok := model.ParseStatus(string(input.Status))
		if !ok {
			return task.ListOutput{}, task.ErrInvalidStatus
		}
		input.Status = st
	}
	if input.From != nil && input.To != nil && !input.To.After(*input.From) {
		return task.ListOutput{}, task.ErrInvalidRange
	}
	if input.Limit <= 0 {
		input.Limit = defaultListLimit
	}
	input.Limit = min(input.Limit, maxListLimit)
	input.Offset = max(input.Offset, 0)

	tasks, total, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		UserID: sc.UserID,
		Status: input.Status,
		From:   input.From,
		To:     input.To,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "List.ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, repository.GetTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "Detail.GetTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}
