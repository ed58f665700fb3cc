package usecase

import (
	"github.com/google/uuid"

	"smart-task-scheduler/internal/subtask"
	"smart-task-scheduler/internal/subtask/repository"
	"smart-task-scheduler/internal/task"
	"smart-task-scheduler/pkg/log"
)

const maxTitleLen = 200

// implUseCase is the private implementation of subtask.UseCase.
type implUseCase struct {
	l     log.Logger
	repo  repository.Repository
	tasks task.UseCase
	newID func() string
}

// New creates a subtask UseCase. tasks resolves the parent task.
func New(l log.Logger, repo repository.Repository, tasks task.UseCase) subtask.UseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		tasks: tasks,
		newID: uuid.NewString,
	}
}
