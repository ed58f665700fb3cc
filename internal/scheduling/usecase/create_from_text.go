package usecase

import (
	"context"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/resolver"
	"smart-task-scheduler/internal/scheduling"
	"smart-task-scheduler/internal/task"
)

// CreateFromText commits a complete, free draft. Partial and conflicting
// drafts come back exactly as ParseText would return them.
func (uc *implUseCase) CreateFromText(ctx context.Context, sc model.Scope, input scheduling.ParseTextInput) (scheduling.ParseOutput, error) {
	out, err := uc.evaluate(ctx, sc, input)
	if err != nil || out.Session.State != resolver.StateComplete {
		return out, err
	}

	res, err := uc.tasks.CreateDirect(ctx, sc, task.CreateDirectInput{Draft: out.Session.Draft})
	if err != nil {
		uc.l.Errorf(ctx, "scheduling.usecase.CreateFromText.tasks.CreateDirect: %v", err)
		return scheduling.ParseOutput{}, err
	}

	out.Session, err = settle(out.Session, res)
	if err != nil {
		return scheduling.ParseOutput{}, err
	}
	if res.Committed() {
		t := res.Task
		out.Task = &t
	}
	return out, nil
}
