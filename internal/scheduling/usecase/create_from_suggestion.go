package usecase

import (
	"context"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/resolver"
	"smart-task-scheduler/internal/scheduling"
	"smart-task-scheduler/internal/task"
)

// CreateFromSuggestion commits the picked slot. The task usecase re-checks the
// slot under the user's commit lock, so a slot taken since it was suggested
// comes back as a conflict and the session returns to RESOLVING.
func (uc *implUseCase) CreateFromSuggestion(ctx context.Context, sc model.Scope, input task.CreateFromSuggestionInput) (scheduling.CreateFromSuggestionOutput, error) {
	if input.Start.IsZero() {
		return scheduling.CreateFromSuggestionOutput{}, task.ErrStartRequired
	}
	if !input.End.After(input.Start) {
		return scheduling.CreateFromSuggestionOutput{}, task.ErrInvalidInterval
	}

	s, err := resolver.Resume(input.Draft, nil).Select(model.Interval{Start: input.Start, End: input.End})
	if err != nil {
		return scheduling.CreateFromSuggestionOutput{}, err
	}

	res, err := uc.tasks.CreateFromSuggestion(ctx, sc, input)
	if err != nil {
		uc.l.Errorf(ctx, "scheduling.usecase.CreateFromSuggestion.tasks.CreateFromSuggestion: %v", err)
		return scheduling.CreateFromSuggestionOutput{}, err
	}

	s, err = settle(s, res)
	if err != nil {
		return scheduling.CreateFromSuggestionOutput{}, err
	}
	return scheduling.CreateFromSuggestionOutput{Session: s, Result: res}, nil
}
