package usecase

import (
	"context"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/scheduling"
)

// Suggest returns one ranked page for input.Constraint. Nothing is written.
func (uc *implUseCase) Suggest(ctx context.Context, sc model.Scope, input scheduling.SuggestInput) (scheduling.SuggestOutput, error) {
	out, err := uc.suggest(ctx, sc, input.Constraint)
	if err != nil {
		uc.l.Warnf(ctx, "scheduling.usecase.Suggest: %v", err)
		return scheduling.SuggestOutput{}, err
	}

	uc.l.Debugf(ctx, "scheduling.usecase.Suggest: strategy=%s page=%d returned=%d total=%d",
		out.Constraint.Strategy, out.Page.Page, len(out.Page.Suggestions), out.Page.Total)
	return out, nil
}
