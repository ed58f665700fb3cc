package usecase

import (
	"context"
	"fmt"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/resolver"
	"smart-task-scheduler/internal/scheduling"
)

// Resolve locks a constraint for the chosen strategy, or pages through the
// constraint the client echoed back, and returns the matching page.
func (uc *implUseCase) Resolve(ctx context.Context, sc model.Scope, input scheduling.ResolveInput) (scheduling.ResolveOutput, error) {
	s := resolver.Resume(input.Draft, input.Constraint)

	var err error
	switch {
	case input.Constraint == nil:
		strategy, ok := model.ParseStrategy(string(input.Strategy))
		if !ok {
			return scheduling.ResolveOutput{}, resolver.NewValidationError("strategy", "day|week|month|auto",
				fmt.Sprintf("unknown strategy %q", input.Strategy))
		}
		s, err = s.SelectStrategy(strategy, uc.engine.Now(), uc.engine.Location())
	case input.Navigate == scheduling.NavigateNext:
		s, err = s.NextPage()
	case input.Navigate == scheduling.NavigatePrev:
		s, err = s.PrevPage()
	case input.Navigate != "":
		return scheduling.ResolveOutput{}, scheduling.ErrInvalidNavigate
	}
	if err != nil {
		return scheduling.ResolveOutput{}, err
	}

	c := *s.Constraint
	if input.Page > 0 && input.Navigate == "" {
		c = c.WithPage(input.Page)
	}
	if input.PageSize > 0 {
		c.PageSize = input.PageSize
	}

	res, err := uc.suggest(ctx, sc, c)
	if err != nil {
		uc.l.Warnf(ctx, "scheduling.usecase.Resolve: %v", err)
		return scheduling.ResolveOutput{}, err
	}
	s.Constraint = &res.Constraint
	return scheduling.ResolveOutput{Session: s, Suggestions: res}, nil
}
