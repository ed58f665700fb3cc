package usecase

import (
	"context"
	"errors"

	"smart-task-scheduler/internal/availability"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/parser"
	"smart-task-scheduler/internal/resolver"
	"smart-task-scheduler/internal/scheduling"
	"smart-task-scheduler/internal/task"
)

// ParseText parses the text and classifies the draft without committing.
func (uc *implUseCase) ParseText(ctx context.Context, sc model.Scope, input scheduling.ParseTextInput) (scheduling.ParseOutput, error) {
	return uc.evaluate(ctx, sc, input)
}

// evaluate runs the session from IDLE to COMPLETE, PARTIAL or CONFLICT. A
// partial draft also gets its first page of suggestions.
func (uc *implUseCase) evaluate(ctx context.Context, sc model.Scope, input scheduling.ParseTextInput) (scheduling.ParseOutput, error) {
	prefs, err := uc.prefs.Get(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "scheduling.usecase.evaluate.prefs.Get: %v", err)
		return scheduling.ParseOutput{}, err
	}

	parsed, err := uc.parser.Parse(input.Text, prefs.Preferences)
	if err != nil {
		if errors.Is(err, parser.ErrEmptyText) {
			return scheduling.ParseOutput{}, scheduling.ErrTextRequired
		}
		return scheduling.ParseOutput{}, err
	}

	s, err := resolver.NewSession().Begin(parsed.Draft)
	if err != nil {
		return scheduling.ParseOutput{}, err
	}

	var snap *availability.Model
	if iv, ok := parsed.Draft.Interval(); ok {
		busy, err := uc.tasks.Busy(ctx, sc, task.BusyInput{From: iv.Start, To: iv.End})
		if err != nil {
			uc.l.Errorf(ctx, "scheduling.usecase.evaluate.tasks.Busy: %v", err)
			return scheduling.ParseOutput{}, err
		}
		snap = availability.New(busy)
	}

	s, err = s.Classify(uc.engine.Classify(parsed.Draft, snap))
	if err != nil {
		return scheduling.ParseOutput{}, err
	}
	out := scheduling.ParseOutput{Session: s, Missing: parsed.Missing}

	if s.State == resolver.StatePartial {
		c := *s.Constraint
		if input.Page > 0 {
			c = c.WithPage(input.Page)
		}
		if input.PageSize > 0 {
			c.PageSize = input.PageSize
		}
		res, err := uc.suggest(ctx, sc, c)
		if err != nil {
			return scheduling.ParseOutput{}, err
		}
		out.Session.Constraint = &res.Constraint
		out.Suggestions = &res
	}

	uc.l.Debugf(ctx, "scheduling.usecase.evaluate: state=%s missing=%v", s.State, parsed.Missing)
	return out, nil
}
