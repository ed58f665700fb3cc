package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"smart-task-scheduler/internal/availability"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/resolver"
	"smart-task-scheduler/internal/scheduling"
	"smart-task-scheduler/internal/task"
)

// snapshot loads preferences and the busy time inside win concurrently. An
// empty win skips the busy lookup.
func (uc *implUseCase) snapshot(ctx context.Context, sc model.Scope, win model.Interval) (model.Preferences, *availability.Model, error) {
	var (
		prefs model.Preferences
		busy  []availability.Busy
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := uc.prefs.Get(gctx, sc)
		if err != nil {
			return fmt.Errorf("preferences: %w", err)
		}
		prefs = out.Preferences
		return nil
	})
	if win.Valid() {
		g.Go(func() error {
			var err error
			busy, err = uc.tasks.Busy(gctx, sc, task.BusyInput{From: win.Start, To: win.End})
			if err != nil {
				return fmt.Errorf("busy: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.Preferences{}, nil, err
	}
	return prefs, availability.New(busy), nil
}

// suggest runs one search and records it.
func (uc *implUseCase) suggest(ctx context.Context, sc model.Scope, c model.SearchConstraint) (scheduling.SuggestOutput, error) {
	started := time.Now()
	out, err := uc.search(ctx, sc, c)
	uc.metrics.ObserveSuggest(strategyLabel(c.Strategy), suggestStatus(err), out.Page.Total, time.Since(started))
	return out, err
}

func (uc *implUseCase) search(ctx context.Context, sc model.Scope, c model.SearchConstraint) (scheduling.SuggestOutput, error) {
	win, err := uc.engine.SearchWindow(c)
	if err != nil {
		return scheduling.SuggestOutput{}, err
	}

	prefs, snap, err := uc.snapshot(ctx, sc, win)
	if err != nil {
		uc.l.Errorf(ctx, "scheduling.usecase.search.snapshot: %v", err)
		return scheduling.SuggestOutput{}, err
	}

	res, err := uc.engine.Suggest(snap, prefs, c)
	if err != nil {
		return scheduling.SuggestOutput{}, err
	}
	return scheduling.SuggestOutput{Constraint: res.Constraint, Page: res.Page}, nil
}

// settle moves s to COMMITTED or back to RESOLVING depending on res.
func settle(s resolver.Session, res task.CommitResult) (resolver.Session, error) {
	if res.Committed() {
		iv, _ := res.Task.Interval()
		return s.Commit(iv)
	}
	var report model.ConflictReport
	if res.Conflict != nil {
		report = *res.Conflict
	}
	return s.Reject(report)
}

func strategyLabel(s model.Strategy) string {
	st, ok := model.ParseStrategy(string(s))
	if !ok {
		return "unknown"
	}
	return string(st)
}

func suggestStatus(err error) string {
	var ce *resolver.ConstraintError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &ce):
		return "rejected"
	}
	return "error"
}
