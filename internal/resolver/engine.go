// Package resolver validates suggestion queries, classifies creation attempts
// and drives the resolution flow that follows a partial or conflicting one.
package resolver

import (
	"time"

	"smart-task-scheduler/internal/availability"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/ranking"
	"smart-task-scheduler/internal/slotgen"
)

// Result is one page of suggestions plus the normalized constraint that
// produced it. Callers echo Constraint back to fetch the next page.
type Result struct {
	Constraint model.SearchConstraint
	Page       ranking.Page
}

type Engine struct {
	gen    *slotgen.Generator
	scorer *ranking.Scorer
	limits Limits
	now    func() time.Time
}

// NewEngine wires the generator and scorer. now defaults to time.Now.
func NewEngine(gen *slotgen.Generator, scorer *ranking.Scorer, limits Limits, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{gen: gen, scorer: scorer, limits: limits.normalized(), now: now}
}

func (e *Engine) Now() time.Time { return e.now().In(e.Location()) }

func (e *Engine) Location() *time.Location { return e.gen.Config().Location }

func (e *Engine) Limits() Limits { return e.limits }

// SearchWindow validates c and returns the range Suggest will search. The
// range is empty when nothing can match.
func (e *Engine) SearchWindow(c model.SearchConstraint) (model.Interval, error) {
	c, err := Validate(c, e.limits)
	if err != nil {
		return model.Interval{}, err
	}
	return e.gen.Window(c, e.Now()), nil
}

// Suggest returns one page of ranked suggestions for c against snap.
func (e *Engine) Suggest(snap *availability.Model, prefs model.Preferences, c model.SearchConstraint) (Result, error) {
	c, err := Validate(c, e.limits)
	if err != nil {
		return Result{}, err
	}
	if c.DurationMinutes == 0 {
		c.DurationMinutes = prefs.DurationOrDefault()
	}

	now := e.Now()
	candidates := e.gen.Candidates(slotgen.Request{Constraint: c, Preferences: prefs, Now: now}, snap)
	ranked := e.scorer.Rank(candidates, e.scoringContext(c, prefs, now))
	return Result{Constraint: c, Page: ranking.Paginate(ranked, c.Page, c.PageSize)}, nil
}

func (e *Engine) scoringContext(c model.SearchConstraint, prefs model.Preferences, now time.Time) ranking.Context {
	loc := e.Location()
	anchor := model.StartOfDay(now, loc)
	switch {
	case c.LockedDate != nil:
		anchor = model.SameDate(*c.LockedDate, loc)
	case c.ReferenceDate != nil:
		anchor = model.SameDate(*c.ReferenceDate, loc)
	}

	ctx := ranking.Context{
		Preferences:        prefs,
		TaskType:           c.TaskType,
		PreferredTimeOfDay: c.PreferredTimeOfDay,
		Anchor:             anchor,
	}
	switch {
	case c.WindowEnd != nil:
		end := *c.WindowEnd
		ctx.Deadline = &end
	case c.Strategy != model.StrategyAuto:
		if win := e.gen.Window(c, now); win.Valid() {
			ctx.Deadline = &win.End
		}
	}
	return ctx
}

// Classify decides whether a draft can be committed as is.
func (e *Engine) Classify(draft model.TaskDraft, snap *availability.Model) Outcome {
	iv, ok := draft.Interval()
	if !ok {
		return Partial{Draft: draft, Constraint: BestKnownConstraint(draft, e.Now(), e.Location())}
	}
	if busy := snap.Conflicts(iv.Start, iv.End); len(busy) > 0 {
		return Conflict{Report: NewConflictReport(draft, busy)}
	}
	return Complete{Draft: draft, Interval: iv}
}

// NewConflictReport lists the busy entries that block draft.
func NewConflictReport(draft model.TaskDraft, busy []availability.Busy) model.ConflictReport {
	r := model.ConflictReport{Attempted: draft, Conflicts: make([]model.ConflictingTask, 0, len(busy))}
	for _, b := range busy {
		r.Conflicts = append(r.Conflicts, model.ConflictingTask{
			ID:       b.ID,
			Title:    b.Title,
			TaskType: b.TaskType,
			Source:   string(b.Source),
			Start:    b.Interval.Start,
			End:      b.Interval.End,
		})
	}
	return r
}
