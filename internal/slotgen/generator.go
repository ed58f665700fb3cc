// Package slotgen enumerates candidate slots for a suggestion query.
package slotgen

import (
	"iter"
	"slices"
	"time"

	"smart-task-scheduler/internal/model"
)

// Availability is the read side of the availability model the generator needs.
type Availability interface {
	BusyIntervals(from, to time.Time) iter.Seq[model.Interval]
}

// Candidate is an eligible slot. ExceedsWorkHours marks slots that run past the
// workday end.
type Candidate struct {
	model.Interval
	ExceedsWorkHours bool
}

// Request is one generator invocation.
type Request struct {
	Constraint  model.SearchConstraint
	Preferences model.Preferences
	Now         time.Time
}

type Generator struct {
	cfg Config
}

func New(cfg Config) *Generator {
	return &Generator{cfg: cfg.normalized()}
}

func (g *Generator) Config() Config { return g.cfg }

// Workday returns the workday bounds in effect for prefs.
func (g *Generator) Workday(prefs model.Preferences) model.ClockRange {
	if prefs.Workday != nil && prefs.Workday.Valid() {
		return *prefs.Workday
	}
	return g.cfg.DefaultWorkday
}

// Candidates yields eligible slots in chronological order. Each call re-derives
// the sequence from its inputs, so ranging over it again gives the same result.
func (g *Generator) Candidates(req Request, busy Availability) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		c := req.Constraint
		win := g.Window(c, req.Now)
		if !win.Valid() || c.DurationMinutes <= 0 {
			return
		}

		duration := time.Duration(c.DurationMinutes) * time.Minute
		workday := g.Workday(req.Preferences)
		if c.DurationMinutes > workday.Minutes() {
			return
		}

		loc := g.cfg.Location
		earliest := req.Now.Add(g.cfg.MinLead)
		allowance := overflowAllowance(req.Preferences.Flexibility)
		allowDaysOff := c.AllowDaysOff || c.LockedDate != nil

		for day := model.StartOfDay(win.Start, loc); day.Before(win.End); day = day.AddDate(0, 0, 1) {
			if !allowDaysOff && req.Preferences.IsDayOff(day.Weekday()) {
				continue
			}

			workStart := workday.Start.On(day)
			workEnd := workday.End.On(day)
			limit := minTime(workEnd.Add(allowance), day.AddDate(0, 0, 1), win.End)
			if !workStart.Before(limit) {
				continue
			}

			var taken []model.Interval
			if busy != nil {
				taken = slices.Collect(busy.BusyIntervals(workStart, limit))
			}
			cursor := 0

			for start := workStart; start.Before(workEnd); start = start.Add(g.cfg.Step) {
				end := start.Add(duration)
				if end.After(limit) {
					break
				}
				if start.Before(win.Start) || start.Before(earliest) {
					continue
				}
				for cursor < len(taken) && !taken[cursor].End.After(start) {
					cursor++
				}
				if cursor < len(taken) && taken[cursor].Start.Before(end) {
					continue
				}
				if !yield(Candidate{
					Interval:         model.Interval{Start: start, End: end},
					ExceedsWorkHours: end.After(workEnd),
				}) {
					return
				}
			}
		}
	}
}

func minTime(first time.Time, rest ...time.Time) time.Time {
	m := first
	for _, t := range rest {
		if t.Before(m) {
			m = t
		}
	}
	return m
}
