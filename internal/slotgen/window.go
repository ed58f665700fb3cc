package slotgen

import (
	"time"

	"smart-task-scheduler/internal/model"
)

// Window returns the search range implied by the constraint's strategy,
// intersected with lockedDate and windowStart/windowEnd when present. The
// result is empty (not Valid) when the intersection is empty or a day search
// has no locked date.
func (g *Generator) Window(c model.SearchConstraint, now time.Time) model.Interval {
	loc := g.cfg.Location
	ref := model.StartOfDay(now, loc)
	if c.ReferenceDate != nil {
		ref = model.SameDate(*c.ReferenceDate, loc)
	}

	var win model.Interval
	switch c.Strategy {
	case model.StrategyDay:
		if c.LockedDate == nil {
			return model.Interval{}
		}
		day := model.SameDate(*c.LockedDate, loc)
		win = model.Interval{Start: day, End: day.AddDate(0, 0, 1)}
	case model.StrategyWeek:
		start := g.weekStart(ref)
		win = model.Interval{Start: start, End: start.AddDate(0, 0, 7)}
	case model.StrategyMonth:
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc)
		win = model.Interval{Start: start, End: start.AddDate(0, 1, 0)}
	default:
		win = model.Interval{Start: ref, End: ref.AddDate(0, 0, g.cfg.MaxLookaheadDays)}
	}

	if c.LockedDate != nil {
		day := model.SameDate(*c.LockedDate, loc)
		win = intersect(win, model.Interval{Start: day, End: day.AddDate(0, 0, 1)})
	}
	if c.WindowStart != nil && c.WindowStart.After(win.Start) {
		win.Start = *c.WindowStart
	}
	if c.WindowEnd != nil && c.WindowEnd.Before(win.End) {
		win.End = *c.WindowEnd
	}
	return win
}

func (g *Generator) weekStart(ref time.Time) time.Time {
	back := (int(ref.Weekday()) - int(g.cfg.WeekStart) + 7) % 7
	return ref.AddDate(0, 0, -back)
}

func intersect(a, b model.Interval) model.Interval {
	if b.Start.After(a.Start) {
		a.Start = b.Start
	}
	if b.End.Before(a.End) {
		a.End = b.End
	}
	return a
}
