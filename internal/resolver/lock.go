package resolver

import (
	"time"

	"smart-task-scheduler/internal/model"
)

// anchorDate is the best-known calendar date of a draft.
func anchorDate(d model.TaskDraft, now time.Time, loc *time.Location) time.Time {
	switch {
	case d.BestKnownDate != nil:
		return model.SameDate(*d.BestKnownDate, loc)
	case d.Start != nil:
		return model.StartOfDay(*d.Start, loc)
	case d.WindowStart != nil:
		return model.StartOfDay(*d.WindowStart, loc)
	}
	return model.StartOfDay(now, loc)
}

// BestKnownConstraint is the search a partial draft starts with.
func BestKnownConstraint(d model.TaskDraft, now time.Time, loc *time.Location) model.SearchConstraint {
	c := model.SearchConstraint{
		DurationMinutes:    d.DurationMinutes,
		TaskType:           d.TaskType,
		PreferredTimeOfDay: d.PreferredTimeOfDay,
		Page:               1,
	}
	anchor := anchorDate(d, now, loc)

	switch {
	case d.ExplicitDate && d.BestKnownDate != nil:
		c.Strategy = model.StrategyDay
		c.LockedDate = &anchor
		c.AllowDaysOff = true
	case d.WindowStart != nil || d.WindowEnd != nil:
		c.Strategy = model.StrategyAuto
		c.ReferenceDate = &anchor
		c.WindowStart = d.WindowStart
		c.WindowEnd = d.WindowEnd
	default:
		c.Strategy = model.StrategyAuto
		c.ReferenceDate = &anchor
	}
	return c
}

// LockFor builds the locked constraint for a strategy picked while resolving.
// Duration, task type and time-of-day come from the draft; the date anchor is
// the draft's best-known date.
func LockFor(strategy model.Strategy, d model.TaskDraft, now time.Time, loc *time.Location) model.SearchConstraint {
	anchor := anchorDate(d, now, loc)
	c := model.SearchConstraint{
		DurationMinutes:    d.DurationMinutes,
		TaskType:           d.TaskType,
		PreferredTimeOfDay: d.PreferredTimeOfDay,
		Strategy:           strategy,
		ReferenceDate:      &anchor,
		Page:               1,
	}
	switch strategy {
	case model.StrategyDay:
		c.LockedDate = &anchor
		c.AllowDaysOff = d.ExplicitDate
	case model.StrategyAuto:
		c.WindowStart = d.WindowStart
		c.WindowEnd = d.WindowEnd
	}
	return c
}
