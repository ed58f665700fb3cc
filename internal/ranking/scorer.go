// Package ranking scores candidate slots and pages through the ranked result.
package ranking

import (
	"iter"
	"math"
	"slices"
	"time"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/slotgen"
)

// Context is the per-request scoring input.
type Context struct {
	Preferences        model.Preferences
	TaskType           model.TaskType
	PreferredTimeOfDay model.PreferenceTime
	// Anchor is the lockedDate or referenceDate the search is centred on.
	Anchor time.Time
	// Deadline is the latest acceptable end, when the search has one.
	Deadline *time.Time
}

type Scorer struct {
	w Weights
}

func NewScorer(w Weights) *Scorer {
	return &Scorer{w: w}
}

// Score returns the candidate's score rounded to two decimals.
func (s *Scorer) Score(c slotgen.Candidate, ctx Context) float64 {
	w := s.w
	prefs := ctx.Preferences
	score := w.Base
	startTOD := model.TimeOfDayOf(c.Start)

	if fp := prefs.FocusPeak; fp != nil && fp.Valid() {
		if fp.Includes(startTOD) {
			score += w.FocusWindow
		} else if w.FocusFalloffMinutes > 0 {
			dist := math.Min(math.Abs(float64(startTOD-fp.Start)), math.Abs(float64(startTOD-fp.End)))
			score += w.FocusProximity * math.Max(0, 1-dist/w.FocusFalloffMinutes)
		}
	}

	score += s.proximity(c, ctx)

	pt := ctx.PreferredTimeOfDay
	if pt == "" || pt == model.PreferenceNone {
		pt = prefs.PreferenceTime
	}
	if r, ok := pt.Range(); ok && r.Includes(startTOD) {
		score += w.PreferenceTime
	}

	general, forTask := prefs.PrefersDay(ctx.TaskType, c.Start.Weekday())
	if general {
		score += w.PreferredDay
	}
	if forTask {
		score += w.PreferredTaskDay
	}

	if c.ExceedsWorkHours {
		penalty := w.WorkHoursPenalty
		if prefs.Flexibility == model.FlexibilityHigh {
			penalty *= w.HighFlexibilityFactor
		}
		score -= penalty
	}

	return math.Round(score*100) / 100
}

func (s *Scorer) proximity(c slotgen.Candidate, ctx Context) float64 {
	w := s.w
	if ctx.Preferences.DeadlineBehavior == model.DeadlineLastMinute && ctx.Deadline != nil {
		days := ctx.Deadline.Sub(c.End).Hours() / 24
		return -math.Min(w.ProximityCap, w.ProximityPerDay*math.Max(0, days))
	}

	days := math.Abs(c.Start.Sub(ctx.Anchor).Hours()) / 24
	perDay := w.ProximityPerDay
	if ctx.Preferences.DeadlineBehavior == model.DeadlineEarly {
		perDay *= w.EarlyMultiplier
	}
	return -math.Min(w.ProximityCap, perDay*days)
}

// Rank scores every candidate and orders them by score (descending), then
// start (ascending). Candidates share one duration, so equal starts are the
// same slot.
func (s *Scorer) Rank(candidates iter.Seq[slotgen.Candidate], ctx Context) []model.Suggestion {
	var out []model.Suggestion
	for c := range candidates {
		out = append(out, model.Suggestion{
			ScheduledStart:   c.Start,
			ScheduledEnd:     c.End,
			Score:            s.Score(c, ctx),
			ExceedsWorkHours: c.ExceedsWorkHours,
		})
	}
	slices.SortStableFunc(out, func(a, b model.Suggestion) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return a.ScheduledStart.Compare(b.ScheduledStart)
	})
	return out
}
