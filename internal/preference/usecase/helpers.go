package usecase

import (
	"slices"
	"strings"
	"time"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/preference"
)

const maxDurationMinutes = 24 * 60

func invalid(field string, err error) error {
	return &preference.FieldError{Field: field, Err: err}
}

// toPreferences validates the raw onboarding answers.
func toPreferences(in preference.SetInput) (model.Preferences, error) {
	var p model.Preferences

	workday, err := clockRange(in.WorkdayStart, in.WorkdayEnd, "workdayPrefStart", "workdayPrefEnd", preference.ErrInvalidWorkday)
	if err != nil {
		return p, err
	}
	p.Workday = workday

	focus, err := clockRange(in.FocusStart, in.FocusEnd, "focusPeakStart", "focusPeakEnd", preference.ErrInvalidFocus)
	if err != nil {
		return p, err
	}
	p.FocusPeak = focus

	for _, d := range in.DaysOff {
		if d < 0 || d > 6 {
			return p, invalid("daysOff", preference.ErrInvalidDaysOff)
		}
		if !slices.Contains(p.DaysOff, d) {
			p.DaysOff = append(p.DaysOff, d)
		}
	}
	slices.Sort(p.DaysOff)

	if in.DefaultDurationMinutes < 0 || in.DefaultDurationMinutes > maxDurationMinutes {
		return p, invalid("defaultDurationMinutes", preference.ErrInvalidDuration)
	}
	p.DefaultDurationMinutes = in.DefaultDurationMinutes

	if in.DeadlineBehavior != "" {
		db, ok := model.ParseDeadlineBehavior(in.DeadlineBehavior)
		if !ok {
			return p, invalid("deadlineBehavior", preference.ErrInvalidDeadlineBehavior)
		}
		p.DeadlineBehavior = db
	}
	if in.Flexibility != "" {
		f, ok := model.ParseFlexibility(in.Flexibility)
		if !ok {
			return p, invalid("flexibility", preference.ErrInvalidFlexibility)
		}
		p.Flexibility = f
	}
	pt, ok := model.ParsePreferenceTime(in.PreferenceTime)
	if !ok {
		return p, invalid("preferenceTime", preference.ErrInvalidPreferenceTime)
	}
	p.PreferenceTime = pt

	if p.PreferredDays, err = weekdays(in.PreferredDays, "preferredDays"); err != nil {
		return p, err
	}

	if len(in.PreferredDaysByTask) > 0 {
		p.PreferredDaysByTask = make(map[model.TaskType][]time.Weekday, len(in.PreferredDaysByTask))
		for name, days := range in.PreferredDaysByTask {
			tt, ok := model.ParseTaskType(name)
			if !ok {
				return p, invalid("preferredDaysByTask", preference.ErrInvalidTaskType)
			}
			wds, err := weekdays(days, "preferredDaysByTask")
			if err != nil {
				return p, err
			}
			p.PreferredDaysByTask[tt] = wds
		}
	}
	return p, nil
}

// clockRange parses an optional start/end pair. Both or neither must be set.
func clockRange(start, end, startField, endField string, orderErr error) (*model.ClockRange, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" {
		return nil, invalid(startField, preference.ErrIncompleteRange)
	}
	if end == "" {
		return nil, invalid(endField, preference.ErrIncompleteRange)
	}
	s, err := model.ParseTimeOfDay(start)
	if err != nil {
		return nil, invalid(startField, preference.ErrInvalidTime)
	}
	e, err := model.ParseTimeOfDay(end)
	if err != nil {
		return nil, invalid(endField, preference.ErrInvalidTime)
	}
	r := model.ClockRange{Start: s, End: e}
	if !r.Valid() {
		return nil, invalid(endField, orderErr)
	}
	return &r, nil
}

func weekdays(names []string, field string) ([]time.Weekday, error) {
	var out []time.Weekday
	for _, n := range names {
		d, ok := model.ParseWeekday(n)
		if !ok {
			return nil, invalid(field, preference.ErrInvalidWeekday)
		}
		if !slices.Contains(out, d) {
			out = append(out, d)
		}
	}
	slices.Sort(out)
	return out, nil
}
