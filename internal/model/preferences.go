package model

import (
	"slices"
	"strings"
	"time"
)

type DeadlineBehavior string

const (
	DeadlineEarly      DeadlineBehavior = "EARLY"
	DeadlineOnTime     DeadlineBehavior = "ON_TIME"
	DeadlineLastMinute DeadlineBehavior = "LAST_MINUTE"
)

func ParseDeadlineBehavior(s string) (DeadlineBehavior, bool) {
	for _, d := range []DeadlineBehavior{DeadlineEarly, DeadlineOnTime, DeadlineLastMinute} {
		if strings.EqualFold(s, string(d)) {
			return d, true
		}
	}
	return "", false
}

type Flexibility string

const (
	FlexibilityLow    Flexibility = "LOW"
	FlexibilityMedium Flexibility = "MEDIUM"
	FlexibilityHigh   Flexibility = "HIGH"
)

func ParseFlexibility(s string) (Flexibility, bool) {
	for _, f := range []Flexibility{FlexibilityLow, FlexibilityMedium, FlexibilityHigh} {
		if strings.EqualFold(s, string(f)) {
			return f, true
		}
	}
	return "", false
}

// PreferenceTime is the part of day a user or request leans towards.
type PreferenceTime string

const (
	PreferenceMorning   PreferenceTime = "Morning"
	PreferenceAfternoon PreferenceTime = "Afternoon"
	PreferenceEvening   PreferenceTime = "Evening"
	PreferenceNone      PreferenceTime = "No preference"
)

func ParsePreferenceTime(s string) (PreferenceTime, bool) {
	if strings.TrimSpace(s) == "" {
		return PreferenceNone, true
	}
	for _, p := range []PreferenceTime{PreferenceMorning, PreferenceAfternoon, PreferenceEvening, PreferenceNone} {
		if strings.EqualFold(s, string(p)) {
			return p, true
		}
	}
	return "", false
}

// Range returns the wall-clock window the preference covers.
func (p PreferenceTime) Range() (ClockRange, bool) {
	switch p {
	case PreferenceMorning:
		return ClockRange{Start: 5 * 60, End: 12 * 60}, true
	case PreferenceAfternoon:
		return ClockRange{Start: 12 * 60, End: 17 * 60}, true
	case PreferenceEvening:
		return ClockRange{Start: 17 * 60, End: 22 * 60}, true
	}
	return ClockRange{}, false
}

// ParseWeekday accepts English day names ("Sunday", "mon").
func ParseWeekday(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 3 {
		return 0, false
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.HasPrefix(strings.ToLower(d.String()), s) {
			return d, true
		}
	}
	return 0, false
}

// Preferences are a user's one-time onboarding answers. Days off are weekday
// indices with 0 = Sunday.
type Preferences struct {
	UserID                 string
	Workday                *ClockRange
	FocusPeak              *ClockRange
	DaysOff                []int
	DefaultDurationMinutes int
	DeadlineBehavior       DeadlineBehavior
	Flexibility            Flexibility
	PreferenceTime         PreferenceTime
	PreferredDays          []time.Weekday
	PreferredDaysByTask    map[TaskType][]time.Weekday
	CreatedAt              time.Time
}

func (p Preferences) IsDayOff(d time.Weekday) bool {
	return slices.Contains(p.DaysOff, int(d))
}

// PrefersDay reports whether d is among the general preferred days and among
// the preferred days for taskType.
func (p Preferences) PrefersDay(taskType TaskType, d time.Weekday) (general, forTask bool) {
	general = slices.Contains(p.PreferredDays, d)
	if days, ok := p.PreferredDaysByTask[taskType]; ok {
		forTask = slices.Contains(days, d)
	}
	return general, forTask
}

// DurationOrDefault returns the configured default task duration.
func (p Preferences) DurationOrDefault() int {
	if p.DefaultDurationMinutes > 0 {
		return p.DefaultDurationMinutes
	}
	return DefaultDurationMinutes
}
