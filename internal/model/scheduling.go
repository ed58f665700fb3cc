package model

import (
	"strings"
	"time"
)

// Strategy is the search-window policy of a suggestion query.
type Strategy string

const (
	StrategyDay   Strategy = "day"
	StrategyWeek  Strategy = "week"
	StrategyMonth Strategy = "month"
	StrategyAuto  Strategy = "auto"
)

func ParseStrategy(s string) (Strategy, bool) {
	if s == "" {
		return StrategyAuto, true
	}
	for _, st := range []Strategy{StrategyDay, StrategyWeek, StrategyMonth, StrategyAuto} {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

// SearchConstraint is the explicit, serializable input of one suggestion query.
// Callers thread it unchanged through every page of a resolution session.
type SearchConstraint struct {
	DurationMinutes    int
	TaskType           TaskType
	Strategy           Strategy
	ReferenceDate      *time.Time
	LockedDate         *time.Time
	WindowStart        *time.Time
	WindowEnd          *time.Time
	PreferredTimeOfDay PreferenceTime
	AllowDaysOff       bool
	Page               int
	PageSize           int
}

// WithPage returns a copy of c on page. Locked fields are untouched.
func (c SearchConstraint) WithPage(page int) SearchConstraint {
	c.Page = page
	return c
}

// Suggestion is one ranked candidate slot.
type Suggestion struct {
	ScheduledStart   time.Time
	ScheduledEnd     time.Time
	Score            float64
	ExceedsWorkHours bool
}

// TaskDraft is everything known about a task that is not yet committed.
type TaskDraft struct {
	Title              string
	TaskType           TaskType
	Priority           Priority
	Description        string
	DurationMinutes    int
	Start              *time.Time
	BestKnownDate      *time.Time
	WindowStart        *time.Time
	WindowEnd          *time.Time
	PreferredTimeOfDay PreferenceTime
	ExplicitDate       bool
}

// Interval returns the exact requested interval when a start is known.
func (d TaskDraft) Interval() (Interval, bool) {
	if d.Start == nil || d.DurationMinutes <= 0 {
		return Interval{}, false
	}
	return NewInterval(*d.Start, time.Duration(d.DurationMinutes)*time.Minute), true
}

// ConflictingTask is an existing busy entry that blocks an attempted interval.
type ConflictingTask struct {
	ID       string
	Title    string
	TaskType TaskType
	Source   string
	Start    time.Time
	End      time.Time
}

// ConflictReport carries the attempted task so a resolution flow can re-issue
// a search without losing the original intent.
type ConflictReport struct {
	Attempted TaskDraft
	Conflicts []ConflictingTask
}
