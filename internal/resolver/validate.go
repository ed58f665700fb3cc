package resolver

import (
	"fmt"

	"smart-task-scheduler/internal/model"
)

const (
	DefaultPageSize    = 3
	DefaultMaxPageSize = 50
	DefaultMaxPage     = 1000
	MaxDurationMinutes = 24 * 60
)

// Limits bound the pagination and duration fields of a constraint.
type Limits struct {
	DefaultPageSize int
	MaxPageSize     int
	MaxPage         int
}

func DefaultLimits() Limits {
	return Limits{DefaultPageSize: DefaultPageSize, MaxPageSize: DefaultMaxPageSize, MaxPage: DefaultMaxPage}
}

func (l Limits) normalized() Limits {
	if l.DefaultPageSize <= 0 {
		l.DefaultPageSize = DefaultPageSize
	}
	if l.MaxPageSize <= 0 {
		l.MaxPageSize = DefaultMaxPageSize
	}
	if l.MaxPageSize < l.DefaultPageSize {
		l.MaxPageSize = l.DefaultPageSize
	}
	if l.MaxPage <= 0 {
		l.MaxPage = DefaultMaxPage
	}
	return l
}

// Validate rejects malformed constraints and fills pagination and strategy
// defaults. It never invents a lockedDate.
func Validate(c model.SearchConstraint, limits Limits) (model.SearchConstraint, error) {
	limits = limits.normalized()

	strategy, ok := model.ParseStrategy(string(c.Strategy))
	if !ok {
		return c, NewValidationError("strategy", "day|week|month|auto", fmt.Sprintf("unknown strategy %q", c.Strategy))
	}
	c.Strategy = strategy

	if c.TaskType != "" {
		tt, ok := model.ParseTaskType(string(c.TaskType))
		if !ok {
			return c, NewValidationError("taskType", "Meeting|Training|Studies", fmt.Sprintf("unknown task type %q", c.TaskType))
		}
		c.TaskType = tt
	}

	if c.PreferredTimeOfDay != "" {
		pt, ok := model.ParsePreferenceTime(string(c.PreferredTimeOfDay))
		if !ok {
			return c, NewValidationError("preferredTimeOfDay", "Morning|Afternoon|Evening", fmt.Sprintf("unknown time of day %q", c.PreferredTimeOfDay))
		}
		c.PreferredTimeOfDay = pt
	}

	if c.DurationMinutes < 0 || c.DurationMinutes > MaxDurationMinutes {
		return c, NewValidationError("durationMinutes", fmt.Sprintf("integer between 1 and %d", MaxDurationMinutes), "duration out of range")
	}

	switch {
	case c.Page < 0:
		return c, NewValidationError("page", "integer >= 1", "page must be positive")
	case c.Page == 0:
		c.Page = 1
	case c.Page > limits.MaxPage:
		return c, NewValidationError("page", fmt.Sprintf("integer <= %d", limits.MaxPage), "page too large")
	}

	switch {
	case c.PageSize < 0 || c.PageSize > limits.MaxPageSize:
		return c, NewValidationError("pageSize", fmt.Sprintf("integer between 1 and %d", limits.MaxPageSize), "page size out of range")
	case c.PageSize == 0:
		c.PageSize = limits.DefaultPageSize
	}

	if c.WindowStart != nil && c.WindowEnd != nil && !c.WindowEnd.After(*c.WindowStart) {
		return c, NewValidationError("windowEnd", "datetime after windowStart", "empty search window")
	}

	if c.Strategy == model.StrategyDay && c.LockedDate == nil {
		if c.Page > 1 {
			return c, &ConstraintError{
				Kind:     KindConstraintViolation,
				Code:     CodePaginationConstraintViolation,
				Field:    "lockedDate",
				Expected: "YYYY-MM-DD",
				Message:  "day strategy pagination requires the lockedDate of page 1",
			}
		}
		return c, NewValidationError("lockedDate", "YYYY-MM-DD", "day strategy requires lockedDate")
	}

	return c, nil
}
