package slotgen

import (
	"time"

	"smart-task-scheduler/internal/model"
)

const (
	DefaultStep             = 30 * time.Minute
	DefaultMaxLookaheadDays = 90
	DefaultMinLead          = 30 * time.Minute
)

// Config holds generator settings shared by every request.
type Config struct {
	// Step is the spacing between candidate start times.
	Step time.Duration
	// MaxLookaheadDays bounds the auto strategy.
	MaxLookaheadDays int
	// MinLead is the minimum gap between now and the first candidate start.
	MinLead time.Duration
	// WeekStart is the first day of the week strategy's window.
	WeekStart time.Weekday
	// DefaultWorkday applies when the user has no workday preference.
	DefaultWorkday model.ClockRange
	// Location is the timezone all wall-clock math runs in.
	Location *time.Location
}

func DefaultConfig() Config {
	return Config{
		Step:             DefaultStep,
		MaxLookaheadDays: DefaultMaxLookaheadDays,
		MinLead:          DefaultMinLead,
		WeekStart:        time.Monday,
		DefaultWorkday:   model.ClockRange{Start: model.MustTimeOfDay("09:00"), End: model.MustTimeOfDay("17:00")},
		Location:         time.UTC,
	}
}

func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.Step <= 0 {
		c.Step = def.Step
	}
	if c.MaxLookaheadDays <= 0 {
		c.MaxLookaheadDays = def.MaxLookaheadDays
	}
	if c.MinLead < 0 {
		c.MinLead = 0
	}
	if !c.DefaultWorkday.Valid() {
		c.DefaultWorkday = def.DefaultWorkday
	}
	if c.Location == nil {
		c.Location = def.Location
	}
	return c
}

// overflowAllowance is how far past the workday end a candidate may run.
func overflowAllowance(f model.Flexibility) time.Duration {
	switch f {
	case model.FlexibilityLow:
		return 0
	case model.FlexibilityHigh:
		return 2 * time.Hour
	default:
		return time.Hour
	}
}
