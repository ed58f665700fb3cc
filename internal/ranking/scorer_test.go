package ranking

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/slotgen"
)

func at(d, h, m int) time.Time {
	return time.Date(2025, 7, d, h, m, 0, 0, time.UTC)
}

func cand(start time.Time, exceeds bool) slotgen.Candidate {
	return slotgen.Candidate{Interval: model.NewInterval(start, time.Hour), ExceedsWorkHours: exceeds}
}

func clock(start, end string) *model.ClockRange {
	return &model.ClockRange{Start: model.MustTimeOfDay(start), End: model.MustTimeOfDay(end)}
}

func TestScoreFocusWindow(t *testing.T) {
	s := NewScorer(DefaultWeights())
	ctx := Context{Anchor: at(23, 0, 0), Preferences: model.Preferences{FocusPeak: clock("14:00", "16:00")}}

	inside := s.Score(cand(at(23, 14, 30), false), ctx)
	near := s.Score(cand(at(23, 13, 0), false), ctx)
	far := s.Score(cand(at(23, 9, 0), false), ctx)

	assert.Greater(t, inside, near)
	assert.Greater(t, near, far)
}

func TestScoreDeadlineBehavior(t *testing.T) {
	s := NewScorer(DefaultWeights())
	deadline := at(28, 0, 0)
	early, late := cand(at(21, 9, 0), false), cand(at(27, 9, 0), false)

	onTime := Context{Anchor: at(21, 0, 0), Deadline: &deadline}
	assert.Greater(t, s.Score(early, onTime), s.Score(late, onTime), "earlier is better by default")

	eager := onTime
	eager.Preferences.DeadlineBehavior = model.DeadlineEarly
	assert.Greater(t, s.Score(late, onTime)-s.Score(late, eager), 0.0, "EARLY charges more per day")

	lastMinute := onTime
	lastMinute.Preferences.DeadlineBehavior = model.DeadlineLastMinute
	assert.Greater(t, s.Score(late, lastMinute), s.Score(early, lastMinute), "LAST_MINUTE favors later slots")

	noDeadline := lastMinute
	noDeadline.Deadline = nil
	assert.Greater(t, s.Score(early, noDeadline), s.Score(late, noDeadline), "no deadline falls back to earlier-first")
}

func TestScoreWorkHoursPenalty(t *testing.T) {
	w := DefaultWeights()
	s := NewScorer(w)
	ctx := Context{Anchor: at(23, 0, 0)}

	inside := s.Score(cand(at(23, 15, 0), false), ctx)
	over := s.Score(cand(at(23, 15, 0), true), ctx)
	assert.InDelta(t, w.WorkHoursPenalty, inside-over, 0.001)

	ctx.Preferences.Flexibility = model.FlexibilityHigh
	relaxed := s.Score(cand(at(23, 15, 0), true), ctx)
	assert.InDelta(t, w.WorkHoursPenalty*w.HighFlexibilityFactor, inside-relaxed, 0.001)
}

func TestScorePreferences(t *testing.T) {
	s := NewScorer(DefaultWeights())
	ctx := Context{
		Anchor:   at(21, 0, 0),
		TaskType: model.TaskTypeTraining,
		Preferences: model.Preferences{
			PreferenceTime:      model.PreferenceEvening,
			PreferredDays:       []time.Weekday{time.Tuesday},
			PreferredDaysByTask: map[model.TaskType][]time.Weekday{model.TaskTypeTraining: {time.Tuesday}},
		},
	}
	// Monday 21st vs Tuesday 22nd, both 18:00.
	monday := s.Score(cand(at(21, 18, 0), false), ctx)
	tuesday := s.Score(cand(at(22, 18, 0), false), ctx)
	assert.Greater(t, tuesday, monday)

	evening := s.Score(cand(at(21, 18, 0), false), ctx)
	morning := s.Score(cand(at(21, 9, 0), false), ctx)
	assert.Greater(t, evening, morning)

	ctx.PreferredTimeOfDay = model.PreferenceMorning
	assert.Greater(t, s.Score(cand(at(21, 9, 0), false), ctx), s.Score(cand(at(21, 18, 0), false), ctx),
		"request time-of-day overrides the stored preference")
}

func TestRankTieBreakChronological(t *testing.T) {
	s := NewScorer(Weights{Base: 10})
	seq := slices.Values([]slotgen.Candidate{
		cand(at(23, 15, 0), false),
		cand(at(23, 9, 0), false),
		cand(at(23, 11, 30), false),
	})

	tests := []struct {
		name   string
		anchor time.Time
	}{
		{name: "anchor before all", anchor: at(23, 0, 0)},
		{name: "anchor between", anchor: at(23, 12, 0)},
		{name: "anchor after all", anchor: at(24, 0, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ranked := s.Rank(seq, Context{Anchor: tc.anchor})
			require.Len(t, ranked, 3)
			assert.Equal(t, at(23, 9, 0), ranked[0].ScheduledStart)
			assert.Equal(t, at(23, 11, 30), ranked[1].ScheduledStart)
			assert.Equal(t, at(23, 15, 0), ranked[2].ScheduledStart)
		})
	}
}

func TestRankDeterministic(t *testing.T) {
	s := NewScorer(DefaultWeights())
	var cands []slotgen.Candidate
	for d := 21; d < 28; d++ {
		for h := 9; h < 17; h++ {
			cands = append(cands, cand(at(d, h, 0), h == 16))
		}
	}
	ctx := Context{Anchor: at(21, 0, 0), Preferences: model.Preferences{FocusPeak: clock("10:00", "12:00")}}

	first := s.Rank(slices.Values(cands), ctx)
	second := s.Rank(slices.Values(cands), ctx)
	assert.Equal(t, first, second)
	for i := 1; i < len(first); i++ {
		assert.GreaterOrEqual(t, first[i-1].Score, first[i].Score)
	}
}
