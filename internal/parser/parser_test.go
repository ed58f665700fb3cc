package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/pkg/datemath"
)

func at(d, h, m int) time.Time {
	return time.Date(2025, 7, d, h, m, 0, 0, time.UTC)
}

func newParser() *Parser {
	return New(datemath.NewParserIn(time.UTC), time.Monday, func() time.Time { return at(20, 8, 0) })
}

func TestParseComplete(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		title    string
		start    time.Time
		duration int
		taskType model.TaskType
		priority model.Priority
		part     model.PreferenceTime
	}{
		{
			name:     "relative date with time and duration",
			text:     "Team meeting tomorrow at 3pm for 45 minutes",
			title:    "Team meeting",
			start:    at(21, 15, 0),
			duration: 45,
			taskType: model.TaskTypeMeeting,
			priority: model.PriorityMedium,
			part:     model.PreferenceAfternoon,
		},
		{
			name:     "iso date with time range",
			text:     "Study for exam on 2025-07-23 6:00 pm - 8:30 pm",
			title:    "Study for exam",
			start:    at(23, 18, 0),
			duration: 150,
			taskType: model.TaskTypeStudies,
			priority: model.PriorityMedium,
			part:     model.PreferenceEvening,
		},
		{
			name:     "weekday with part of day",
			text:     "urgent call at 9 in the morning on friday",
			title:    "Urgent call",
			start:    at(25, 9, 0),
			duration: model.DefaultDurationMinutes,
			taskType: model.TaskTypeMeeting,
			priority: model.PriorityHigh,
			part:     model.PreferenceMorning,
		},
		{
			name:     "short duration and bare hour",
			text:     "gym 2h tomorrow at 7",
			title:    "Gym",
			start:    at(21, 19, 0),
			duration: 120,
			taskType: model.TaskTypeTraining,
			priority: model.PriorityMedium,
			part:     model.PreferenceEvening,
		},
	}

	p := newParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := p.Parse(tt.text, model.Preferences{})
			require.NoError(t, err)
			assert.Equal(t, StatusComplete, res.Status)
			require.NotNil(t, res.Draft.Start)
			assert.Equal(t, tt.start, *res.Draft.Start)
			assert.Equal(t, tt.title, res.Draft.Title)
			assert.Equal(t, tt.duration, res.Draft.DurationMinutes)
			assert.Equal(t, tt.taskType, res.Draft.TaskType)
			assert.Equal(t, tt.priority, res.Draft.Priority)
			assert.Equal(t, tt.part, res.Draft.PreferredTimeOfDay)
			assert.True(t, res.Draft.ExplicitDate)
		})
	}
}

func TestParsePartial(t *testing.T) {
	p := newParser()

	t.Run("vague window", func(t *testing.T) {
		res, err := p.Parse("Gym session next week", model.Preferences{DefaultDurationMinutes: 45})
		require.NoError(t, err)
		assert.Equal(t, StatusPartial, res.Status)
		assert.Equal(t, "Gym session", res.Draft.Title)
		assert.Equal(t, model.TaskTypeTraining, res.Draft.TaskType)
		assert.Equal(t, 45, res.Draft.DurationMinutes)
		assert.False(t, res.Draft.ExplicitDate)
		// On a Sunday, next week is the one starting tomorrow.
		require.NotNil(t, res.Draft.WindowStart)
		assert.Equal(t, at(21, 0, 0), *res.Draft.WindowStart)
		assert.Equal(t, at(28, 0, 0), *res.Draft.WindowEnd)
		assert.ElementsMatch(t, []string{FieldDate, FieldTime, FieldDuration}, res.Missing)
	})

	t.Run("window with part of day", func(t *testing.T) {
		res, err := p.Parse("reading group later this month in the evening", model.Preferences{})
		require.NoError(t, err)
		assert.Equal(t, "Reading group", res.Draft.Title)
		assert.Equal(t, model.TaskTypeStudies, res.Draft.TaskType)
		assert.Equal(t, model.PreferenceEvening, res.Draft.PreferredTimeOfDay)
		require.NotNil(t, res.Draft.WindowStart)
		assert.Equal(t, at(21, 0, 0), *res.Draft.WindowStart)
	})

	t.Run("time only", func(t *testing.T) {
		res, err := p.Parse("standup at 10", model.Preferences{})
		require.NoError(t, err)
		assert.Equal(t, StatusPartial, res.Status)
		assert.Nil(t, res.Draft.Start)
		assert.Nil(t, res.Draft.BestKnownDate)
		assert.Equal(t, model.PreferenceMorning, res.Draft.PreferredTimeOfDay)
		assert.Contains(t, res.Missing, FieldDate)
		assert.NotContains(t, res.Missing, FieldTime)
	})

	t.Run("date only", func(t *testing.T) {
		res, err := p.Parse("dentist on Jul 30th for an hour", model.Preferences{})
		require.NoError(t, err)
		assert.Equal(t, StatusPartial, res.Status)
		require.NotNil(t, res.Draft.BestKnownDate)
		assert.Equal(t, at(30, 0, 0), *res.Draft.BestKnownDate)
		assert.True(t, res.Draft.ExplicitDate)
		assert.Equal(t, 60, res.Draft.DurationMinutes)
		assert.Equal(t, []string{FieldTime}, res.Missing)
		assert.Equal(t, "Dentist", res.Draft.Title)
	})
}

func TestParseEmpty(t *testing.T) {
	_, err := newParser().Parse("   ", model.Preferences{})
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestTimeRangeRejectsBareNumbers(t *testing.T) {
	_, ok := matchTimeRange("read chapters 2 to 3")
	assert.False(t, ok)

	tm, ok := matchTimeRange("lunch 11 - 1pm")
	require.True(t, ok)
	assert.Equal(t, model.MustTimeOfDay("11:00"), tm.start)
	assert.Equal(t, 120, tm.duration)
}
