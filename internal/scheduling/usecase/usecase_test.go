package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/resolver"
	"smart-task-scheduler/internal/scheduling"
	"smart-task-scheduler/internal/task"
)

func TestSuggestExcludesBusySlot(t *testing.T) {
	f := newFixture(t)
	f.standup(t)

	out, err := f.uc.Suggest(context.Background(), testScope, scheduling.SuggestInput{Constraint: model.SearchConstraint{
		DurationMinutes: 60,
		Strategy:        model.StrategyDay,
		LockedDate:      ptr(at(23, 0, 0)),
		PageSize:        50,
	}})
	require.NoError(t, err)

	got := starts(out.Page.Suggestions)
	assert.Contains(t, got, at(23, 9, 0))
	assert.Contains(t, got, at(23, 11, 0))
	assert.NotContains(t, got, at(23, 10, 0))
	assert.NotContains(t, got, at(23, 9, 30))
	assert.Equal(t, model.StrategyDay, out.Constraint.Strategy)
}

func TestSuggestIsDeterministic(t *testing.T) {
	f := newFixture(t)
	f.standup(t)
	in := scheduling.SuggestInput{Constraint: model.SearchConstraint{DurationMinutes: 30, Strategy: model.StrategyWeek}}

	first, err := f.uc.Suggest(context.Background(), testScope, in)
	require.NoError(t, err)
	second, err := f.uc.Suggest(context.Background(), testScope, in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSuggestDayPaginationNeedsLockedDate(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Suggest(context.Background(), testScope, scheduling.SuggestInput{Constraint: model.SearchConstraint{
		Strategy: model.StrategyDay,
		Page:     2,
	}})
	var ce *resolver.ConstraintError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, resolver.CodePaginationConstraintViolation, ce.Code)

	_, err = f.uc.Suggest(context.Background(), testScope, scheduling.SuggestInput{Constraint: model.SearchConstraint{
		Strategy:   model.StrategyDay,
		LockedDate: ptr(at(23, 0, 0)),
		Page:       2,
	}})
	assert.NoError(t, err)
}

func TestSuggestPastLastPageIsEmpty(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Suggest(context.Background(), testScope, scheduling.SuggestInput{Constraint: model.SearchConstraint{
		DurationMinutes: 60,
		Strategy:        model.StrategyDay,
		LockedDate:      ptr(at(23, 0, 0)),
		Page:            500,
	}})
	require.NoError(t, err)
	assert.Empty(t, out.Page.Suggestions)
	assert.False(t, out.Page.HasMorePages)
}

func TestConflictThenResolveByDay(t *testing.T) {
	f := newFixture(t)
	f.standup(t)
	ctx := context.Background()

	start := at(23, 10, 0)
	res, err := f.tasks.CreateDirect(ctx, testScope, task.CreateDirectInput{Draft: model.TaskDraft{
		Title:           "Review",
		DurationMinutes: 60,
		Start:           &start,
	}})
	require.NoError(t, err)
	require.False(t, res.Committed())
	require.NotNil(t, res.Conflict)

	out, err := f.uc.Resolve(ctx, testScope, scheduling.ResolveInput{
		Draft:    res.Conflict.Attempted,
		Strategy: model.StrategyDay,
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Suggestions.Page.Suggestions)
	require.NotNil(t, out.Session.Constraint.LockedDate)
	assert.Equal(t, resolver.StateResolving, out.Session.State)

	c := out.Session.Constraint
	for range 4 {
		for _, s := range out.Suggestions.Page.Suggestions {
			assert.Equal(t, 23, s.ScheduledStart.Day())
			assert.NotEqual(t, at(23, 10, 0), s.ScheduledStart)
		}
		if !out.Suggestions.Page.HasMorePages {
			break
		}
		out, err = f.uc.Resolve(ctx, testScope, scheduling.ResolveInput{
			Draft:      res.Conflict.Attempted,
			Constraint: c,
			Navigate:   scheduling.NavigateNext,
		})
		require.NoError(t, err)
		assert.Equal(t, c.Page+1, out.Suggestions.Page.Page)
		assert.Equal(t, *c.LockedDate, *out.Session.Constraint.LockedDate)
		c = out.Session.Constraint
	}
}

func TestResolvePrevNeverBelowFirstPage(t *testing.T) {
	f := newFixture(t)
	c := model.SearchConstraint{Strategy: model.StrategyDay, LockedDate: ptr(at(23, 0, 0)), Page: 1}

	out, err := f.uc.Resolve(context.Background(), testScope, scheduling.ResolveInput{
		Draft:      model.TaskDraft{Title: "Review", DurationMinutes: 60},
		Constraint: &c,
		Navigate:   scheduling.NavigatePrev,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Suggestions.Page.Page)
}

func TestResolveRejectsBadInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Resolve(ctx, testScope, scheduling.ResolveInput{Strategy: "year"})
	var ce *resolver.ConstraintError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "strategy", ce.Field)

	c := model.SearchConstraint{Strategy: model.StrategyWeek}
	_, err = f.uc.Resolve(ctx, testScope, scheduling.ResolveInput{Constraint: &c, Navigate: "sideways"})
	assert.ErrorIs(t, err, scheduling.ErrInvalidNavigate)

	// page 2 of a day search must carry the locked date
	c = model.SearchConstraint{Strategy: model.StrategyDay}
	_, err = f.uc.Resolve(ctx, testScope, scheduling.ResolveInput{Constraint: &c, Navigate: scheduling.NavigateNext})
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, resolver.CodePaginationConstraintViolation, ce.Code)
}

func TestParseTextPartialSuggestsOnNamedDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.uc.ParseText(ctx, testScope, scheduling.ParseTextInput{Text: "dentist on Jul 30th for an hour"})
	require.NoError(t, err)
	assert.Equal(t, scheduling.StatusPartial, out.Status())
	assert.Equal(t, []string{"time"}, out.Missing)
	require.NotNil(t, out.Suggestions)
	require.NotEmpty(t, out.Suggestions.Page.Suggestions)
	for _, s := range out.Suggestions.Page.Suggestions {
		assert.Equal(t, 30, s.ScheduledStart.Day())
	}
	assert.Equal(t, out.Suggestions.Constraint, *out.Session.Constraint)

	list, err := f.tasks.List(ctx, testScope, task.ListInput{})
	require.NoError(t, err)
	assert.Zero(t, list.Total)
}

func TestParseTextReportsConflict(t *testing.T) {
	f := newFixture(t)
	f.standup(t)

	out, err := f.uc.ParseText(context.Background(), testScope, scheduling.ParseTextInput{Text: "design review on 2025-07-23 10:30 am - 11:30 am"})
	require.NoError(t, err)
	assert.Equal(t, scheduling.StatusConflict, out.Status())
	require.NotNil(t, out.Session.Conflict)
	require.Len(t, out.Session.Conflict.Conflicts, 1)
	assert.Equal(t, "Standup", out.Session.Conflict.Conflicts[0].Title)
	assert.Nil(t, out.Suggestions)
}

func TestCreateFromText(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	in := scheduling.ParseTextInput{Text: "Team meeting tomorrow at 3pm for 45 minutes"}

	out, err := f.uc.CreateFromText(ctx, testScope, in)
	require.NoError(t, err)
	assert.Equal(t, scheduling.StatusCommitted, out.Status())
	require.NotNil(t, out.Task)
	assert.Equal(t, "Team meeting", out.Task.Title)
	assert.Equal(t, at(21, 15, 0), *out.Task.ScheduledStart)
	assert.Equal(t, at(21, 15, 45), *out.Task.ScheduledEnd)
	require.NotNil(t, out.Session.Committed)

	out, err = f.uc.CreateFromText(ctx, testScope, in)
	require.NoError(t, err)
	assert.Equal(t, scheduling.StatusConflict, out.Status())
	assert.Nil(t, out.Task)
	require.NotNil(t, out.Session.Conflict)

	_, err = f.uc.CreateFromText(ctx, testScope, scheduling.ParseTextInput{Text: "  "})
	assert.ErrorIs(t, err, scheduling.ErrTextRequired)
}

func TestCreateFromTextPartialCommitsNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.uc.CreateFromText(ctx, testScope, scheduling.ParseTextInput{Text: "Gym session next week", PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, scheduling.StatusPartial, out.Status())
	require.NotNil(t, out.Suggestions)
	assert.Len(t, out.Suggestions.Page.Suggestions, 5)
	for _, s := range out.Suggestions.Page.Suggestions {
		assert.False(t, s.ScheduledStart.Before(at(21, 0, 0)))
		assert.True(t, s.ScheduledEnd.Before(at(28, 0, 0)))
	}

	list, err := f.tasks.List(ctx, testScope, task.ListInput{})
	require.NoError(t, err)
	assert.Zero(t, list.Total)
}

func TestCreateFromSuggestion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	page, err := f.uc.Suggest(ctx, testScope, scheduling.SuggestInput{Constraint: model.SearchConstraint{
		DurationMinutes: 60,
		Strategy:        model.StrategyDay,
		LockedDate:      ptr(at(23, 0, 0)),
	}})
	require.NoError(t, err)
	require.NotEmpty(t, page.Page.Suggestions)
	pick := page.Page.Suggestions[0]

	in := task.CreateFromSuggestionInput{
		Draft: model.TaskDraft{Title: "Review", DurationMinutes: 60},
		Start: pick.ScheduledStart,
		End:   pick.ScheduledEnd,
	}
	out, err := f.uc.CreateFromSuggestion(ctx, testScope, in)
	require.NoError(t, err)
	assert.True(t, out.Result.Committed())
	assert.Equal(t, resolver.StateCommitted, out.Session.State)
	assert.Equal(t, pick.ScheduledStart, out.Session.Committed.Start)

	// the same slot is taken now
	out, err = f.uc.CreateFromSuggestion(ctx, testScope, in)
	require.NoError(t, err)
	assert.False(t, out.Result.Committed())
	assert.Equal(t, resolver.StateResolving, out.Session.State)
	require.NotNil(t, out.Session.Conflict)
	assert.Nil(t, out.Session.Selected)

	_, err = f.uc.CreateFromSuggestion(ctx, testScope, task.CreateFromSuggestionInput{
		Draft: in.Draft,
		Start: pick.ScheduledEnd,
		End:   pick.ScheduledStart,
	})
	assert.ErrorIs(t, err, task.ErrInvalidInterval)
}
