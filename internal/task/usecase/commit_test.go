package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/task"
	"smart-task-scheduler/pkg/gcalendar"
)

func TestCreateDirect(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil, CalendarOptions{})

	res, err := uc.CreateDirect(ctx, testScope, meeting("Team sync", at(23, 10, 0), 60))
	require.NoError(t, err)
	require.True(t, res.Committed())
	assert.Equal(t, "Team sync", res.Task.Title)
	assert.Equal(t, model.PriorityMedium, res.Task.Priority)
	assert.True(t, res.Task.ScheduledEnd.Equal(at(23, 11, 0)))

	// One minute of overlap is a conflict, not an error.
	res, err = uc.CreateDirect(ctx, testScope, meeting("Overlap", at(23, 10, 59), 30))
	require.NoError(t, err)
	assert.Equal(t, task.OutcomeConflict, res.Outcome)
	require.NotNil(t, res.Conflict)
	assert.Equal(t, "Overlap", res.Conflict.Attempted.Title)
	require.Len(t, res.Conflict.Conflicts, 1)
	assert.Equal(t, "Team sync", res.Conflict.Conflicts[0].Title)
	assert.Equal(t, "task", res.Conflict.Conflicts[0].Source)

	// Back to back is fine.
	res, err = uc.CreateDirect(ctx, testScope, meeting("Next", at(23, 11, 0), 30))
	require.NoError(t, err)
	assert.True(t, res.Committed())

	// Another user's calendar is independent.
	res, err = uc.CreateDirect(ctx, model.Scope{UserID: "u2"}, meeting("Other", at(23, 10, 0), 60))
	require.NoError(t, err)
	assert.True(t, res.Committed())
}

func TestCreateDirectValidation(t *testing.T) {
	uc := newTestUseCase(t, nil, CalendarOptions{})
	start := at(23, 10, 0)

	tests := []struct {
		name  string
		draft model.TaskDraft
		want  error
	}{
		{"blank title", model.TaskDraft{Title: "  ", DurationMinutes: 30, Start: &start}, task.ErrTitleRequired},
		{"no start", model.TaskDraft{Title: "x", DurationMinutes: 30}, task.ErrStartRequired},
		{"zero duration", model.TaskDraft{Title: "x", Start: &start}, task.ErrInvalidDuration},
		{"too long", model.TaskDraft{Title: "x", DurationMinutes: 1441, Start: &start}, task.ErrInvalidDuration},
		{"bad type", model.TaskDraft{Title: "x", TaskType: "Party", DurationMinutes: 30, Start: &start}, task.ErrInvalidTaskType},
		{"bad priority", model.TaskDraft{Title: "x", Priority: "URGENT", DurationMinutes: 30, Start: &start}, task.ErrInvalidPriority},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateDirect(context.Background(), testScope, task.CreateDirectInput{Draft: tc.draft})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCreateDirectConcurrentSameSlot(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil, CalendarOptions{})

	const n = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		committed int
		conflicts int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := uc.CreateDirect(ctx, testScope, meeting(fmt.Sprintf("t%d", i), at(23, 10, i), 30))
			assert.NoError(t, err)
			mu.Lock()
			defer mu.Unlock()
			if res.Committed() {
				committed++
			} else {
				conflicts++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, committed)
	assert.Equal(t, n-1, conflicts)
	assert.Zero(t, uc.locks.len())
}

func TestCreateDirectCalendarBusy(t *testing.T) {
	ctx := context.Background()
	cal := newFakeCalendar(
		gcalendar.Event{ID: "standup", Summary: "Standup", StartTime: at(23, 10, 0), EndTime: at(23, 10, 30)},
		gcalendar.Event{ID: "ooo", Summary: "Reminder", StartTime: at(23, 14, 0), EndTime: at(23, 15, 0), Transparent: true},
	)
	uc := newTestUseCase(t, cal, CalendarOptions{ImportBusy: true})

	res, err := uc.CreateDirect(ctx, testScope, meeting("Review", at(23, 10, 15), 30))
	require.NoError(t, err)
	require.Equal(t, task.OutcomeConflict, res.Outcome)
	require.Len(t, res.Conflict.Conflicts, 1)
	assert.Equal(t, "standup", res.Conflict.Conflicts[0].ID)
	assert.Equal(t, "calendar", res.Conflict.Conflicts[0].Source)

	// Transparent events do not block.
	res, err = uc.CreateDirect(ctx, testScope, meeting("Focus", at(23, 14, 0), 60))
	require.NoError(t, err)
	assert.True(t, res.Committed())

	// A failing calendar degrades to tasks only.
	cal.listErr = errors.New("quota exceeded")
	res, err = uc.CreateDirect(ctx, testScope, meeting("Late", at(23, 10, 0), 30))
	require.NoError(t, err)
	assert.True(t, res.Committed())
}

func TestCreateDirectMirrorsToCalendar(t *testing.T) {
	ctx := context.Background()
	cal := newFakeCalendar()
	uc := newTestUseCase(t, cal, CalendarOptions{ImportBusy: true, Mirror: true})

	res, err := uc.CreateDirect(ctx, testScope, meeting("Planning", at(23, 9, 0), 60))
	require.NoError(t, err)
	require.True(t, res.Committed())
	assert.Equal(t, "ev-1", res.Task.CalendarEventID)

	stored, err := uc.Detail(ctx, testScope, res.Task.ID)
	require.NoError(t, err)
	assert.Equal(t, "ev-1", stored.CalendarEventID)

	// The mirrored event is not double-counted as foreign busy time.
	busy, err := uc.Busy(ctx, testScope, task.BusyInput{From: at(23, 0, 0), To: at(24, 0, 0)})
	require.NoError(t, err)
	require.Len(t, busy, 1)
	assert.Equal(t, res.Task.ID, busy[0].ID)

	// Creation failures never fail the commit.
	cal.createErr = errors.New("calendar down")
	res, err = uc.CreateDirect(ctx, testScope, meeting("Retro", at(23, 11, 0), 60))
	require.NoError(t, err)
	require.True(t, res.Committed())
	assert.Empty(t, res.Task.CalendarEventID)
}

func TestCreateFromSuggestion(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil, CalendarOptions{})

	res, err := uc.CreateFromSuggestion(ctx, testScope, task.CreateFromSuggestionInput{
		Draft: model.TaskDraft{Title: "Study", TaskType: model.TaskTypeStudies},
		Start: at(23, 13, 0),
		End:   at(23, 14, 30),
	})
	require.NoError(t, err)
	require.True(t, res.Committed())
	assert.Equal(t, 90, res.Task.DurationMinutes)

	// Stale slot: someone took it after ranking.
	res, err = uc.CreateFromSuggestion(ctx, testScope, task.CreateFromSuggestionInput{
		Draft: model.TaskDraft{Title: "Gym", TaskType: model.TaskTypeTraining},
		Start: at(23, 14, 0),
		End:   at(23, 15, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, task.OutcomeConflict, res.Outcome)

	_, err = uc.CreateFromSuggestion(ctx, testScope, task.CreateFromSuggestionInput{
		Draft: model.TaskDraft{Title: "Gym"},
		Start: at(23, 15, 0),
		End:   at(23, 15, 0),
	})
	assert.ErrorIs(t, err, task.ErrInvalidInterval)
}

func TestCreateFromSuggestionReschedules(t *testing.T) {
	ctx := context.Background()
	cal := newFakeCalendar()
	uc := newTestUseCase(t, cal, CalendarOptions{Mirror: true})

	created, err := uc.CreateDirect(ctx, testScope, meeting("1:1", at(23, 10, 0), 30))
	require.NoError(t, err)
	require.True(t, created.Committed())

	// Moving a task onto an interval overlapping its own old slot is allowed.
	res, err := uc.CreateFromSuggestion(ctx, testScope, task.CreateFromSuggestionInput{
		TaskID: created.Task.ID,
		Start:  at(23, 10, 15),
		End:    at(23, 10, 45),
	})
	require.NoError(t, err)
	require.True(t, res.Committed())
	assert.Equal(t, created.Task.ID, res.Task.ID)
	assert.Equal(t, "1:1", res.Task.Title)
	assert.True(t, res.Task.ScheduledStart.Equal(at(23, 10, 15)))
	assert.Equal(t, []string{"ev-1"}, cal.deleted)
	assert.Equal(t, "ev-2", res.Task.CalendarEventID)
	assert.Equal(t, 1, cal.len())

	_, err = uc.CreateFromSuggestion(ctx, testScope, task.CreateFromSuggestionInput{
		TaskID: "missing",
		Start:  at(24, 10, 0),
		End:    at(24, 11, 0),
	})
	assert.ErrorIs(t, err, task.ErrTaskNotFound)

	_, err = uc.UpdateStatus(ctx, testScope, task.UpdateStatusInput{ID: created.Task.ID, Status: model.StatusCompleted})
	require.NoError(t, err)
	_, err = uc.CreateFromSuggestion(ctx, testScope, task.CreateFromSuggestionInput{
		TaskID: created.Task.ID,
		Start:  at(24, 10, 0),
		End:    at(24, 11, 0),
	})
	assert.ErrorIs(t, err, task.ErrTaskAlreadyClosed)
}

func TestUserLocksReleased(t *testing.T) {
	locks := newUserLocks()
	unlock := locks.Lock("u1")
	assert.Equal(t, 1, locks.len())

	done := make(chan struct{})
	go func() {
		release := locks.Lock("u1")
		release()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("second Lock returned while the first was held")
	case <-time.After(20 * time.Millisecond):
	}
	unlock()
	<-done
	assert.Zero(t, locks.len())
}
