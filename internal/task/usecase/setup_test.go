package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/task"
	"smart-task-scheduler/internal/task/repository/sqlstore"
	"smart-task-scheduler/pkg/gcalendar"
	"smart-task-scheduler/pkg/sqldb"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Fake calendar for testing. Events live in memory.
type fakeCalendar struct {
	mu        sync.Mutex
	events    map[string]gcalendar.Event
	seq       int
	listErr   error
	createErr error
	deleted   []string
}

func newFakeCalendar(events ...gcalendar.Event) *fakeCalendar {
	c := &fakeCalendar{events: make(map[string]gcalendar.Event)}
	for _, ev := range events {
		c.events[ev.ID] = ev
	}
	return c
}

func (c *fakeCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.listErr != nil {
		return nil, c.listErr
	}
	var out []gcalendar.Event
	for _, ev := range c.events {
		if ev.StartTime.Before(req.TimeMax) && ev.EndTime.After(req.TimeMin) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (c *fakeCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.createErr != nil {
		return nil, c.createErr
	}
	c.seq++
	ev := gcalendar.Event{
		ID:          fmt.Sprintf("ev-%d", c.seq),
		Summary:     req.Summary,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
	c.events[ev.ID] = ev
	return &ev, nil
}

func (c *fakeCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.events[eventID]; !ok {
		return errors.New("event not found")
	}
	delete(c.events, eventID)
	c.deleted = append(c.deleted, eventID)
	return nil
}

func (c *fakeCalendar) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

var testScope = model.Scope{UserID: "u1"}

func at(d, h, m int) time.Time {
	return time.Date(2025, 7, d, h, m, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

// newTestUseCase wires the usecase over an in-memory sqlite store.
func newTestUseCase(t *testing.T, cal Calendar, opts CalendarOptions) *implUseCase {
	t.Helper()
	db, err := sqldb.Open(context.Background(), sqldb.Config{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := &mockLogger{}
	return New(l, sqlstore.New(db, l), cal, opts, nil, time.UTC).(*implUseCase)
}

func meeting(title string, start time.Time, minutes int) task.CreateDirectInput {
	return task.CreateDirectInput{Draft: model.TaskDraft{
		Title:           title,
		TaskType:        model.TaskTypeMeeting,
		DurationMinutes: minutes,
		Start:           &start,
	}}
}
