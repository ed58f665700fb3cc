package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"smart-task-scheduler/internal/task"
	"smart-task-scheduler/internal/task/repository"
	"smart-task-scheduler/pkg/gcalendar"
	pkgLog "smart-task-scheduler/pkg/log"
	"smart-task-scheduler/pkg/metrics"
)

// Calendar is the part of the Google Calendar client the task usecase needs.
type Calendar interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// CalendarOptions controls how the external calendar takes part in scheduling.
type CalendarOptions struct {
	CalendarID string
	Timezone   string
	// ImportBusy makes calendar events block time next to persisted tasks.
	ImportBusy bool
	// Mirror creates a calendar event for every committed task.
	Mirror bool
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	calendar Calendar
	calOpts  CalendarOptions
	metrics  *metrics.Metrics
	loc      *time.Location
	locks    *userLocks
	newID    func() string
}

// New creates a new task UseCase instance. calendar may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	calendar Calendar,
	calOpts CalendarOptions,
	m *metrics.Metrics,
	loc *time.Location,
) task.UseCase {
	if calOpts.CalendarID == "" {
		calOpts.CalendarID = "primary"
	}
	if loc == nil {
		loc = time.UTC
	}
	if calOpts.Timezone == "" {
		calOpts.Timezone = loc.String()
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		calendar: calendar,
		calOpts:  calOpts,
		metrics:  m,
		loc:      loc,
		locks:    newUserLocks(),
		newID:    uuid.NewString,
	}
}
