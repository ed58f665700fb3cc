package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smart-task-scheduler/internal/availability"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/resolver"
	"smart-task-scheduler/internal/task"
	"smart-task-scheduler/internal/task/repository"
	"smart-task-scheduler/pkg/gcalendar"

	"golang.org/x/sync/errgroup"
)

const maxDurationMinutes = 24 * 60

// normalizeDraft fills defaults and rejects drafts that cannot be committed.
func normalizeDraft(d model.TaskDraft) (model.TaskDraft, error) {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		return d, task.ErrTitleRequired
	}

	if d.TaskType == "" {
		d.TaskType = model.TaskTypeMeeting
	} else if tt, ok := model.ParseTaskType(string(d.TaskType)); ok {
		d.TaskType = tt
	} else {
		return d, task.ErrInvalidTaskType
	}

	if d.Priority == "" {
		d.Priority = model.PriorityMedium
	} else if p, ok := model.ParsePriority(string(d.Priority)); ok {
		d.Priority = p
	} else {
		return d, task.ErrInvalidPriority
	}

	if d.DurationMinutes < 1 || d.DurationMinutes > maxDurationMinutes {
		return d, task.ErrInvalidDuration
	}
	return d, nil
}

// commitRequest is one attempt to place a draft on the calendar. A zero
// existing task means create; otherwise existing is moved.
type commitRequest struct {
	source   string
	draft    model.TaskDraft
	interval model.Interval
	existing model.Task
	dueDate  *time.Time
}

// commit re-checks the interval under the user's lock and persists it. Busy
// time seen before the write yields a conflict result, as does an overlap the
// repository finds inside its transaction.
func (uc *implUseCase) commit(ctx context.Context, sc model.Scope, req commitRequest) (task.CommitResult, error) {
	unlock := uc.locks.Lock(sc.UserID)
	defer unlock()

	busy, err := uc.busy(ctx, sc.UserID, req.interval.Start, req.interval.End, req.existing.ID)
	if err != nil {
		uc.metrics.IncCommit(req.source, "error")
		return task.CommitResult{}, err
	}
	if blocking := availability.New(busy).Conflicts(req.interval.Start, req.interval.End); len(blocking) > 0 {
		return uc.conflict(ctx, req, blocking), nil
	}

	var (
		t       model.Task
		overlap []model.Task
	)
	if req.existing.ID == "" {
		t, overlap, err = uc.repo.CreateIfFree(ctx, repository.CreateTaskOptions{
			ID:              uc.newID(),
			UserID:          sc.UserID,
			Title:           req.draft.Title,
			TaskType:        req.draft.TaskType,
			Description:     req.draft.Description,
			Priority:        req.draft.Priority,
			DurationMinutes: req.draft.DurationMinutes,
			DueDate:         req.dueDate,
			Start:           req.interval.Start,
			End:             req.interval.End,
		})
	} else {
		t, overlap, err = uc.repo.RescheduleIfFree(ctx, repository.RescheduleTaskOptions{
			ID:              req.existing.ID,
			UserID:          sc.UserID,
			Title:           req.draft.Title,
			TaskType:        req.draft.TaskType,
			Description:     req.draft.Description,
			Priority:        req.draft.Priority,
			DurationMinutes: req.draft.DurationMinutes,
			DueDate:         req.dueDate,
			Start:           req.interval.Start,
			End:             req.interval.End,
		})
	}
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.commit.%s: %v", req.source, err)
		uc.metrics.IncCommit(req.source, "error")
		return task.CommitResult{}, err
	}
	if len(overlap) > 0 {
		return uc.conflict(ctx, req, availability.FromTasks(overlap)), nil
	}
	if t.ID == "" {
		uc.metrics.IncCommit(req.source, "error")
		return task.CommitResult{}, task.ErrTaskNotFound
	}

	t = uc.mirror(ctx, sc, t, req.existing.CalendarEventID)
	uc.metrics.IncCommit(req.source, string(task.OutcomeCommitted))
	uc.l.Infof(ctx, "task.usecase.commit.%s: user=%s task=%s start=%s end=%s",
		req.source, sc.UserID, t.ID, req.interval.Start.Format(time.RFC3339), req.interval.End.Format(time.RFC3339))

	return task.CommitResult{Outcome: task.OutcomeCommitted, Task: t}, nil
}

func (uc *implUseCase) conflict(ctx context.Context, req commitRequest, blocking []availability.Busy) task.CommitResult {
	attempted := req.draft
	start := req.interval.Start
	attempted.Start = &start

	report := resolver.NewConflictReport(attempted, blocking)
	uc.metrics.IncCommit(req.source, string(task.OutcomeConflict))
	uc.l.Infof(ctx, "task.usecase.commit.%s: conflict with %d entries at %s",
		req.source, len(blocking), req.interval.Start.Format(time.RFC3339))
	return task.CommitResult{Outcome: task.OutcomeConflict, Conflict: &report}
}

// busy returns open tasks and imported calendar events intersecting
// [from, to). excludeID drops one task, the one being moved. Calendar events
// that mirror one of the user's tasks are dropped so time is not counted twice.
func (uc *implUseCase) busy(ctx context.Context, userID string, from, to time.Time, excludeID string) ([]availability.Busy, error) {
	var (
		tasks  []model.Task
		events []gcalendar.Event
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = uc.repo.ListScheduled(gctx, repository.ListScheduledOptions{
			UserID: userID,
			From:   from,
			To:     to,
		})
		if err != nil {
			uc.l.Errorf(ctx, "task.usecase.busy.ListScheduled: %v", err)
		}
		return err
	})
	g.Go(func() error {
		events = uc.calendarEvents(gctx, from, to)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	mirrored := make(map[string]bool, len(tasks))
	open := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.CalendarEventID != "" {
			mirrored[t.CalendarEventID] = true
		}
		if t.ID != excludeID {
			open = append(open, t)
		}
	}

	busy := availability.FromTasks(open)
	for _, ev := range events {
		if ev.Transparent || mirrored[ev.ID] {
			continue
		}
		busy = append(busy, availability.Busy{
			ID:       ev.ID,
			Title:    ev.Summary,
			Source:   availability.SourceCalendar,
			Interval: model.Interval{Start: ev.StartTime, End: ev.EndTime},
		})
	}
	return busy, nil
}

// calendarEvents lists imported events. Failures degrade to no events.
func (uc *implUseCase) calendarEvents(ctx context.Context, from, to time.Time) []gcalendar.Event {
	if uc.calendar == nil || !uc.calOpts.ImportBusy {
		return nil
	}
	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calOpts.CalendarID,
		TimeMin:    from,
		TimeMax:    to,
		Location:   uc.loc,
	})
	if err != nil {
		uc.metrics.IncCalendarError("list")
		uc.l.Warnf(ctx, "task.usecase: calendar import failed (non-fatal): %v", err)
		return nil
	}
	return events
}

// mirror replaces the task's calendar event with one at its current interval.
// Calendar failures never fail the commit.
func (uc *implUseCase) mirror(ctx context.Context, sc model.Scope, t model.Task, previousEventID string) model.Task {
	if uc.calendar == nil || !uc.calOpts.Mirror {
		return t
	}
	if previousEventID != "" {
		uc.tryDeleteCalendarEvent(ctx, previousEventID)
	}

	eventID := uc.tryCreateCalendarEvent(ctx, t)
	if eventID == "" && previousEventID == "" {
		return t
	}
	if err := uc.repo.SetCalendarEventID(ctx, repository.SetCalendarEventOptions{
		ID:              t.ID,
		UserID:          sc.UserID,
		CalendarEventID: eventID,
	}); err != nil {
		uc.l.Warnf(ctx, "task.usecase.mirror: storing event id for %s failed (non-fatal): %v", t.ID, err)
		return t
	}
	t.CalendarEventID = eventID
	return t
}

// tryCreateCalendarEvent returns the new event ID, or "" on failure.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) string {
	iv, ok := t.Interval()
	if !ok {
		return ""
	}

	description := t.Description
	if description != "" {
		description += "\n\n"
	}
	description += fmt.Sprintf("%s · priority %s", t.TaskType, t.Priority)

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calOpts.CalendarID,
		Summary:     t.Title,
		Description: description,
		StartTime:   iv.Start,
		EndTime:     iv.End,
		Timezone:    uc.calOpts.Timezone,
	})
	if err != nil {
		uc.metrics.IncCalendarError("create")
		uc.l.Warnf(ctx, "task.usecase: calendar event creation failed for %q (non-fatal): %v", t.Title, err)
		return ""
	}
	return event.ID
}

func (uc *implUseCase) tryDeleteCalendarEvent(ctx context.Context, eventID string) {
	if uc.calendar == nil || eventID == "" {
		return
	}
	if err := uc.calendar.DeleteEvent(ctx, uc.calOpts.CalendarID, eventID); err != nil {
		uc.metrics.IncCalendarError("delete")
		uc.l.Warnf(ctx, "task.usecase: calendar event %s deletion failed (non-fatal): %v", eventID, err)
	}
}
