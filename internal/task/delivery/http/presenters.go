package http

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/task"
	"smart-task-scheduler/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title           string         `json:"title"           binding:"required,max=255"`
	TaskType        string         `json:"taskType"`
	Priority        string         `json:"priority"`
	Description     string         `json:"description"     binding:"max=2000"`
	DurationMinutes int            `json:"durationMinutes"`
	ScheduledStart  string         `json:"scheduledStart"`
	ScheduledEnd    string         `json:"scheduledEnd"`
	DueDate         *response.Date `json:"dueDate"`
}

func (r createReq) toInput(loc *time.Location) (task.CreateDirectInput, error) {
	if r.ScheduledStart == "" {
		return task.CreateDirectInput{}, fieldError("scheduledStart", task.ErrStartRequired.Error())
	}
	start, err := response.ParseSlotTime(r.ScheduledStart, loc)
	if err != nil {
		return task.CreateDirectInput{}, fieldError("scheduledStart", err.Error())
	}

	duration := r.DurationMinutes
	if r.ScheduledEnd != "" {
		end, err := response.ParseSlotTime(r.ScheduledEnd, loc)
		if err != nil {
			return task.CreateDirectInput{}, fieldError("scheduledEnd", err.Error())
		}
		if !end.After(start) {
			return task.CreateDirectInput{}, fieldError("scheduledEnd", task.ErrInvalidInterval.Error())
		}
		if duration == 0 {
			duration = int(end.Sub(start) / time.Minute)
		}
	}

	draft := model.TaskDraft{
		Title:           r.Title,
		TaskType:        model.TaskType(r.TaskType),
		Priority:        model.Priority(strings.ToUpper(r.Priority)),
		Description:     r.Description,
		DurationMinutes: duration,
		Start:           &start,
	}
	if r.DueDate != nil {
		due := model.SameDate(time.Time(*r.DueDate), loc)
		draft.WindowEnd = &due
	}
	return task.CreateDirectInput{Draft: draft}, nil
}

type listReq struct {
	Status string `form:"status"`
	From   string `form:"from"`
	To     string `form:"to"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput(loc *time.Location) (task.ListInput, error) {
	in := task.ListInput{
		Status: model.Status(strings.ToUpper(r.Status)),
		Limit:  r.Limit,
		Offset: r.Offset,
	}
	if r.From != "" {
		from, err := response.ParseDateTime(r.From, loc)
		if err != nil {
			return in, fieldError("from", err.Error())
		}
		in.From = &from
	}
	if r.To != "" {
		to, err := response.ParseDateTime(r.To, loc)
		if err != nil {
			return in, fieldError("to", err.Error())
		}
		in.To = &to
	}
	return in, nil
}

type updateReq struct {
	ID              string         `json:"-"`
	Title           string         `json:"title"           binding:"max=255"`
	TaskType        string         `json:"taskType"`
	Priority        string         `json:"priority"`
	Description     string         `json:"description"     binding:"max=2000"`
	DurationMinutes int            `json:"durationMinutes" binding:"min=0"`
	ScheduledStart  string         `json:"scheduledStart"`
	DueDate         *response.Date `json:"dueDate"`
}

func (r updateReq) toInput(loc *time.Location) (task.UpdateInput, error) {
	in := task.UpdateInput{
		ID:              r.ID,
		Title:           r.Title,
		TaskType:        model.TaskType(r.TaskType),
		Priority:        model.Priority(strings.ToUpper(r.Priority)),
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
	}
	if r.ScheduledStart != "" {
		start, err := response.ParseSlotTime(r.ScheduledStart, loc)
		if err != nil {
			return in, fieldError("scheduledStart", err.Error())
		}
		in.Start = &start
	}
	if r.DueDate != nil {
		due := model.SameDate(time.Time(*r.DueDate), loc)
		in.DueDate = &due
	}
	return in, nil
}

type updateStatusReq struct {
	ID     string `json:"-"`
	Status string `json:"status" binding:"required"`
}

func (r updateStatusReq) toInput() task.UpdateStatusInput {
	return task.UpdateStatusInput{ID: r.ID, Status: model.Status(strings.ToUpper(r.Status))}
}

// --- Response DTOs ---

// TaskResp is the wire form of a persisted task.
type TaskResp struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	TaskType        string         `json:"taskType"`
	Description     string         `json:"description"`
	Status          string         `json:"status"`
	Priority        string         `json:"priority"`
	DurationMinutes int            `json:"durationMinutes"`
	DueDate         *response.Date `json:"dueDate,omitempty"`
	ScheduledStart  *time.Time     `json:"scheduledStart,omitempty"`
	ScheduledEnd    *time.Time     `json:"scheduledEnd,omitempty"`
	CalendarEventID string         `json:"calendarEventId,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

func NewTaskResp(t model.Task, loc *time.Location) TaskResp {
	resp := TaskResp{
		ID:              t.ID,
		Title:           t.Title,
		TaskType:        string(t.TaskType),
		Description:     t.Description,
		Status:          string(t.Status),
		Priority:        string(t.Priority),
		DurationMinutes: t.DurationMinutes,
		ScheduledStart:  inLoc(t.ScheduledStart, loc),
		ScheduledEnd:    inLoc(t.ScheduledEnd, loc),
		CalendarEventID: t.CalendarEventID,
		CreatedAt:       t.CreatedAt.In(loc),
		UpdatedAt:       t.UpdatedAt.In(loc),
	}
	if t.DueDate != nil {
		d := response.Date(t.DueDate.In(loc))
		resp.DueDate = &d
	}
	return resp
}

func inLoc(t *time.Time, loc *time.Location) *time.Time {
	if t == nil {
		return nil
	}
	v := t.In(loc)
	return &v
}

// ConflictingTaskResp is one busy entry that blocked a commit.
type ConflictingTaskResp struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	TaskType       string    `json:"taskType,omitempty"`
	Source         string    `json:"source"`
	ScheduledStart time.Time `json:"scheduledStart"`
	ScheduledEnd   time.Time `json:"scheduledEnd"`
}

// DraftResp echoes the attempted task so the client can re-issue a search.
type DraftResp struct {
	Title                 string         `json:"title"`
	TaskType              string         `json:"taskType"`
	Priority              string         `json:"priority,omitempty"`
	Description           string         `json:"description,omitempty"`
	DurationMinutes       int            `json:"durationMinutes"`
	ScheduledStart        *time.Time     `json:"scheduledStart,omitempty"`
	BestKnownDate         *response.Date `json:"bestKnownDate,omitempty"`
	WindowStart           *response.Date `json:"windowStart,omitempty"`
	WindowEnd             *response.Date `json:"windowEnd,omitempty"`
	PreferredTimeOfDay    string         `json:"preferredTimeOfDay,omitempty"`
	ExplicitDateRequested bool           `json:"explicitDateRequested"`
}

func NewDraftResp(d model.TaskDraft, loc *time.Location) DraftResp {
	resp := DraftResp{
		Title:                 d.Title,
		TaskType:              string(d.TaskType),
		Priority:              string(d.Priority),
		Description:           d.Description,
		DurationMinutes:       d.DurationMinutes,
		ScheduledStart:        inLoc(d.Start, loc),
		BestKnownDate:         dateIn(d.BestKnownDate, loc),
		WindowStart:           dateIn(d.WindowStart, loc),
		WindowEnd:             dateIn(d.WindowEnd, loc),
		ExplicitDateRequested: d.ExplicitDate,
	}
	if d.PreferredTimeOfDay != model.PreferenceNone {
		resp.PreferredTimeOfDay = string(d.PreferredTimeOfDay)
	}
	return resp
}

func dateIn(t *time.Time, loc *time.Location) *response.Date {
	if t == nil {
		return nil
	}
	d := response.Date(t.In(loc))
	return &d
}

// ConflictResp is the payload of a 409.
type ConflictResp struct {
	Attempted DraftResp             `json:"attempted"`
	Conflicts []ConflictingTaskResp `json:"conflicts"`
}

func NewConflictResp(r model.ConflictReport, loc *time.Location) ConflictResp {
	resp := ConflictResp{
		Attempted: NewDraftResp(r.Attempted, loc),
		Conflicts: make([]ConflictingTaskResp, len(r.Conflicts)),
	}
	for i, c := range r.Conflicts {
		resp.Conflicts[i] = ConflictingTaskResp{
			ID:             c.ID,
			Title:          c.Title,
			TaskType:       string(c.TaskType),
			Source:         c.Source,
			ScheduledStart: c.Start.In(loc),
			ScheduledEnd:   c.End.In(loc),
		}
	}
	return resp
}

const conflictMessage = "requested time overlaps existing tasks"

// RenderCommit writes a commit result: 201 (or 200 when nothing was created)
// with the task, or 409 with the conflict report.
func RenderCommit(c *gin.Context, res task.CommitResult, created bool, loc *time.Location) {
	if !res.Committed() {
		var report model.ConflictReport
		if res.Conflict != nil {
			report = *res.Conflict
		}
		response.Conflict(c, conflictMessage, NewConflictResp(report, loc))
		return
	}
	body := taskEnvelope{Task: NewTaskResp(res.Task, loc)}
	if created {
		response.Created(c, body)
		return
	}
	response.OK(c, body)
}

type taskEnvelope struct {
	Task TaskResp `json:"task"`
}

type listResp struct {
	Tasks  []TaskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]TaskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = NewTaskResp(t, h.loc)
	}
	return listResp{Tasks: tasks, Total: out.Total, Limit: out.Limit, Offset: out.Offset}
}
