package http

import (
	"strings"
	"time"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/ranking"
	"smart-task-scheduler/internal/scheduling"
	"smart-task-scheduler/internal/task"
	taskHTTP "smart-task-scheduler/internal/task/delivery/http"
	"smart-task-scheduler/pkg/response"
)

// --- Request DTOs ---

// constraintReq is a SearchConstraint as the client sends it. Window bounds
// accept a date (start of that day) or a datetime; windowEnd is exclusive.
type constraintReq struct {
	DurationMinutes    int            `json:"durationMinutes"`
	TaskType           string         `json:"taskType"`
	Strategy           string         `json:"strategy"`
	ReferenceDate      *response.Date `json:"referenceDate"`
	LockedDate         *response.Date `json:"lockedDate"`
	WindowStart        string         `json:"windowStart"`
	WindowEnd          string         `json:"windowEnd"`
	PreferredTimeOfDay string         `json:"preferredTimeOfDay"`
	AllowDaysOff       bool           `json:"allowDaysOff"`
	Page               int            `json:"page"`
	PageSize           int            `json:"pageSize"`
}

func (r constraintReq) toConstraint(loc *time.Location) (model.SearchConstraint, error) {
	c := model.SearchConstraint{
		DurationMinutes:    r.DurationMinutes,
		TaskType:           model.TaskType(r.TaskType),
		Strategy:           model.Strategy(strings.ToLower(r.Strategy)),
		ReferenceDate:      sameDate(r.ReferenceDate, loc),
		LockedDate:         sameDate(r.LockedDate, loc),
		PreferredTimeOfDay: model.PreferenceTime(r.PreferredTimeOfDay),
		AllowDaysOff:       r.AllowDaysOff,
		Page:               r.Page,
		PageSize:           r.PageSize,
	}
	var err error
	if c.WindowStart, err = parseBound("windowStart", r.WindowStart, loc); err != nil {
		return c, err
	}
	if c.WindowEnd, err = parseBound("windowEnd", r.WindowEnd, loc); err != nil {
		return c, err
	}
	return c, nil
}

func sameDate(d *response.Date, loc *time.Location) *time.Time {
	if d == nil {
		return nil
	}
	t := model.SameDate(time.Time(*d), loc)
	return &t
}

func parseBound(field, s string, loc *time.Location) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if d, err := time.ParseInLocation(response.DateFormat, s, loc); err == nil {
		return &d, nil
	}
	t, err := response.ParseDateTime(s, loc)
	if err != nil {
		return nil, fieldError(field, "must be "+response.DateFormat+" or a datetime")
	}
	return &t, nil
}

// draftReq mirrors DraftResp so a client can send back the attempted task of a
// conflict or a partial parse unchanged.
type draftReq struct {
	Title                 string         `json:"title"`
	TaskType              string         `json:"taskType"`
	Priority              string         `json:"priority"`
	Description           string         `json:"description"`
	DurationMinutes       int            `json:"durationMinutes"`
	ScheduledStart        string         `json:"scheduledStart"`
	BestKnownDate         *response.Date `json:"bestKnownDate"`
	WindowStart           *response.Date `json:"windowStart"`
	WindowEnd             *response.Date `json:"windowEnd"`
	PreferredTimeOfDay    string         `json:"preferredTimeOfDay"`
	ExplicitDateRequested bool           `json:"explicitDateRequested"`
}

func (r draftReq) toDraft(loc *time.Location) (model.TaskDraft, error) {
	d := model.TaskDraft{
		Title:              strings.TrimSpace(r.Title),
		TaskType:           model.TaskType(r.TaskType),
		Priority:           model.Priority(strings.ToUpper(r.Priority)),
		Description:        r.Description,
		DurationMinutes:    r.DurationMinutes,
		BestKnownDate:      sameDate(r.BestKnownDate, loc),
		WindowStart:        sameDate(r.WindowStart, loc),
		WindowEnd:          sameDate(r.WindowEnd, loc),
		PreferredTimeOfDay: model.PreferenceTime(r.PreferredTimeOfDay),
		ExplicitDate:       r.ExplicitDateRequested,
	}
	if r.ScheduledStart != "" {
		start, err := response.ParseSlotTime(r.ScheduledStart, loc)
		if err != nil {
			return d, fieldError("draft.scheduledStart", err.Error())
		}
		d.Start = &start
	}
	return d, nil
}

type parseReq struct {
	Text     string `json:"text"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

func (r parseReq) toInput() scheduling.ParseTextInput {
	return scheduling.ParseTextInput{Text: r.Text, Page: r.Page, PageSize: r.PageSize}
}

// resolveReq either picks a strategy for draft or, with constraint set, pages
// through an earlier result.
type resolveReq struct {
	Draft      draftReq       `json:"draft"`
	Strategy   string         `json:"strategy"`
	Constraint *constraintReq `json:"constraint"`
	Navigate   string         `json:"navigate"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
}

func (r resolveReq) toInput(loc *time.Location) (scheduling.ResolveInput, error) {
	draft, err := r.Draft.toDraft(loc)
	if err != nil {
		return scheduling.ResolveInput{}, err
	}
	in := scheduling.ResolveInput{
		Draft:    draft,
		Strategy: model.Strategy(strings.ToLower(r.Strategy)),
		Navigate: scheduling.Navigation(strings.ToLower(r.Navigate)),
		Page:     r.Page,
		PageSize: r.PageSize,
	}
	if r.Constraint != nil {
		c, err := r.Constraint.toConstraint(loc)
		if err != nil {
			return scheduling.ResolveInput{}, err
		}
		in.Constraint = &c
	}
	return in, nil
}

type createFromSuggestionReq struct {
	TaskID         string   `json:"taskId"`
	Draft          draftReq `json:"draft"`
	ScheduledStart string   `json:"scheduledStart"`
	ScheduledEnd   string   `json:"scheduledEnd"`
}

func (r createFromSuggestionReq) toInput(loc *time.Location) (task.CreateFromSuggestionInput, error) {
	draft, err := r.Draft.toDraft(loc)
	if err != nil {
		return task.CreateFromSuggestionInput{}, err
	}
	if r.ScheduledStart == "" {
		return task.CreateFromSuggestionInput{}, fieldError("scheduledStart", task.ErrStartRequired.Error())
	}
	start, err := response.ParseSlotTime(r.ScheduledStart, loc)
	if err != nil {
		return task.CreateFromSuggestionInput{}, fieldError("scheduledStart", err.Error())
	}
	end, err := response.ParseSlotTime(r.ScheduledEnd, loc)
	if err != nil {
		return task.CreateFromSuggestionInput{}, fieldError("scheduledEnd", err.Error())
	}
	return task.CreateFromSuggestionInput{TaskID: r.TaskID, Draft: draft, Start: start, End: end}, nil
}

// --- Response DTOs ---

type suggestionResp struct {
	ScheduledStart   time.Time `json:"scheduledStart"`
	ScheduledEnd     time.Time `json:"scheduledEnd"`
	Score            float64   `json:"score"`
	ExceedsWorkHours bool      `json:"exceedsWorkHours"`
}

// constraintResp is the normalized constraint. Clients echo it back unchanged,
// with only page moved, to fetch further pages.
type constraintResp struct {
	DurationMinutes    int            `json:"durationMinutes"`
	TaskType           string         `json:"taskType,omitempty"`
	Strategy           string         `json:"strategy"`
	ReferenceDate      *response.Date `json:"referenceDate,omitempty"`
	LockedDate         *response.Date `json:"lockedDate,omitempty"`
	WindowStart        *time.Time     `json:"windowStart,omitempty"`
	WindowEnd          *time.Time     `json:"windowEnd,omitempty"`
	PreferredTimeOfDay string         `json:"preferredTimeOfDay,omitempty"`
	AllowDaysOff       bool           `json:"allowDaysOff"`
	Page               int            `json:"page"`
	PageSize           int            `json:"pageSize"`
}

func newConstraintResp(c model.SearchConstraint, loc *time.Location) constraintResp {
	resp := constraintResp{
		DurationMinutes: c.DurationMinutes,
		TaskType:        string(c.TaskType),
		Strategy:        string(c.Strategy),
		ReferenceDate:   dateIn(c.ReferenceDate, loc),
		LockedDate:      dateIn(c.LockedDate, loc),
		WindowStart:     inLoc(c.WindowStart, loc),
		WindowEnd:       inLoc(c.WindowEnd, loc),
		AllowDaysOff:    c.AllowDaysOff,
		Page:            c.Page,
		PageSize:        c.PageSize,
	}
	if c.PreferredTimeOfDay != model.PreferenceNone {
		resp.PreferredTimeOfDay = string(c.PreferredTimeOfDay)
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

func inLoc(t *time.Time, loc *time.Location) *time.Time {
	if t == nil {
		return nil
	}
	v := t.In(loc)
	return &v
}

type suggestResp struct {
	Suggestions  []suggestionResp `json:"suggestions"`
	Page         int              `json:"page"`
	PageSize     int              `json:"pageSize"`
	Total        int              `json:"total"`
	HasMorePages bool             `json:"hasMorePages"`
	Constraint   constraintResp   `json:"constraint"`
}

func newSuggestions(p ranking.Page, loc *time.Location) []suggestionResp {
	out := make([]suggestionResp, len(p.Suggestions))
	for i, s := range p.Suggestions {
		out[i] = suggestionResp{
			ScheduledStart:   s.ScheduledStart.In(loc),
			ScheduledEnd:     s.ScheduledEnd.In(loc),
			Score:            s.Score,
			ExceedsWorkHours: s.ExceedsWorkHours,
		}
	}
	return out
}

func newSuggestResp(out scheduling.SuggestOutput, loc *time.Location) suggestResp {
	return suggestResp{
		Suggestions:  newSuggestions(out.Page, loc),
		Page:         out.Page.Page,
		PageSize:     out.Page.PageSize,
		Total:        out.Page.Total,
		HasMorePages: out.Page.HasMorePages,
		Constraint:   newConstraintResp(out.Constraint, loc),
	}
}

type parseResp struct {
	Status       string                         `json:"status"`
	Parsed       taskHTTP.DraftResp             `json:"parsed"`
	Missing      []string                       `json:"missing"`
	Constraint   *constraintResp                `json:"constraint,omitempty"`
	Suggestions  []suggestionResp               `json:"suggestions,omitempty"`
	HasMorePages bool                           `json:"hasMorePages"`
	Conflicts    []taskHTTP.ConflictingTaskResp `json:"conflicts,omitempty"`
	Task         *taskHTTP.TaskResp             `json:"task,omitempty"`
}

func newParseResp(out scheduling.ParseOutput, loc *time.Location) parseResp {
	resp := parseResp{
		Status:  string(out.Status()),
		Parsed:  taskHTTP.NewDraftResp(out.Session.Draft, loc),
		Missing: out.Missing,
	}
	if resp.Missing == nil {
		resp.Missing = []string{}
	}
	if out.Suggestions != nil {
		c := newConstraintResp(out.Suggestions.Constraint, loc)
		resp.Constraint = &c
		resp.Suggestions = newSuggestions(out.Suggestions.Page, loc)
		resp.HasMorePages = out.Suggestions.Page.HasMorePages
	}
	if out.Session.Conflict != nil {
		resp.Conflicts = taskHTTP.NewConflictResp(*out.Session.Conflict, loc).Conflicts
	}
	if out.Task != nil {
		t := taskHTTP.NewTaskResp(*out.Task, loc)
		resp.Task = &t
	}
	return resp
}

type resolveResp struct {
	State string `json:"state"`
	suggestResp
}

func newResolveResp(out scheduling.ResolveOutput, loc *time.Location) resolveResp {
	return resolveResp{
		State:       string(out.Session.State),
		suggestResp: newSuggestResp(out.Suggestions, loc),
	}
}
