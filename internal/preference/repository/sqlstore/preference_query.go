package sqlstore

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"smart-task-scheduler/internal/model"
)

const preferenceColumns = `user_id, workday_start, workday_end, focus_start, focus_end, days_off,
	default_duration_minutes, deadline_behavior, flexibility, preference_time, preferred_days,
	preferred_days_by_task, created_at`

// row is the column-level encoding of model.Preferences.
type row struct {
	UserID              string
	WorkdayStart        string
	WorkdayEnd          string
	FocusStart          string
	FocusEnd            string
	DaysOff             string
	DefaultDuration     int
	DeadlineBehavior    string
	Flexibility         string
	PreferenceTime      string
	PreferredDays       string
	PreferredDaysByTask string
	CreatedAt           int64
}

func (r *row) dest() []any {
	return []any{&r.UserID, &r.WorkdayStart, &r.WorkdayEnd, &r.FocusStart, &r.FocusEnd, &r.DaysOff,
		&r.DefaultDuration, &r.DeadlineBehavior, &r.Flexibility, &r.PreferenceTime, &r.PreferredDays,
		&r.PreferredDaysByTask, &r.CreatedAt}
}

func (r row) args() []any {
	return []any{r.UserID, r.WorkdayStart, r.WorkdayEnd, r.FocusStart, r.FocusEnd, r.DaysOff,
		r.DefaultDuration, r.DeadlineBehavior, r.Flexibility, r.PreferenceTime, r.PreferredDays,
		r.PreferredDaysByTask, r.CreatedAt}
}

func encode(p model.Preferences) (row, error) {
	r := row{
		UserID:           p.UserID,
		DefaultDuration:  p.DefaultDurationMinutes,
		DeadlineBehavior: string(p.DeadlineBehavior),
		Flexibility:      string(p.Flexibility),
		PreferenceTime:   string(p.PreferenceTime),
		CreatedAt:        p.CreatedAt.Unix(),
	}
	if p.Workday != nil {
		r.WorkdayStart, r.WorkdayEnd = p.Workday.Start.String(), p.Workday.End.String()
	}
	if p.FocusPeak != nil {
		r.FocusStart, r.FocusEnd = p.FocusPeak.Start.String(), p.FocusPeak.End.String()
	}

	days := make([]string, len(p.DaysOff))
	for i, d := range p.DaysOff {
		days[i] = strconv.Itoa(d)
	}
	r.DaysOff = strings.Join(days, ",")
	r.PreferredDays = joinWeekdays(p.PreferredDays)

	byTask := make(map[string][]string, len(p.PreferredDaysByTask))
	for tt, wds := range p.PreferredDaysByTask {
		names := make([]string, len(wds))
		for i, d := range wds {
			names[i] = d.String()
		}
		byTask[string(tt)] = names
	}
	b, err := json.Marshal(byTask)
	if err != nil {
		return row{}, err
	}
	r.PreferredDaysByTask = string(b)
	return r, nil
}

func decode(r row) (model.Preferences, error) {
	p := model.Preferences{
		UserID:                 r.UserID,
		DefaultDurationMinutes: r.DefaultDuration,
		DeadlineBehavior:       model.DeadlineBehavior(r.DeadlineBehavior),
		Flexibility:            model.Flexibility(r.Flexibility),
		PreferenceTime:         model.PreferenceTime(r.PreferenceTime),
		CreatedAt:              time.Unix(r.CreatedAt, 0).UTC(),
	}

	var err error
	if p.Workday, err = decodeRange(r.WorkdayStart, r.WorkdayEnd); err != nil {
		return p, fmt.Errorf("workday: %w", err)
	}
	if p.FocusPeak, err = decodeRange(r.FocusStart, r.FocusEnd); err != nil {
		return p, fmt.Errorf("focus peak: %w", err)
	}

	for _, s := range splitList(r.DaysOff) {
		d, err := strconv.Atoi(s)
		if err != nil {
			return p, fmt.Errorf("days off: %w", err)
		}
		p.DaysOff = append(p.DaysOff, d)
	}
	if p.PreferredDays, err = splitWeekdays(r.PreferredDays); err != nil {
		return p, err
	}

	var byTask map[string][]string
	if r.PreferredDaysByTask != "" {
		if err := json.Unmarshal([]byte(r.PreferredDaysByTask), &byTask); err != nil {
			return p, fmt.Errorf("preferred days by task: %w", err)
		}
	}
	if len(byTask) > 0 {
		p.PreferredDaysByTask = make(map[model.TaskType][]time.Weekday, len(byTask))
		for tt, names := range byTask {
			days, err := splitWeekdays(strings.Join(names, ","))
			if err != nil {
				return p, err
			}
			p.PreferredDaysByTask[model.TaskType(tt)] = days
		}
	}
	return p, nil
}

func decodeRange(start, end string) (*model.ClockRange, error) {
	if start == "" || end == "" {
		return nil, nil
	}
	s, err := model.ParseTimeOfDay(start)
	if err != nil {
		return nil, err
	}
	e, err := model.ParseTimeOfDay(end)
	if err != nil {
		return nil, err
	}
	return &model.ClockRange{Start: s, End: e}, nil
}

func joinWeekdays(days []time.Weekday) string {
	sorted := append([]time.Weekday(nil), days...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	names := make([]string, len(sorted))
	for i, d := range sorted {
		names[i] = d.String()
	}
	return strings.Join(names, ",")
}

func splitWeekdays(s string) ([]time.Weekday, error) {
	var days []time.Weekday
	for _, name := range splitList(s) {
		d, ok := model.ParseWeekday(name)
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		days = append(days, d)
	}
	return days, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
