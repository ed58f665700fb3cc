package http

import (
	"time"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/preference"
)

// --- Request DTOs ---

type setReq struct {
	WorkdayPrefStart       string              `json:"workdayPrefStart"`
	WorkdayPrefEnd         string              `json:"workdayPrefEnd"`
	FocusPeakStart         string              `json:"focusPeakStart"`
	FocusPeakEnd           string              `json:"focusPeakEnd"`
	DaysOff                []int               `json:"daysOff"`
	DefaultDurationMinutes int                 `json:"defaultDurationMinutes"`
	DeadlineBehavior       string              `json:"deadlineBehavior"`
	Flexibility            string              `json:"flexibility"`
	PreferenceTime         string              `json:"preferenceTime"`
	PreferredDays          []string            `json:"preferredDays"`
	PreferredDaysByTask    map[string][]string `json:"preferredDaysByTask"`
}

func (r setReq) toInput() preference.SetInput {
	return preference.SetInput{
		WorkdayStart:           r.WorkdayPrefStart,
		WorkdayEnd:             r.WorkdayPrefEnd,
		FocusStart:             r.FocusPeakStart,
		FocusEnd:               r.FocusPeakEnd,
		DaysOff:                r.DaysOff,
		DefaultDurationMinutes: r.DefaultDurationMinutes,
		DeadlineBehavior:       r.DeadlineBehavior,
		Flexibility:            r.Flexibility,
		PreferenceTime:         r.PreferenceTime,
		PreferredDays:          r.PreferredDays,
		PreferredDaysByTask:    r.PreferredDaysByTask,
	}
}

// --- Response DTOs ---

type preferencesResp struct {
	WorkdayPrefStart       string              `json:"workdayPrefStart,omitempty"`
	WorkdayPrefEnd         string              `json:"workdayPrefEnd,omitempty"`
	FocusPeakStart         string              `json:"focusPeakStart,omitempty"`
	FocusPeakEnd           string              `json:"focusPeakEnd,omitempty"`
	DaysOff                []int               `json:"daysOff"`
	DefaultDurationMinutes int                 `json:"defaultDurationMinutes"`
	DeadlineBehavior       string              `json:"deadlineBehavior,omitempty"`
	Flexibility            string              `json:"flexibility,omitempty"`
	PreferenceTime         string              `json:"preferenceTime,omitempty"`
	PreferredDays          []string            `json:"preferredDays"`
	PreferredDaysByTask    map[string][]string `json:"preferredDaysByTask"`
	CreatedAt              *time.Time          `json:"createdAt,omitempty"`
}

func newPreferencesResp(p model.Preferences) preferencesResp {
	resp := preferencesResp{
		DaysOff:                p.DaysOff,
		DefaultDurationMinutes: p.DurationOrDefault(),
		DeadlineBehavior:       string(p.DeadlineBehavior),
		Flexibility:            string(p.Flexibility),
		PreferenceTime:         string(p.PreferenceTime),
		PreferredDays:          weekdayNames(p.PreferredDays),
		PreferredDaysByTask:    make(map[string][]string, len(p.PreferredDaysByTask)),
	}
	if resp.DaysOff == nil {
		resp.DaysOff = []int{}
	}
	if p.Workday != nil {
		resp.WorkdayPrefStart, resp.WorkdayPrefEnd = p.Workday.Start.String(), p.Workday.End.String()
	}
	if p.FocusPeak != nil {
		resp.FocusPeakStart, resp.FocusPeakEnd = p.FocusPeak.Start.String(), p.FocusPeak.End.String()
	}
	for tt, days := range p.PreferredDaysByTask {
		resp.PreferredDaysByTask[string(tt)] = weekdayNames(days)
	}
	if !p.CreatedAt.IsZero() {
		created := p.CreatedAt
		resp.CreatedAt = &created
	}
	return resp
}

func weekdayNames(days []time.Weekday) []string {
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()
	}
	return names
}

type getResp struct {
	Exists      bool            `json:"exists"`
	Preferences preferencesResp `json:"preferences"`
}

func newGetResp(out preference.GetOutput) getResp {
	return getResp{Exists: out.Exists, Preferences: newPreferencesResp(out.Preferences)}
}
