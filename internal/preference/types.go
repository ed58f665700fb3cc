package preference

import "smart-task-scheduler/internal/model"

// --- UseCase Inputs ---

// SetInput carries the onboarding answers as sent by the client. Times are
// "HH:MM" or "HH:MM:SS"; days are English weekday names; DaysOff uses 0 = Sunday.
type SetInput struct {
	WorkdayStart           string
	WorkdayEnd             string
	FocusStart             string
	FocusEnd               string
	DaysOff                []int
	DefaultDurationMinutes int
	DeadlineBehavior       string
	Flexibility            string
	PreferenceTime         string
	PreferredDays          []string
	PreferredDaysByTask    map[string][]string
}

// --- UseCase Outputs ---

// GetOutput reports whether the user completed onboarding. Preferences holds
// the defaults when Exists is false.
type GetOutput struct {
	Exists      bool
	Preferences model.Preferences
}
