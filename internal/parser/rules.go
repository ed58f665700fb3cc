package parser

import (
	"regexp"
	"strconv"
	"strings"

	"smart-task-scheduler/internal/model"
)

var (
	reTimeRange = regexp.MustCompile(`\b(?:from\s+)?(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\s*(?:-|to|until)\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)?(?:\s|$|[.,!?])`)
	reAtTime    = regexp.MustCompile(`\bat\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?(?:\s+in\s+the\s+(morning|afternoon|evening))?\b`)
	reMeridiem  = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	reClock     = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)

	reForMinutes  = regexp.MustCompile(`\bfor\s+(\d{1,4})\s*(?:minutes?|mins?|m)\b`)
	reForHours    = regexp.MustCompile(`\bfor\s+(\d{1,2}(?:\.\d+)?)\s*(?:hours?|hrs?|h)\b`)
	reForWordHour = regexp.MustCompile(`\bfor\s+(an?|one|two|three|four|five|six|seven|eight)\s+hours?\b`)
	reForHalfHour = regexp.MustCompile(`\bfor\s+(?:half\s+an|a\s+half)\s+hour\b`)
	reShortHours  = regexp.MustCompile(`\b(\d{1,2}(?:\.\d+)?)h\b`)
	reShortMins   = regexp.MustCompile(`\b(\d{1,4})m\b`)

	rePartOfDay = regexp.MustCompile(`\b(morning|afternoon|evening|tonight)\b`)

	reHighPriority = regexp.MustCompile(`\b(high|urgent|critical|important)\b(?:\s*priority)?`)
	reLowPriority  = regexp.MustCompile(`\blow\b(?:\s*priority)?`)
	reMedPriority  = regexp.MustCompile(`\bmedium\b(?:\s*priority)?`)
	rePriorityWord = regexp.MustCompile(`\b(?:high|low|medium)\s+priority\b|\bpriority\s*:?\s*(?:high|low|medium)\b`)

	reMeeting  = regexp.MustCompile(`\b(meeting|meet|call|appointment|standup|sync|interview)\b`)
	reTraining = regexp.MustCompile(`\b(train|training|workout|exercise|session|gym|run)\b`)
	reStudies  = regexp.MustCompile(`\b(study|studies|homework|reading|research|exam|revise)\b`)
)

var wordNumbers = map[string]int{
	"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8,
}

// clock converts hour, minute and an optional meridiem into minutes after
// midnight.
func clock(hour, minute, meridiem string) (model.TimeOfDay, bool) {
	h, err := strconv.Atoi(hour)
	if err != nil {
		return 0, false
	}
	m := 0
	if minute != "" {
		if m, err = strconv.Atoi(minute); err != nil {
			return 0, false
		}
	}
	switch meridiem {
	case "am":
		if h < 1 || h > 12 {
			return 0, false
		}
		if h == 12 {
			h = 0
		}
	case "pm":
		if h < 1 || h > 12 {
			return 0, false
		}
		if h < 12 {
			h += 12
		}
	}
	if h > 23 || m > 59 {
		return 0, false
	}
	return model.TimeOfDay(h*60 + m), true
}

type timeMatch struct {
	start    model.TimeOfDay
	duration int
	fragment string
}

func matchTimeRange(lower string) (timeMatch, bool) {
	for _, m := range reTimeRange.FindAllStringSubmatch(lower, -1) {
		if tm, ok := timeRange(m); ok {
			return tm, true
		}
	}
	return timeMatch{}, false
}

func timeRange(m []string) (timeMatch, bool) {
	// "2 to 3" alone is too ambiguous to be a time range.
	if m[6] == "" && m[3] == "" && (m[2] == "" || m[5] == "") {
		return timeMatch{}, false
	}
	startMer, endMer := m[3], m[6]
	if startMer == "" {
		startMer = endMer
	}
	start, ok := clock(m[1], m[2], startMer)
	if !ok {
		return timeMatch{}, false
	}
	end, ok := clock(m[4], m[5], endMer)
	if !ok {
		return timeMatch{}, false
	}
	// "11 - 1pm" crosses noon.
	if end <= start && m[3] == "" && startMer == "pm" {
		if s, ok := clock(m[1], m[2], "am"); ok {
			start = s
		}
	}
	if end <= start {
		return timeMatch{}, false
	}
	return timeMatch{start: start, duration: int(end - start), fragment: strings.TrimRight(m[0], " .,!?")}, true
}

func matchTime(lower string) (timeMatch, bool) {
	if m := reAtTime.FindStringSubmatch(lower); m != nil {
		meridiem := m[3]
		if meridiem == "" {
			switch m[4] {
			case "afternoon", "evening":
				meridiem = "pm"
			case "morning":
				meridiem = "am"
			default:
				// "at 3" means the afternoon.
				if h, _ := strconv.Atoi(m[1]); h >= 1 && h <= 7 {
					meridiem = "pm"
				}
			}
		}
		if t, ok := clock(m[1], m[2], meridiem); ok {
			return timeMatch{start: t, fragment: m[0]}, true
		}
	}
	if m := reMeridiem.FindStringSubmatch(lower); m != nil {
		if t, ok := clock(m[1], m[2], m[3]); ok {
			return timeMatch{start: t, fragment: m[0]}, true
		}
	}
	if m := reClock.FindStringSubmatch(lower); m != nil {
		if t, ok := clock(m[1], m[2], ""); ok {
			return timeMatch{start: t, fragment: m[0]}, true
		}
	}
	return timeMatch{}, false
}

func matchDuration(lower string) (int, string, bool) {
	if m := reForHalfHour.FindString(lower); m != "" {
		return 30, m, true
	}
	if m := reForMinutes.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n, m[0], n > 0
	}
	if m := reForHours.FindStringSubmatch(lower); m != nil {
		return hours(m[1], m[0])
	}
	if m := reForWordHour.FindStringSubmatch(lower); m != nil {
		return wordNumbers[m[1]] * 60, m[0], true
	}
	if m := reShortHours.FindStringSubmatch(lower); m != nil {
		return hours(m[1], m[0])
	}
	if m := reShortMins.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n, m[0], n > 0
	}
	return 0, "", false
}

func hours(num, fragment string) (int, string, bool) {
	f, err := strconv.ParseFloat(num, 64)
	if err != nil || f <= 0 {
		return 0, "", false
	}
	return int(f * 60), fragment, true
}

func matchPartOfDay(lower string) (model.PreferenceTime, string) {
	m := rePartOfDay.FindString(lower)
	switch m {
	case "morning":
		return model.PreferenceMorning, m
	case "afternoon":
		return model.PreferenceAfternoon, m
	case "evening", "tonight":
		return model.PreferenceEvening, m
	}
	return "", ""
}

// partOfDayAt maps an exact time onto the preference buckets.
func partOfDayAt(t model.TimeOfDay) model.PreferenceTime {
	for _, p := range []model.PreferenceTime{model.PreferenceMorning, model.PreferenceAfternoon, model.PreferenceEvening} {
		if r, ok := p.Range(); ok && r.Includes(t) {
			return p
		}
	}
	return ""
}

func matchPriority(lower string) model.Priority {
	switch {
	case reHighPriority.MatchString(lower):
		return model.PriorityHigh
	case reLowPriority.MatchString(lower):
		return model.PriorityLow
	case reMedPriority.MatchString(lower):
		return model.PriorityMedium
	}
	return model.PriorityMedium
}

func matchTaskType(lower string) model.TaskType {
	switch {
	case reMeeting.MatchString(lower):
		return model.TaskTypeMeeting
	case reTraining.MatchString(lower):
		return model.TaskTypeTraining
	case reStudies.MatchString(lower):
		return model.TaskTypeStudies
	}
	return model.TaskTypeMeeting
}
