// Package parser turns a free-text task request into a TaskDraft using
// deterministic rules.
package parser

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/pkg/datemath"
)

var ErrEmptyText = errors.New("text is required")

// Status reports whether the text named an exact start.
type Status string

const (
	StatusComplete Status = "complete"
	StatusPartial  Status = "partial"
)

const (
	FieldDate     = "date"
	FieldTime     = "time"
	FieldDuration = "durationMinutes"
)

// Result is the parsed draft. Missing lists critical fields the text did not
// state; a defaulted duration is reported there too.
type Result struct {
	Status  Status
	Draft   model.TaskDraft
	Missing []string
}

type Parser struct {
	dates     *datemath.Parser
	weekStart time.Weekday
	now       func() time.Time
}

// New builds a parser. now defaults to time.Now.
func New(dates *datemath.Parser, weekStart time.Weekday, now func() time.Time) *Parser {
	if now == nil {
		now = time.Now
	}
	return &Parser{dates: dates, weekStart: weekStart, now: now}
}

// Parse extracts a draft from text. prefs supplies the default duration.
func (p *Parser) Parse(text string, prefs model.Preferences) (Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, ErrEmptyText
	}
	lower := strings.ToLower(text)
	loc := p.dates.Location()
	now := p.now().In(loc)

	var (
		draft     model.TaskDraft
		missing   []string
		fragments []string
	)
	draft.TaskType = matchTaskType(lower)
	draft.Priority = matchPriority(lower)
	if m := rePriorityWord.FindString(lower); m != "" {
		fragments = append(fragments, m)
	}

	tm, hasTime := matchTimeRange(lower)
	if !hasTime {
		tm, hasTime = matchTime(lower)
	}
	if hasTime {
		fragments = append(fragments, tm.fragment)
	}

	if d, frag, ok := matchDuration(lower); ok {
		draft.DurationMinutes = d
		fragments = append(fragments, frag)
	} else if tm.duration > 0 {
		draft.DurationMinutes = tm.duration
	}

	date, hasDate := p.dates.Match(lower, now)
	if hasDate {
		day := date.Date
		draft.BestKnownDate = &day
		draft.ExplicitDate = true
		fragments = append(fragments, date.Fragment)
	} else if w, ok := p.dates.MatchWindow(lower, now, p.weekStart); ok {
		draft.WindowStart, draft.WindowEnd = &w.Start, &w.End
		fragments = append(fragments, w.Fragment)
	}

	if pt, frag := matchPartOfDay(lower); pt != "" {
		draft.PreferredTimeOfDay = pt
		fragments = append(fragments, frag)
	} else if hasTime {
		draft.PreferredTimeOfDay = partOfDayAt(tm.start)
	}

	if hasDate && hasTime {
		start := tm.start.On(date.Date)
		draft.Start = &start
	}
	if !hasDate {
		missing = append(missing, FieldDate)
	}
	if !hasTime {
		missing = append(missing, FieldTime)
	}
	if draft.DurationMinutes == 0 {
		draft.DurationMinutes = prefs.DurationOrDefault()
		missing = append(missing, FieldDuration)
	}

	draft.Title = title(text, fragments)

	res := Result{Status: StatusPartial, Draft: draft, Missing: missing}
	if draft.Start != nil {
		res.Status = StatusComplete
	}
	if res.Missing == nil {
		res.Missing = []string{}
	}
	return res, nil
}

const trimPunct = ",.;:!?-"

var (
	reSpaces  = regexp.MustCompile(`\s+`)
	edgeWords = map[string]bool{"at": true, "on": true, "for": true, "from": true, "in": true, "by": true, "the": true, "-": true}
)

// title removes the recognised fragments and dangling connectors.
func title(text string, fragments []string) string {
	out := text
	for _, f := range fragments {
		if f == "" {
			continue
		}
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(f))
		out = re.ReplaceAllString(out, " ")
	}

	words := strings.Fields(reSpaces.ReplaceAllString(out, " "))
	for len(words) > 0 && edgeWords[strings.ToLower(strings.Trim(words[len(words)-1], trimPunct))] {
		words = words[:len(words)-1]
	}
	for len(words) > 0 && edgeWords[strings.ToLower(words[0])] {
		words = words[1:]
	}
	// Drop connectors left dangling in the middle, e.g. "gym at on".
	kept := words[:0]
	for i, w := range words {
		if edgeWords[strings.ToLower(w)] && i+1 < len(words) && edgeWords[strings.ToLower(words[i+1])] {
			continue
		}
		kept = append(kept, w)
	}

	t := strings.Trim(strings.Join(kept, " "), " "+trimPunct)
	if t == "" {
		t = text
	}
	r, size := utf8.DecodeRuneInString(t)
	return string(unicode.ToUpper(r)) + t[size:]
}
