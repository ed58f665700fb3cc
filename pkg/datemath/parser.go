package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
	"may": time.May, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November, "dec": time.December,
}

const weekdayPattern = `(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`

var (
	reInDuration  = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)
	reISODate     = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	reNextWeekOn  = regexp.MustCompile(`\bnext\s+week\s+(?:on\s+)?` + weekdayPattern + `\b`)
	reNextWeekday = regexp.MustCompile(`\bnext\s+` + weekdayPattern + `\b`)
	reOnWeekday   = regexp.MustCompile(`\bon\s+` + weekdayPattern + `\b`)
	reMonthDay    = regexp.MustCompile(`\b(?:on\s+)?(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t|tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
	reRelativeDay = regexp.MustCompile(`\b(today|tomorrow|yesterday)\b`)
	reInPhrase    = regexp.MustCompile(`\bin\s+\d+\s+(?:days?|weeks?|months?)\b`)
	reWindow      = regexp.MustCompile(`\b(later\s+this\s+month|this\s+week|next\s+week|this\s+month|next\s+month)\b`)
)

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParserIn creates a parser for an already loaded location.
func NewParserIn(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

func (p *Parser) Location() *time.Location { return p.location }

// Parse resolves a relative date phrase against baseTime. Unknown phrases
// resolve to baseTime's date.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	// Fallback: treat unknown as today
	return p.startOfDay(baseTime), nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := reInDuration.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}
	return p.upcoming(baseTime, targetWeekday), nil
}

// upcoming is the first target weekday strictly after baseTime's date.
func (p *Parser) upcoming(baseTime time.Time, target time.Weekday) time.Time {
	base := p.startOfDay(baseTime)
	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return base.AddDate(0, 0, daysUntil)
}

// Match finds the first concrete date named in free text. Phrases are tried
// from most to least specific.
func (p *Parser) Match(text string, baseTime time.Time) (Match, bool) {
	lower := strings.ToLower(text)
	base := p.startOfDay(baseTime)

	if m := reISODate.FindStringSubmatch(lower); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		if date, ok := p.date(y, time.Month(mo), d); ok {
			return Match{Date: date, Fragment: m[0]}, true
		}
	}

	if m := reNextWeekOn.FindStringSubmatch(lower); m != nil {
		monday := p.upcoming(base, time.Monday)
		offset := (int(weekdays[m[1]]) - int(time.Monday) + 7) % 7
		return Match{Date: monday.AddDate(0, 0, offset), Fragment: m[0]}, true
	}

	if m := reNextWeekday.FindStringSubmatch(lower); m != nil {
		return Match{Date: p.upcoming(base, weekdays[m[1]]), Fragment: m[0]}, true
	}

	if m := reOnWeekday.FindStringSubmatch(lower); m != nil {
		return Match{Date: p.upcoming(base, weekdays[m[1]]), Fragment: m[0]}, true
	}

	if m := reMonthDay.FindStringSubmatch(lower); m != nil {
		d, _ := strconv.Atoi(m[2])
		mo := months[m[1][:3]]
		if date, ok := p.date(base.Year(), mo, d); ok {
			if date.Before(base) {
				date, ok = p.date(base.Year()+1, mo, d)
			}
			if ok {
				return Match{Date: date, Fragment: m[0]}, true
			}
		}
	}

	if m := reRelativeDay.FindString(lower); m != "" {
		date, _ := p.Parse(m, baseTime)
		return Match{Date: date, Fragment: m}, true
	}

	if m := reInPhrase.FindString(lower); m != "" {
		if date, err := p.Parse(m, baseTime); err == nil {
			return Match{Date: date, Fragment: m}, true
		}
	}

	return Match{}, false
}

// MatchWindow finds a vague range such as "this week" or "later this month".
// Ranges never start before baseTime's date.
func (p *Parser) MatchWindow(text string, baseTime time.Time, weekStart time.Weekday) (Window, bool) {
	m := reWindow.FindString(strings.ToLower(text))
	if m == "" {
		return Window{}, false
	}
	today := p.startOfDay(baseTime)
	week := today.AddDate(0, 0, -((int(today.Weekday()) - int(weekStart) + 7) % 7))
	month := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, p.location)

	w := Window{Fragment: m}
	switch strings.Join(strings.Fields(m), " ") {
	case "this week":
		w.Start, w.End = today, week.AddDate(0, 0, 7)
	case "next week":
		w.Start, w.End = week.AddDate(0, 0, 7), week.AddDate(0, 0, 14)
	case "this month":
		w.Start, w.End = today, month.AddDate(0, 1, 0)
	case "later this month":
		w.Start, w.End = today.AddDate(0, 0, 1), month.AddDate(0, 1, 0)
	case "next month":
		w.Start, w.End = month.AddDate(0, 1, 0), month.AddDate(0, 2, 0)
	}
	if !w.Start.Before(w.End) {
		return Window{}, false
	}
	return w, true
}

func (p *Parser) date(y int, m time.Month, d int) (time.Time, bool) {
	if m < time.January || m > time.December || d < 1 {
		return time.Time{}, false
	}
	t := time.Date(y, m, d, 0, 0, 0, 0, p.location)
	return t, t.Day() == d
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
