package timetext

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves natural-language temporal phrases against a reference
// instant in a fixed IANA timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone string,
// e.g. "Asia/Ho_Chi_Minh".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

var (
	// "14:30", "2:30pm", "at 2:30 pm"
	reClockMinute = regexp.MustCompile(`\b(?:at\s+)?(\d{1,2}):(\d{2})\s*(am|pm)?\b`)
	// "at 2pm", "2pm", "at 14"
	reClockHour = regexp.MustCompile(`\b(?:at\s+(\d{1,2})\s*(am|pm)?|(\d{1,2})\s*(am|pm))\b`)
	// "in 3 days", "in 2 weeks"
	reInDays = regexp.MustCompile(`\bin (\d+) (day|days|week|weeks)\b`)
	// "in 30 minutes", "in 2 hours"
	reInClock = regexp.MustCompile(`\bin (\d+) (minute|minutes|hour|hours)\b`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	reWeekday = regexp.MustCompile(`\b(?:(next|on|this)\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)

	// Named parts of the day with fixed clock times.
	dayparts = []struct {
		word string
		hour int
	}{
		{"morning", MorningHour},
		{"afternoon", AfternoonHour},
		{"evening", EveningHour},
		{"tonight", TonightHour},
		{"noon", 12},
	}
)

// Parse resolves text against ref. It never fails: a text with no temporal
// expression yields a context starting DefaultLeadTime after ref.
func (p *Parser) Parse(text string, ref time.Time) TimeContext {
	lower := strings.ToLower(text)
	ref = ref.In(p.location)

	day, daySrc, hasDay := p.findDay(lower, ref)
	hour, minute, clockSrc, hasClock := findClock(lower)

	switch {
	case hasDay && hasClock:
		start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, p.location)
		return TimeContext{
			Start:      start,
			End:        start.Add(pointDuration),
			SourceText: joinSource(daySrc, clockSrc),
			HasClock:   true,
		}

	case hasDay:
		start := p.startOfDay(day)
		return TimeContext{
			Start:      start,
			End:        start.AddDate(0, 0, 1),
			SourceText: daySrc,
		}

	case hasClock:
		// Bare clock time with no date qualifier: if the time has already
		// elapsed today, roll forward to the same time tomorrow.
		start := time.Date(ref.Year(), ref.Month(), ref.Day(), hour, minute, 0, 0, p.location)
		if !start.After(ref) {
			start = start.AddDate(0, 0, 1)
		}
		return TimeContext{
			Start:      start,
			End:        start.Add(pointDuration),
			SourceText: clockSrc,
			HasClock:   true,
		}
	}

	// "in N minutes/hours" — relative offset from the reference instant.
	if m := reInClock.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		unit := time.Minute
		if strings.HasPrefix(m[2], "hour") {
			unit = time.Hour
		}
		start := ref.Add(time.Duration(n) * unit)
		return TimeContext{
			Start:      start,
			End:        start.Add(pointDuration),
			SourceText: m[0],
			HasClock:   true,
		}
	}

	// No temporal expression at all.
	start := ref.Add(DefaultLeadTime)
	return TimeContext{Start: start, End: start.Add(pointDuration), HasClock: true}
}

// findDay locates a date-bearing phrase and returns the anchored day
// (any clock fields are resolved separately).
func (p *Parser) findDay(lower string, ref time.Time) (time.Time, string, bool) {
	if strings.Contains(lower, "tomorrow") {
		return ref.AddDate(0, 0, 1), "tomorrow", true
	}
	for _, w := range []string{"today", "tonight", "this morning", "this afternoon", "this evening"} {
		if strings.Contains(lower, w) {
			return ref, w, true
		}
	}
	if strings.Contains(lower, "next week") {
		return p.startOfWeek(ref).AddDate(0, 0, 7), "next week", true
	}
	if m := reWeekday.FindStringSubmatch(lower); m != nil {
		target := weekdays[m[2]]
		days := int(target - ref.Weekday())
		if days <= 0 {
			days += 7
		}
		return ref.AddDate(0, 0, days), strings.TrimSpace(m[0]), true
	}
	if m := reInDays.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		if strings.HasPrefix(m[2], "week") {
			n *= 7
		}
		return ref.AddDate(0, 0, n), m[0], true
	}
	return time.Time{}, "", false
}

// findClock locates an explicit or named time-of-day.
func findClock(lower string) (hour, minute int, src string, ok bool) {
	if m := reClockMinute.FindStringSubmatch(lower); m != nil {
		h, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		if h <= 23 && mm <= 59 {
			return to24(h, m[3]), mm, strings.TrimSpace(m[0]), true
		}
	}
	if m := reClockHour.FindStringSubmatch(lower); m != nil {
		digits, ampm := m[1], m[2]
		if digits == "" {
			digits, ampm = m[3], m[4]
		}
		h, _ := strconv.Atoi(digits)
		if h <= 23 {
			return to24(h, ampm), 0, strings.TrimSpace(m[0]), true
		}
	}
	for _, dp := range dayparts {
		if strings.Contains(lower, dp.word) {
			return dp.hour, 0, dp.word, true
		}
	}
	return 0, 0, "", false
}

// to24 converts a 12-hour value with optional am/pm marker to 24-hour.
func to24(h int, ampm string) int {
	switch ampm {
	case "am":
		if h == 12 {
			return 0
		}
	case "pm":
		if h < 12 {
			return h + 12
		}
	}
	return h
}

func joinSource(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + " " + b
}

// startOfDay returns midnight at the start of t's day in the parser's zone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// startOfWeek returns midnight on the Monday of t's week.
func (p *Parser) startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return p.startOfDay(t.AddDate(0, 0, -(weekday - 1)))
}
