// Package recurrence computes occurrence dates for repeating tasks.
package recurrence

import (
	"strconv"
	"strings"
	"time"
)

// Type is the repetition period of a Rule.
type Type string

const (
	Daily   Type = "daily"
	Weekly  Type = "weekly"
	Monthly Type = "monthly"
)

// Rule describes periodic repetition. TimeOfDay is an optional "HH:MM"
// clock time pinned onto each occurrence.
type Rule struct {
	Type      Type   `json:"type"`
	Interval  int    `json:"interval"`
	TimeOfDay string `json:"time_of_day,omitempty"`
}

// Next computes the occurrence following due. The result is always strictly
// after due for any positive interval; a non-positive interval counts as 1.
func Next(r Rule, due time.Time) time.Time {
	interval := r.Interval
	if interval <= 0 {
		interval = 1
	}

	var next time.Time
	switch r.Type {
	case Weekly:
		next = due.AddDate(0, 0, 7*interval)
	case Monthly:
		next = due.AddDate(0, interval, 0)
	default:
		next = due.AddDate(0, 0, interval)
	}

	if h, m, ok := parseClock(r.TimeOfDay); ok {
		next = time.Date(next.Year(), next.Month(), next.Day(), h, m, 0, 0, next.Location())
	}
	return next
}

// Encode serializes a Rule for storage as "type:interval[:HH:MM]".
func Encode(r Rule) string {
	s := string(r.Type) + ":" + strconv.Itoa(r.Interval)
	if r.TimeOfDay != "" {
		s += ":" + r.TimeOfDay
	}
	return s
}

// Decode parses the storage form produced by Encode. Returns false for
// empty or malformed input.
func Decode(s string) (Rule, bool) {
	if s == "" {
		return Rule{}, false
	}
	parts := strings.SplitN(s, ":", 3)
	if len(parts) < 2 {
		return Rule{}, false
	}
	interval, err := strconv.Atoi(parts[1])
	if err != nil || interval <= 0 {
		return Rule{}, false
	}
	r := Rule{Type: Type(parts[0]), Interval: interval}
	switch r.Type {
	case Daily, Weekly, Monthly:
	default:
		return Rule{}, false
	}
	if len(parts) == 3 {
		if _, _, ok := parseClock(parts[2]); !ok {
			return Rule{}, false
		}
		r.TimeOfDay = parts[2]
	}
	return r, true
}

func parseClock(s string) (hour, minute int, ok bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, false
	}
	h, err1 := strconv.Atoi(s[:2])
	m, err2 := strconv.Atoi(s[3:])
	if err1 != nil || err2 != nil || h > 23 || m > 59 || h < 0 || m < 0 {
		return 0, 0, false
	}
	return h, m, true
}
