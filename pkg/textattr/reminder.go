package textattr

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"smart-scheduler/pkg/timetext"
)

var (
	reRemindBefore = regexp.MustCompile(`(?i)\bremind me (\d+) (minutes?|hours?) before\b`)
	reNotifyNamed  = regexp.MustCompile(`(?i)\bnotify me (today|tomorrow) (morning|afternoon|evening)\b`)
	reAlertAt      = regexp.MustCompile(`(?i)\balert me at (\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)
)

// Reminder resolves one of three mutually exclusive reminder patterns into
// an absolute instant. due is the task's due instant (used by the relative
// form); ref anchors the named and absolute forms. Returns nil when no
// reminder phrase is present.
func Reminder(text string, due, ref time.Time, loc *time.Location) *time.Time {
	ref = ref.In(loc)

	if m := reRemindBefore.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		unit := time.Minute
		if strings.HasPrefix(strings.ToLower(m[2]), "hour") {
			unit = time.Hour
		}
		at := due.Add(-time.Duration(n) * unit)
		return &at
	}

	if m := reNotifyNamed.FindStringSubmatch(text); m != nil {
		day := ref
		if strings.EqualFold(m[1], "tomorrow") {
			day = ref.AddDate(0, 0, 1)
		}
		hour := timetext.MorningHour
		switch strings.ToLower(m[2]) {
		case "afternoon":
			hour = timetext.AfternoonHour
		case "evening":
			hour = timetext.EveningHour
		}
		at := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, loc)
		return &at
	}

	if m := reAlertAt.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		switch strings.ToLower(m[3]) {
		case "am":
			if hour == 12 {
				hour = 0
			}
		case "pm":
			if hour < 12 {
				hour += 12
			}
		}
		if hour > 23 || minute > 59 {
			return nil
		}
		at := time.Date(ref.Year(), ref.Month(), ref.Day(), hour, minute, 0, 0, loc)
		return &at
	}

	return nil
}
