package timetext

import (
	"strings"

	"smart-scheduler/pkg/recurrence"
)

// recurrenceKeywords maps phrases to recurrence rules. Order matters:
// the first phrase found in the text wins.
var recurrenceKeywords = []struct {
	phrase string
	rule   recurrence.Rule
}{
	{"every morning", recurrence.Rule{Type: recurrence.Daily, Interval: 1, TimeOfDay: "09:00"}},
	{"every evening", recurrence.Rule{Type: recurrence.Daily, Interval: 1, TimeOfDay: "18:00"}},
	{"daily", recurrence.Rule{Type: recurrence.Daily, Interval: 1}},
	{"every day", recurrence.Rule{Type: recurrence.Daily, Interval: 1}},
	{"weekly", recurrence.Rule{Type: recurrence.Weekly, Interval: 1}},
	{"every week", recurrence.Rule{Type: recurrence.Weekly, Interval: 1}},
	{"monthly", recurrence.Rule{Type: recurrence.Monthly, Interval: 1}},
	{"every month", recurrence.Rule{Type: recurrence.Monthly, Interval: 1}},
}

// DetectRecurrence scans text for a recurrence phrase. This is a separate
// pass from Parse: absence simply means the item is not recurring.
func DetectRecurrence(text string) (recurrence.Rule, bool) {
	lower := strings.ToLower(text)
	for _, kw := range recurrenceKeywords {
		if strings.Contains(lower, kw.phrase) {
			return kw.rule, true
		}
	}
	return recurrence.Rule{}, false
}
