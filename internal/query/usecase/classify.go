package usecase

import (
	"strings"

	"smart-scheduler/internal/query"
	"smart-scheduler/pkg/timetext"
)

// intentKeywords is an ordered classification table. Earlier rows win so the
// more specific phrasings are checked before the broad ones.
var intentKeywords = []struct {
	intent   query.Intent
	keywords []string
}{
	{query.IntentFindConflicts, []string{"conflict", "overlap", "clash", "double book", "double-book"}},
	{query.IntentGetNextEvent, []string{"next event", "next meeting", "next appointment", "what's next", "whats next", "coming up"}},
	{query.IntentFindMeetingTime, []string{"find a time", "find time", "open slot", "free slot", "time for a", "when can"}},
	{query.IntentCheckAvail, []string{"am i free", "free", "available", "availability", "busy"}},
}

// classifyIntent routes text into a fixed set of intents. Unmatched text
// defaults to list_events.
func classifyIntent(text string) query.Intent {
	lower := strings.ToLower(text)
	for _, row := range intentKeywords {
		for _, kw := range row.keywords {
			if strings.Contains(lower, kw) {
				return row.intent
			}
		}
	}
	return query.IntentListEvents
}

// windowLabel names a resolved query window for message building.
type windowLabel string

const (
	labelToday    windowLabel = "today"
	labelTomorrow windowLabel = "tomorrow"
	labelThisWeek windowLabel = "this week"
	labelNextWeek windowLabel = "next week"
)

// findWindow picks the named window a query refers to. Queries without an
// explicit window mean today.
func (uc *implUseCase) findWindow(text string) (timetext.TimeContext, windowLabel) {
	lower := strings.ToLower(text)
	ref := uc.now()
	switch {
	case strings.Contains(lower, "tomorrow"):
		return uc.parser.Tomorrow(ref), labelTomorrow
	case strings.Contains(lower, "next week"):
		return uc.parser.NextWeek(ref), labelNextWeek
	case strings.Contains(lower, "this week"), strings.Contains(lower, "week"):
		return uc.parser.ThisWeek(ref), labelThisWeek
	default:
		return uc.parser.Today(ref), labelToday
	}
}
