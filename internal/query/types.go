package query

import (
	"time"

	"smart-scheduler/internal/scheduler"
)

// Intent is one of the fixed query categories the classifier routes text
// into.
type Intent string

const (
	IntentListEvents      Intent = "list_events"
	IntentFindConflicts   Intent = "find_conflicts"
	IntentCheckAvail      Intent = "check_availability"
	IntentFindMeetingTime Intent = "find_meeting_time"
	IntentGetNextEvent    Intent = "get_next_event"
)

// DefaultMeetingMinutes applies when a find_meeting_time query names no
// duration.
const DefaultMeetingMinutes = 60

type ProcessInput struct {
	Text string
}

// ProcessOutput is the structured result of one dispatched query. Message is
// always a deterministic sentence built from the result. Conflicts and Slot
// are populated only by their respective intents.
type ProcessOutput struct {
	Intent      Intent
	Message     string
	WindowStart time.Time
	WindowEnd   time.Time
	Entries     []scheduler.Entry
	Conflicts   []scheduler.Conflict
	Slot        *scheduler.FreeSlot
}
