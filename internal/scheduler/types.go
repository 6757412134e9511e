package scheduler

import (
	"time"

	"smart-scheduler/internal/model"
)

// DefaultEntryMinutes is assumed for entries with no estimated duration.
const DefaultEntryMinutes = 30

// DefaultHorizonDays bounds free-slot search when the caller gives none.
const DefaultHorizonDays = 7

// Entry is a time-bound schedule item: a timed task or an event. Intervals
// are half-open [Start, End).
type Entry struct {
	ID    string
	Kind  string // "task" | "event"
	Title string
	Start time.Time
	End   time.Time
}

// Conflict pairs a candidate interval with an existing entry it overlaps.
type Conflict struct {
	Candidate Entry
	Existing  Entry
}

// FreeSlot is an open interval of at least the requested duration.
type FreeSlot struct {
	Start           time.Time
	End             time.Time
	DurationMinutes int
}

// Window names a preferred part of the day for free-slot search.
type Window string

const (
	WindowAny       Window = ""
	WindowMorning   Window = "morning"   // 9–12
	WindowAfternoon Window = "afternoon" // 13–17
	WindowEvening   Window = "evening"   // 18–21
)

// Hours returns the clock span of the window. WindowAny spans the union of
// the named windows.
func (w Window) Hours() (startHour, endHour int) {
	switch w {
	case WindowMorning:
		return 9, 12
	case WindowAfternoon:
		return 13, 17
	case WindowEvening:
		return 18, 21
	default:
		return 9, 21
	}
}

// --- UseCase Inputs ---

type CheckConflictsInput struct {
	Date            *time.Time // candidate day; nil → no conflicts
	TimeOfDay       string     // "HH:MM"; "" → no conflicts
	DurationMinutes int        // 0 → DefaultEntryMinutes
	Title           string     // optional label for the candidate
}

type FindSlotsInput struct {
	DurationMinutes int
	Window          Window
	HorizonDays     int // 0 → DefaultHorizonDays
	AvoidWeekends   bool
	From            time.Time // zero → now
}

type RescheduleInput struct {
	TaskID string
}

type OverviewInput struct {
	Date time.Time
}

// --- UseCase Outputs ---

type CheckConflictsOutput struct {
	HasConflicts bool
	Conflicts    []Conflict
}

type FindSlotsOutput struct {
	Slots []FreeSlot
}

type RescheduleOutput struct {
	Task       model.Task
	Window     Window
	Suggestion *FreeSlot // nil when no open slot inside the horizon
}

type OverviewOutput struct {
	Date             time.Time
	Entries          []Entry
	CommittedMinutes int
	EarliestStart    *time.Time
	LatestStart      *time.Time
}
