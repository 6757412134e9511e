package model

import (
	"time"

	"smart-scheduler/pkg/recurrence"
)

// Channel records how an item was captured.
type Channel string

const (
	ChannelAPI      Channel = "api"
	ChannelTelegram Channel = "telegram"
	ChannelSync     Channel = "sync"
)

// Task is a user-owned unit of work.
type Task struct {
	ID          string // opaque short code, unique
	OwnerID     string
	Title       string
	Description string

	DueDate *time.Time // date component only; nil when undated
	DueTime string     // "HH:MM" minute precision; "" when no time-of-day

	Priority         int // 1 (most urgent) … 5
	Category         string
	Location         string
	EstimatedMinutes int // 0 when unknown
	Tags             []string

	Completed   bool
	CompletedAt *time.Time

	Channel    Channel
	Recurrence *recurrence.Rule
	NextDue    *time.Time // only meaningful when Recurrence is set
	ReminderAt *time.Time
	Notes      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DueInstant combines DueDate and DueTime into a single instant in loc.
// Returns nil when the task has no due date. Date-only tasks resolve to
// midnight. DueDate is a civil date: its year/month/day are read as-is,
// never converted through another zone first.
func (t Task) DueInstant(loc *time.Location) *time.Time {
	if t.DueDate == nil {
		return nil
	}
	hour, minute := 0, 0
	if len(t.DueTime) == 5 && t.DueTime[2] == ':' {
		hour = int(t.DueTime[0]-'0')*10 + int(t.DueTime[1]-'0')
		minute = int(t.DueTime[3]-'0')*10 + int(t.DueTime[4]-'0')
	}
	at := time.Date(t.DueDate.Year(), t.DueDate.Month(), t.DueDate.Day(), hour, minute, 0, 0, loc)
	return &at
}

// IsRecurring reports whether the task carries a recurrence rule.
func (t Task) IsRecurring() bool {
	return t.Recurrence != nil
}
