package model

import "time"

// ScheduledEvent is a calendar occurrence. Unlike a Task it always has both
// a start and end instant. ProviderID deduplicates events re-imported from
// an external calendar provider.
type ScheduledEvent struct {
	ID          string
	OwnerID     string
	Title       string
	Description string

	Start time.Time
	End   time.Time

	Location  string
	Attendees []string

	ProviderID string // external calendar id; "" for locally created events
	Channel    Channel

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationMinutes is the event's length in whole minutes.
func (e ScheduledEvent) DurationMinutes() int {
	return int(e.End.Sub(e.Start) / time.Minute)
}
