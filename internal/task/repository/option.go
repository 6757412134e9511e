package repository

import (
	"time"

	"smart-scheduler/internal/model"
	"smart-scheduler/pkg/recurrence"
)

// CreateTaskOptions holds the column values for a new task row.
type CreateTaskOptions struct {
	ID          string
	OwnerID     string
	Title       string
	Description string

	DueDate *time.Time
	DueTime string

	Priority         int
	Category         string
	Location         string
	EstimatedMinutes int
	Tags             []string

	Channel    model.Channel
	Recurrence *recurrence.Rule
	NextDue    *time.Time
	ReminderAt *time.Time
	Notes      string
}

// GetOneTaskOptions filters a single-task lookup. All non-zero fields are
// applied as AND conditions.
type GetOneTaskOptions struct {
	OwnerID    string
	ID         string
	TitleExact string
	Completed  *bool
}

// ListTasksOptions filters and pages a task listing.
type ListTasksOptions struct {
	OwnerID     string
	DueOn       *time.Time // matches the due calendar day
	DueFrom     *time.Time // due day >= this day
	DueBefore   *time.Time // due day < this day
	Completed   *bool
	Category    string
	MaxPriority int // priority <= MaxPriority when > 0
	TitleLike   string
	OrderBy     string // defaults to "created_at ASC"
	Limit       int
	Offset      int
}

// UpdateTaskOptions carries the full merged row; the use-case layer merges
// partial updates before calling the store.
type UpdateTaskOptions struct {
	ID      string
	OwnerID string

	Title       string
	Description string
	DueDate     *time.Time
	DueTime     string

	Priority         int
	Category         string
	Location         string
	EstimatedMinutes int
	Tags             []string

	Completed   bool
	CompletedAt *time.Time
	Recurrence  *recurrence.Rule
	NextDue     *time.Time
	ReminderAt  *time.Time
	Notes       string
}

// CreateEventOptions holds the column values for a new event row.
type CreateEventOptions struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Location    string
	Attendees   []string
	ProviderID  string
	Channel     model.Channel
}

// ListEventsOptions selects events overlapping the half-open [From, To)
// window for an owner.
type ListEventsOptions struct {
	OwnerID string
	From    time.Time
	To      time.Time
	Limit   int
}

// InsertQueryLogOptions records one processed query.
type InsertQueryLogOptions struct {
	OwnerID string
	Query   string
	Intent  string
}
