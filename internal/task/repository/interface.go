package repository

import (
	"context"

	"smart-scheduler/internal/model"
)

// Repository is the composed interface for the scheduling store.
type Repository interface {
	TaskRepository
	EventRepository
	QueryLogRepository
}

// TaskRepository defines data access for Task records. Lookups that find
// nothing return a zero-value Task (ID == "") without an error.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
}

// EventRepository defines data access for ScheduledEvent records.
type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.ScheduledEvent, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.ScheduledEvent, error)
	// UpsertProviderEvent inserts the event or, when an event with the same
	// owner and provider id already exists, refreshes it in place.
	// Reports whether a new row was created.
	UpsertProviderEvent(ctx context.Context, opt CreateEventOptions) (model.ScheduledEvent, bool, error)
}

// QueryLogRepository records processed natural-language queries for
// analytics. Callers treat failures as best-effort.
type QueryLogRepository interface {
	InsertQueryLog(ctx context.Context, opt InsertQueryLogOptions) error
}
