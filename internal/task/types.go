package task

import (
	"smart-scheduler/internal/model"
	"smart-scheduler/internal/scheduler"
)

// Filter is the task-listing category classified from free text.
type Filter string

const (
	FilterToday    Filter = "today"
	FilterTomorrow Filter = "tomorrow"
	FilterWeek     Filter = "week"
	FilterOverdue  Filter = "overdue"
	FilterCategory Filter = "category"
	FilterPriority Filter = "priority"
	FilterAll      Filter = "all"
)

type CreateFromTextInput struct {
	Text    string
	Channel model.Channel
}

// CreateFromTextOutput carries the persisted record plus any conflicts the
// candidate slot overlapped. Event is set only for schedule commands that
// resolved to a concrete interval.
type CreateFromTextOutput struct {
	Task      model.Task
	Event     *model.ScheduledEvent
	Message   string
	Conflicts []scheduler.Conflict
}

type UpdateFromTextInput struct {
	Identifier string
	Text       string
}

type UpdateFromTextOutput struct {
	Task    model.Task
	Message string
}

type CompleteInput struct {
	Identifier string
}

// CompleteOutput returns the completed task and, for recurring tasks, the
// newly materialized next instance.
type CompleteOutput struct {
	Task    model.Task
	Next    *model.Task
	Message string
}

type ListInput struct {
	Filter string // free text; classified into a Filter
}

type ListOutput struct {
	Filter Filter
	Tasks  []model.Task
}
