package http

import (
	"time"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/scheduler"
	"smart-scheduler/internal/task"
	"smart-scheduler/pkg/recurrence"
	"smart-scheduler/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Text string `json:"text" binding:"required,min=1,max=1000"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput(ch model.Channel) task.CreateFromTextInput {
	return task.CreateFromTextInput{
		Text:    r.Text,
		Channel: ch,
	}
}

type listReq struct {
	Filter string `form:"filter"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{Filter: r.Filter}
}

type updateReq struct {
	Ident string `json:"-"` // populated from URI param
	Text  string `json:"text" binding:"required,min=1,max=1000"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() task.UpdateFromTextInput {
	return task.UpdateFromTextInput{
		Identifier: r.Ident,
		Text:       r.Text,
	}
}

type completeReq struct {
	Ident string
}

func (r completeReq) toInput() task.CompleteInput {
	return task.CompleteInput{Identifier: r.Ident}
}

// --- Response DTOs ---

type taskResp struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"description,omitempty"`
	DueDate          *response.Date    `json:"due_date,omitempty"` // YYYY-MM-DD
	DueTime          string            `json:"due_time,omitempty"` // HH:MM
	Priority         int               `json:"priority"`
	Category         string            `json:"category,omitempty"`
	Location         string            `json:"location,omitempty"`
	EstimatedMinutes int               `json:"estimated_minutes,omitempty"`
	Tags             []string          `json:"tags,omitempty"`
	Completed        bool              `json:"completed"`
	CompletedAt      *time.Time        `json:"completed_at,omitempty"`
	Recurrence       string            `json:"recurrence,omitempty"`
	NextDue          *response.Date    `json:"next_due,omitempty"`
	ReminderAt       *time.Time        `json:"reminder_at,omitempty"`
	Channel          string            `json:"channel,omitempty"`
	CreatedAt        response.DateTime `json:"created_at"`
	UpdatedAt        response.DateTime `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:               t.ID,
		Title:            t.Title,
		Description:      t.Description,
		DueTime:          t.DueTime,
		Priority:         t.Priority,
		Category:         t.Category,
		Location:         t.Location,
		EstimatedMinutes: t.EstimatedMinutes,
		Tags:             t.Tags,
		Completed:        t.Completed,
		CompletedAt:      t.CompletedAt,
		ReminderAt:       t.ReminderAt,
		Channel:          string(t.Channel),
		CreatedAt:        response.DateTime(t.CreatedAt),
		UpdatedAt:        response.DateTime(t.UpdatedAt),
	}
	if t.DueDate != nil {
		d := response.Date(*t.DueDate)
		resp.DueDate = &d
	}
	if t.NextDue != nil {
		d := response.Date(*t.NextDue)
		resp.NextDue = &d
	}
	if t.Recurrence != nil {
		resp.Recurrence = recurrence.Encode(*t.Recurrence)
	}
	return resp
}

type eventResp struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Location string    `json:"location,omitempty"`
}

func newEventResp(e model.ScheduledEvent) eventResp {
	return eventResp{
		ID:       e.ID,
		Title:    e.Title,
		Start:    e.Start,
		End:      e.End,
		Location: e.Location,
	}
}

type entryResp struct {
	ID    string    `json:"id"`
	Kind  string    `json:"kind"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func newEntryResp(e scheduler.Entry) entryResp {
	return entryResp{
		ID:    e.ID,
		Kind:  e.Kind,
		Title: e.Title,
		Start: e.Start,
		End:   e.End,
	}
}

type conflictResp struct {
	Candidate entryResp `json:"candidate"`
	Existing  entryResp `json:"existing"`
}

func newConflictResps(conflicts []scheduler.Conflict) []conflictResp {
	if len(conflicts) == 0 {
		return nil
	}
	resps := make([]conflictResp, len(conflicts))
	for i, cf := range conflicts {
		resps[i] = conflictResp{
			Candidate: newEntryResp(cf.Candidate),
			Existing:  newEntryResp(cf.Existing),
		}
	}
	return resps
}

type createResp struct {
	Task      taskResp       `json:"task"`
	Event     *eventResp     `json:"event,omitempty"`
	Message   string         `json:"message"`
	Conflicts []conflictResp `json:"conflicts,omitempty"`
}

func newCreateResp(out task.CreateFromTextOutput) createResp {
	resp := createResp{
		Task:      newTaskResp(out.Task),
		Message:   out.Message,
		Conflicts: newConflictResps(out.Conflicts),
	}
	if out.Event != nil {
		ev := newEventResp(*out.Event)
		resp.Event = &ev
	}
	return resp
}

type listResp struct {
	Filter string     `json:"filter"`
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
}

func newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Filter: string(out.Filter),
		Tasks:  tasks,
		Total:  len(tasks),
	}
}

type updateResp struct {
	Task    taskResp `json:"task"`
	Message string   `json:"message"`
}

func newUpdateResp(out task.UpdateFromTextOutput) updateResp {
	return updateResp{
		Task:    newTaskResp(out.Task),
		Message: out.Message,
	}
}

type completeResp struct {
	Task    taskResp  `json:"task"`
	Next    *taskResp `json:"next,omitempty"`
	Message string    `json:"message"`
}

func newCompleteResp(out task.CompleteOutput) completeResp {
	resp := completeResp{
		Task:    newTaskResp(out.Task),
		Message: out.Message,
	}
	if out.Next != nil {
		next := newTaskResp(*out.Next)
		resp.Next = &next
	}
	return resp
}
