package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/scheduler"
	"smart-scheduler/internal/task/repository"
	"smart-scheduler/pkg/timetext"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository backed by in-memory slices for testing. Insertion order
// stands in for created_at ordering.
type mockRepository struct {
	tasks  []model.Task
	events []model.ScheduledEvent
}

func taskFromCreate(opt repository.CreateTaskOptions) model.Task {
	return model.Task{
		ID:               opt.ID,
		OwnerID:          opt.OwnerID,
		Title:            opt.Title,
		Description:      opt.Description,
		DueDate:          opt.DueDate,
		DueTime:          opt.DueTime,
		Priority:         opt.Priority,
		Category:         opt.Category,
		Location:         opt.Location,
		EstimatedMinutes: opt.EstimatedMinutes,
		Tags:             opt.Tags,
		Channel:          opt.Channel,
		Recurrence:       opt.Recurrence,
		NextDue:          opt.NextDue,
		ReminderAt:       opt.ReminderAt,
		Notes:            opt.Notes,
	}
}

func (m *mockRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	t := taskFromCreate(opt)
	m.tasks = append(m.tasks, t)
	return t, nil
}

func (m *mockRepository) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	for _, t := range m.tasks {
		if t.OwnerID != opt.OwnerID {
			continue
		}
		if opt.Completed != nil && t.Completed != *opt.Completed {
			continue
		}
		if opt.ID != "" && t.ID != opt.ID {
			continue
		}
		if opt.TitleExact != "" && t.Title != opt.TitleExact {
			continue
		}
		return t, nil
	}
	return model.Task{}, nil
}

func (m *mockRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	var out []model.Task
	for _, t := range m.tasks {
		if t.OwnerID != opt.OwnerID {
			continue
		}
		if opt.Completed != nil && t.Completed != *opt.Completed {
			continue
		}
		if opt.TitleLike != "" && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(opt.TitleLike)) {
			continue
		}
		if opt.Category != "" && t.Category != opt.Category {
			continue
		}
		if opt.MaxPriority > 0 && t.Priority > opt.MaxPriority {
			continue
		}
		if opt.DueOn != nil && (t.DueDate == nil || !t.DueDate.Equal(*opt.DueOn)) {
			continue
		}
		if opt.DueFrom != nil && (t.DueDate == nil || t.DueDate.Before(*opt.DueFrom)) {
			continue
		}
		if opt.DueBefore != nil && (t.DueDate == nil || !t.DueDate.Before(*opt.DueBefore)) {
			continue
		}
		out = append(out, t)
		if opt.Limit > 0 && len(out) == opt.Limit {
			break
		}
	}
	return out, nil
}

func (m *mockRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	for i, t := range m.tasks {
		if t.ID != opt.ID || t.OwnerID != opt.OwnerID {
			continue
		}
		t.Title = opt.Title
		t.Description = opt.Description
		t.DueDate = opt.DueDate
		t.DueTime = opt.DueTime
		t.Priority = opt.Priority
		t.Category = opt.Category
		t.Location = opt.Location
		t.EstimatedMinutes = opt.EstimatedMinutes
		t.Tags = opt.Tags
		t.Completed = opt.Completed
		t.CompletedAt = opt.CompletedAt
		t.Recurrence = opt.Recurrence
		t.NextDue = opt.NextDue
		t.ReminderAt = opt.ReminderAt
		t.Notes = opt.Notes
		m.tasks[i] = t
		return t, nil
	}
	return model.Task{}, nil
}

func (m *mockRepository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.ScheduledEvent, error) {
	e := model.ScheduledEvent{
		ID:          opt.ID,
		OwnerID:     opt.OwnerID,
		Title:       opt.Title,
		Description: opt.Description,
		Start:       opt.Start,
		End:         opt.End,
		Location:    opt.Location,
		Attendees:   opt.Attendees,
		ProviderID:  opt.ProviderID,
		Channel:     opt.Channel,
	}
	m.events = append(m.events, e)
	return e, nil
}

func (m *mockRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.ScheduledEvent, error) {
	var out []model.ScheduledEvent
	for _, e := range m.events {
		if e.OwnerID != opt.OwnerID {
			continue
		}
		if e.Start.Before(opt.To) && e.End.After(opt.From) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockRepository) UpsertProviderEvent(ctx context.Context, opt repository.CreateEventOptions) (model.ScheduledEvent, bool, error) {
	for i, e := range m.events {
		if e.OwnerID == opt.OwnerID && e.ProviderID != "" && e.ProviderID == opt.ProviderID {
			e.Title = opt.Title
			e.Start = opt.Start
			e.End = opt.End
			m.events[i] = e
			return e, false, nil
		}
	}
	e, _ := m.CreateEvent(ctx, opt)
	return e, true, nil
}

func (m *mockRepository) InsertQueryLog(ctx context.Context, opt repository.InsertQueryLogOptions) error {
	return nil
}

// Mock scheduler recording the last conflict-check input.
type mockScheduler struct {
	conflicts          []scheduler.Conflict
	lastConflictsInput scheduler.CheckConflictsInput
}

func (m *mockScheduler) CheckConflicts(ctx context.Context, sc model.Scope, input scheduler.CheckConflictsInput) (scheduler.CheckConflictsOutput, error) {
	m.lastConflictsInput = input
	return scheduler.CheckConflictsOutput{
		HasConflicts: len(m.conflicts) > 0,
		Conflicts:    m.conflicts,
	}, nil
}

func (m *mockScheduler) FindSlots(ctx context.Context, sc model.Scope, input scheduler.FindSlotsInput) (scheduler.FindSlotsOutput, error) {
	return scheduler.FindSlotsOutput{}, nil
}

func (m *mockScheduler) SuggestReschedule(ctx context.Context, sc model.Scope, input scheduler.RescheduleInput) (scheduler.RescheduleOutput, error) {
	return scheduler.RescheduleOutput{}, nil
}

func (m *mockScheduler) Overview(ctx context.Context, sc model.Scope, input scheduler.OverviewInput) (scheduler.OverviewOutput, error) {
	return scheduler.OverviewOutput{}, nil
}

// newTestUseCase wires a usecase over the mocks with a fixed clock and
// deterministic ids.
func newTestUseCase(repo *mockRepository, sched *mockScheduler, now time.Time) *implUseCase {
	parser, err := timetext.NewParser("UTC")
	if err != nil {
		panic(err)
	}
	uc := New(&mockLogger{}, repo, parser, sched)
	uc.now = func() time.Time { return now }
	seq := 0
	uc.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return uc
}
