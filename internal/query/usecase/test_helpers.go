package usecase

import (
	"context"
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

// Mock repository backed by in-memory slices for testing
type mockRepository struct {
	tasks  []model.Task
	events []model.ScheduledEvent

	queryLogs   []repository.InsertQueryLogOptions
	queryLogErr error
}

func (m *mockRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockRepository) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
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
		if opt.DueFrom != nil && (t.DueDate == nil || t.DueDate.Before(*opt.DueFrom)) {
			continue
		}
		if opt.DueBefore != nil && (t.DueDate == nil || !t.DueDate.Before(*opt.DueBefore)) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *mockRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockRepository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.ScheduledEvent, error) {
	return model.ScheduledEvent{}, nil
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
	return model.ScheduledEvent{}, false, nil
}

func (m *mockRepository) InsertQueryLog(ctx context.Context, opt repository.InsertQueryLogOptions) error {
	if m.queryLogErr != nil {
		return m.queryLogErr
	}
	m.queryLogs = append(m.queryLogs, opt)
	return nil
}

// Mock scheduler recording the last FindSlots input.
type mockScheduler struct {
	slots          []scheduler.FreeSlot
	lastSlotsInput scheduler.FindSlotsInput
}

func (m *mockScheduler) CheckConflicts(ctx context.Context, sc model.Scope, input scheduler.CheckConflictsInput) (scheduler.CheckConflictsOutput, error) {
	return scheduler.CheckConflictsOutput{}, nil
}

func (m *mockScheduler) FindSlots(ctx context.Context, sc model.Scope, input scheduler.FindSlotsInput) (scheduler.FindSlotsOutput, error) {
	m.lastSlotsInput = input
	return scheduler.FindSlotsOutput{Slots: m.slots}, nil
}

func (m *mockScheduler) SuggestReschedule(ctx context.Context, sc model.Scope, input scheduler.RescheduleInput) (scheduler.RescheduleOutput, error) {
	return scheduler.RescheduleOutput{}, nil
}

func (m *mockScheduler) Overview(ctx context.Context, sc model.Scope, input scheduler.OverviewInput) (scheduler.OverviewOutput, error) {
	return scheduler.OverviewOutput{}, nil
}

// newTestUseCase wires a usecase over the mocks with a fixed clock.
func newTestUseCase(repo *mockRepository, sched *mockScheduler, now time.Time) *implUseCase {
	parser, err := timetext.NewParser("UTC")
	if err != nil {
		panic(err)
	}
	uc := New(&mockLogger{}, repo, parser, sched)
	uc.now = func() time.Time { return now }
	return uc
}
