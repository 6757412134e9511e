package usecase

import (
	"context"
	"time"

	"smart-scheduler/internal/model"
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
}

func (m *mockRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockRepository) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	for _, t := range m.tasks {
		if t.OwnerID != opt.OwnerID {
			continue
		}
		if opt.ID != "" && t.ID == opt.ID {
			return t, nil
		}
		if opt.TitleExact != "" && t.Title == opt.TitleExact {
			if opt.Completed != nil && t.Completed != *opt.Completed {
				continue
			}
			return t, nil
		}
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
		// The store compares due dates as civil-day strings; mirror that.
		if opt.DueFrom != nil && (t.DueDate == nil || t.DueDate.Format("2006-01-02") < opt.DueFrom.Format("2006-01-02")) {
			continue
		}
		if opt.DueBefore != nil && (t.DueDate == nil || t.DueDate.Format("2006-01-02") >= opt.DueBefore.Format("2006-01-02")) {
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
	return nil
}

// newTestUseCase wires a usecase over the mock repository with a fixed clock.
func newTestUseCase(repo *mockRepository, now time.Time) *implUseCase {
	return newTestUseCaseIn(repo, now, "UTC", 0)
}

// newTestUseCaseIn is newTestUseCase with an explicit timezone and default
// slot-search horizon.
func newTestUseCaseIn(repo *mockRepository, now time.Time, timezone string, horizonDays int) *implUseCase {
	parser, err := timetext.NewParser(timezone)
	if err != nil {
		panic(err)
	}
	uc := New(&mockLogger{}, repo, parser, horizonDays)
	uc.now = func() time.Time { return now }
	return uc
}
