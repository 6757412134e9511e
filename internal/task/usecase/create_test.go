package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/scheduler"
	"smart-scheduler/internal/task"
)

func TestCreateFromTextScheduleCommand(t *testing.T) {
	// Reference instant 2024-01-15T10:00:00Z, a Monday.
	now := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	sc := model.Scope{OwnerID: "owner-1"}
	repo := &mockRepository{}
	sched := &mockScheduler{}
	uc := newTestUseCase(repo, sched, now)

	out, err := uc.CreateFromText(context.Background(), sc, task.CreateFromTextInput{
		Text:    "schedule team meeting tomorrow at 2pm",
		Channel: model.ChannelAPI,
	})
	if err != nil {
		t.Fatalf("CreateFromText() error = %v", err)
	}

	if out.Task.Title != "team" {
		t.Errorf("Title = %q, want \"team\"", out.Task.Title)
	}
	wantDay := time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC)
	if out.Task.DueDate == nil || !out.Task.DueDate.Equal(wantDay) {
		t.Errorf("DueDate = %v, want %v", out.Task.DueDate, wantDay)
	}
	if out.Task.DueTime != "14:00" {
		t.Errorf("DueTime = %q, want \"14:00\"", out.Task.DueTime)
	}
	if !strings.Contains(out.Message, "Scheduled: team") {
		t.Errorf("Message = %q, want it to contain \"Scheduled: team\"", out.Message)
	}

	if out.Event == nil {
		t.Fatal("expected a linked calendar event for a schedule command")
	}
	wantStart := time.Date(2024, time.January, 16, 14, 0, 0, 0, time.UTC)
	if !out.Event.Start.Equal(wantStart) {
		t.Errorf("Event.Start = %v, want %v", out.Event.Start, wantStart)
	}
	if got := out.Event.End.Sub(out.Event.Start); got != 30*time.Minute {
		t.Errorf("event length = %v, want 30m default", got)
	}

	// The candidate slot was checked before the insert.
	if sched.lastConflictsInput.TimeOfDay != "14:00" {
		t.Errorf("conflict check TimeOfDay = %q, want \"14:00\"", sched.lastConflictsInput.TimeOfDay)
	}
}

func TestCreateFromTextReminderCommand(t *testing.T) {
	now := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	sc := model.Scope{OwnerID: "owner-1"}
	uc := newTestUseCase(&mockRepository{}, &mockScheduler{}, now)

	out, err := uc.CreateFromText(context.Background(), sc, task.CreateFromTextInput{
		Text:    "remind me to call John tomorrow at 3pm",
		Channel: model.ChannelAPI,
	})
	if err != nil {
		t.Fatalf("CreateFromText() error = %v", err)
	}

	if out.Task.Title != "call John" {
		t.Errorf("Title = %q, want \"call John\"", out.Task.Title)
	}
	if out.Task.DueTime != "15:00" {
		t.Errorf("DueTime = %q, want \"15:00\"", out.Task.DueTime)
	}
	wantDay := time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC)
	if out.Task.DueDate == nil || !out.Task.DueDate.Equal(wantDay) {
		t.Errorf("DueDate = %v, want %v", out.Task.DueDate, wantDay)
	}
	if !strings.Contains(out.Message, "Reminder set: call John") {
		t.Errorf("Message = %q, want it to contain \"Reminder set: call John\"", out.Message)
	}
	if out.Event != nil {
		t.Error("reminder commands must not create calendar events")
	}
}

func TestCreateFromTextDefaults(t *testing.T) {
	now := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	sc := model.Scope{OwnerID: "owner-1"}
	uc := newTestUseCase(&mockRepository{}, &mockScheduler{}, now)

	out, err := uc.CreateFromText(context.Background(), sc, task.CreateFromTextInput{
		Text:    "buy milk",
		Channel: model.ChannelAPI,
	})
	if err != nil {
		t.Fatalf("CreateFromText() error = %v", err)
	}

	// No temporal phrase: due falls back to one hour from the reference.
	if out.Task.DueTime != "11:00" {
		t.Errorf("DueTime = %q, want \"11:00\"", out.Task.DueTime)
	}
	wantDay := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	if out.Task.DueDate == nil || !out.Task.DueDate.Equal(wantDay) {
		t.Errorf("DueDate = %v, want %v", out.Task.DueDate, wantDay)
	}
	if out.Task.Priority != 3 {
		t.Errorf("Priority = %d, want default 3", out.Task.Priority)
	}
	if !strings.Contains(out.Message, "Added: buy milk") {
		t.Errorf("Message = %q, want it to contain \"Added: buy milk\"", out.Message)
	}
}

func TestCreateFromTextRecurring(t *testing.T) {
	now := time.Date(2024, time.January, 15, 8, 0, 0, 0, time.UTC)
	sc := model.Scope{OwnerID: "owner-1"}
	uc := newTestUseCase(&mockRepository{}, &mockScheduler{}, now)

	out, err := uc.CreateFromText(context.Background(), sc, task.CreateFromTextInput{
		Text:    "water the plants every morning",
		Channel: model.ChannelAPI,
	})
	if err != nil {
		t.Fatalf("CreateFromText() error = %v", err)
	}

	if !out.Task.IsRecurring() {
		t.Fatal("expected a recurrence rule")
	}
	if out.Task.Recurrence.TimeOfDay != "09:00" {
		t.Errorf("Recurrence.TimeOfDay = %q, want \"09:00\"", out.Task.Recurrence.TimeOfDay)
	}
}

func TestCreateFromTextSurfacesConflicts(t *testing.T) {
	now := time.Date(2024, time.January, 15, 8, 0, 0, 0, time.UTC)
	sc := model.Scope{OwnerID: "owner-1"}
	sched := &mockScheduler{conflicts: []scheduler.Conflict{{Existing: scheduler.Entry{ID: "evt-1"}}}}
	repo := &mockRepository{}
	uc := newTestUseCase(repo, sched, now)

	out, err := uc.CreateFromText(context.Background(), sc, task.CreateFromTextInput{
		Text:    "dentist appointment today at 10am",
		Channel: model.ChannelAPI,
	})
	if err != nil {
		t.Fatalf("CreateFromText() error = %v", err)
	}

	// Conflicts warn but never block the creation.
	if len(out.Conflicts) != 1 {
		t.Fatalf("conflicts = %d, want 1", len(out.Conflicts))
	}
	if len(repo.tasks) != 1 {
		t.Errorf("tasks persisted = %d, want 1", len(repo.tasks))
	}
}

func TestCreateFromTextEmptyInput(t *testing.T) {
	uc := newTestUseCase(&mockRepository{}, &mockScheduler{}, time.Now())
	_, err := uc.CreateFromText(context.Background(), model.Scope{OwnerID: "owner-1"}, task.CreateFromTextInput{Text: "   "})
	if err != task.ErrEmptyInput {
		t.Errorf("error = %v, want ErrEmptyInput", err)
	}
}
