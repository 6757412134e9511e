package usecase

import (
	"context"
	"testing"
	"time"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/task"
	"smart-scheduler/pkg/recurrence"
)

func TestCompleteSimpleTask(t *testing.T) {
	now := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	due := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	repo := &mockRepository{
		tasks: []model.Task{
			{ID: "t1", OwnerID: "owner-1", Title: "buy milk", DueDate: &due},
		},
	}
	uc := newTestUseCase(repo, &mockScheduler{}, now)

	out, err := uc.Complete(context.Background(), model.Scope{OwnerID: "owner-1"}, task.CompleteInput{Identifier: "t1"})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if !out.Task.Completed {
		t.Error("task not marked completed")
	}
	if out.Task.CompletedAt == nil || !out.Task.CompletedAt.Equal(now) {
		t.Errorf("CompletedAt = %v, want %v", out.Task.CompletedAt, now)
	}
	if out.Next != nil {
		t.Error("non-recurring task must not spawn a next instance")
	}
	if out.Message != "Completed: buy milk" {
		t.Errorf("Message = %q", out.Message)
	}
}

func TestCompleteRecurringSpawnsNextInstance(t *testing.T) {
	now := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	due := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	rule := &recurrence.Rule{Type: recurrence.Weekly, Interval: 1}
	repo := &mockRepository{
		tasks: []model.Task{
			{
				ID: "t1", OwnerID: "owner-1", Title: "weekly report",
				DueDate: &due, DueTime: "09:00", Recurrence: rule,
			},
		},
	}
	uc := newTestUseCase(repo, &mockScheduler{}, now)

	out, err := uc.Complete(context.Background(), model.Scope{OwnerID: "owner-1"}, task.CompleteInput{Identifier: "t1"})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	// The completed instance keeps its own due date and rule.
	if !out.Task.DueDate.Equal(due) {
		t.Errorf("completed DueDate = %v, want unchanged %v", out.Task.DueDate, due)
	}
	if out.Task.Recurrence == nil {
		t.Error("completed instance lost its recurrence rule")
	}

	if out.Next == nil {
		t.Fatal("expected a next instance")
	}
	wantNext := time.Date(2024, time.January, 22, 0, 0, 0, 0, time.UTC)
	if out.Next.DueDate == nil || !out.Next.DueDate.Equal(wantNext) {
		t.Errorf("next DueDate = %v, want %v", out.Next.DueDate, wantNext)
	}
	if out.Next.DueTime != "09:00" {
		t.Errorf("next DueTime = %q, want \"09:00\"", out.Next.DueTime)
	}
	if out.Next.ID == out.Task.ID {
		t.Error("next instance must be a new record")
	}
	if out.Next.Completed {
		t.Error("next instance must start incomplete")
	}
	if len(repo.tasks) != 2 {
		t.Errorf("stored tasks = %d, want 2", len(repo.tasks))
	}
}

func TestCompleteRecurringPinsRuleTime(t *testing.T) {
	now := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	due := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	rule := &recurrence.Rule{Type: recurrence.Daily, Interval: 1, TimeOfDay: "18:00"}
	repo := &mockRepository{
		tasks: []model.Task{
			{ID: "t1", OwnerID: "owner-1", Title: "journal", DueDate: &due, Recurrence: rule},
		},
	}
	uc := newTestUseCase(repo, &mockScheduler{}, now)

	out, err := uc.Complete(context.Background(), model.Scope{OwnerID: "owner-1"}, task.CompleteInput{Identifier: "journal"})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if out.Next == nil {
		t.Fatal("expected a next instance")
	}
	if out.Next.DueTime != "18:00" {
		t.Errorf("next DueTime = %q, want the rule's \"18:00\"", out.Next.DueTime)
	}
}

func TestCompleteNotFound(t *testing.T) {
	uc := newTestUseCase(&mockRepository{}, &mockScheduler{}, time.Now())
	_, err := uc.Complete(context.Background(), model.Scope{OwnerID: "owner-1"}, task.CompleteInput{Identifier: "nothing"})
	if err != task.ErrTaskNotFound {
		t.Errorf("error = %v, want ErrTaskNotFound", err)
	}
}
