package usecase

import (
	"context"
	"testing"
	"time"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/task"
)

func TestUpdateFromTextReschedules(t *testing.T) {
	// Monday 2024-01-15.
	now := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	due := time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC)
	repo := &mockRepository{
		tasks: []model.Task{
			{
				ID: "t1", OwnerID: "owner-1", Title: "dentist",
				DueDate: &due, DueTime: "10:00", Priority: 3, Category: "personal",
			},
		},
	}
	uc := newTestUseCase(repo, &mockScheduler{}, now)

	out, err := uc.UpdateFromText(context.Background(), model.Scope{OwnerID: "owner-1"}, task.UpdateFromTextInput{
		Identifier: "dentist",
		Text:       "move to friday at 3pm",
	})
	if err != nil {
		t.Fatalf("UpdateFromText() error = %v", err)
	}

	wantDay := time.Date(2024, time.January, 19, 0, 0, 0, 0, time.UTC)
	if out.Task.DueDate == nil || !out.Task.DueDate.Equal(wantDay) {
		t.Errorf("DueDate = %v, want %v", out.Task.DueDate, wantDay)
	}
	if out.Task.DueTime != "15:00" {
		t.Errorf("DueTime = %q, want \"15:00\"", out.Task.DueTime)
	}
	// Attributes the text does not name keep their values.
	if out.Task.Title != "dentist" {
		t.Errorf("Title = %q, want unchanged", out.Task.Title)
	}
	if out.Task.Priority != 3 {
		t.Errorf("Priority = %d, want unchanged 3", out.Task.Priority)
	}
	if out.Task.Category != "personal" {
		t.Errorf("Category = %q, want unchanged", out.Task.Category)
	}
	if out.Message != "Updated: dentist" {
		t.Errorf("Message = %q", out.Message)
	}
}

func TestUpdateFromTextPriorityOnly(t *testing.T) {
	now := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	due := time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC)
	repo := &mockRepository{
		tasks: []model.Task{
			{ID: "t1", OwnerID: "owner-1", Title: "file taxes", DueDate: &due, DueTime: "09:00", Priority: 3},
		},
	}
	uc := newTestUseCase(repo, &mockScheduler{}, now)

	out, err := uc.UpdateFromText(context.Background(), model.Scope{OwnerID: "owner-1"}, task.UpdateFromTextInput{
		Identifier: "t1",
		Text:       "make it urgent",
	})
	if err != nil {
		t.Fatalf("UpdateFromText() error = %v", err)
	}
	if out.Task.Priority != 1 {
		t.Errorf("Priority = %d, want 1", out.Task.Priority)
	}
	if out.Task.DueDate == nil || !out.Task.DueDate.Equal(due) || out.Task.DueTime != "09:00" {
		t.Errorf("due changed: %v %q, want unchanged", out.Task.DueDate, out.Task.DueTime)
	}
}

func TestUpdateFromTextNotFound(t *testing.T) {
	uc := newTestUseCase(&mockRepository{}, &mockScheduler{}, time.Now())
	_, err := uc.UpdateFromText(context.Background(), model.Scope{OwnerID: "owner-1"}, task.UpdateFromTextInput{
		Identifier: "ghost",
		Text:       "tomorrow",
	})
	if err != task.ErrTaskNotFound {
		t.Errorf("error = %v, want ErrTaskNotFound", err)
	}
}

func TestUpdateFromTextEmptyInput(t *testing.T) {
	uc := newTestUseCase(&mockRepository{}, &mockScheduler{}, time.Now())
	_, err := uc.UpdateFromText(context.Background(), model.Scope{OwnerID: "owner-1"}, task.UpdateFromTextInput{Identifier: "t1"})
	if err != task.ErrEmptyInput {
		t.Errorf("error = %v, want ErrEmptyInput", err)
	}
}
