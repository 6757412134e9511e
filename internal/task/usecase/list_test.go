package usecase

import (
	"context"
	"testing"
	"time"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/task"
)

func TestClassifyFilter(t *testing.T) {
	tests := []struct {
		text         string
		want         task.Filter
		wantCategory string
	}{
		{"what's due today", task.FilterToday, ""},
		{"tomorrow", task.FilterTomorrow, ""},
		{"show me this week", task.FilterWeek, ""},
		{"anything overdue", task.FilterOverdue, ""},
		{"urgent stuff", task.FilterPriority, ""},
		{"work tasks", task.FilterCategory, "work"},
		{"grocery list", task.FilterCategory, "personal"},
		{"everything", task.FilterAll, ""},
		{"", task.FilterAll, ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			filter, category := classifyFilter(tt.text)
			if filter != tt.want {
				t.Errorf("classifyFilter(%q) = %q, want %q", tt.text, filter, tt.want)
			}
			if category != tt.wantCategory {
				t.Errorf("category = %q, want %q", category, tt.wantCategory)
			}
		})
	}
}

func TestList(t *testing.T) {
	// Monday 2024-01-15.
	now := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	sc := model.Scope{OwnerID: "owner-1"}

	today := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	thursday := time.Date(2024, time.January, 18, 0, 0, 0, 0, time.UTC)
	lastFriday := time.Date(2024, time.January, 12, 0, 0, 0, 0, time.UTC)

	repo := &mockRepository{
		tasks: []model.Task{
			{ID: "t1", OwnerID: "owner-1", Title: "standup notes", DueDate: &today, Priority: 3, Category: "work"},
			{ID: "t2", OwnerID: "owner-1", Title: "quarterly report", DueDate: &thursday, Priority: 2, Category: "work"},
			{ID: "t3", OwnerID: "owner-1", Title: "pay rent", DueDate: &lastFriday, Priority: 1, Category: "finance"},
			{ID: "t4", OwnerID: "owner-1", Title: "old chore", DueDate: &lastFriday, Priority: 4, Completed: true},
		},
	}
	uc := newTestUseCase(repo, &mockScheduler{}, now)

	tests := []struct {
		name       string
		filter     string
		wantFilter task.Filter
		wantIDs    []string
	}{
		{name: "today", filter: "due today", wantFilter: task.FilterToday, wantIDs: []string{"t1"}},
		{name: "week", filter: "this week", wantFilter: task.FilterWeek, wantIDs: []string{"t1", "t2"}},
		{name: "overdue", filter: "overdue", wantFilter: task.FilterOverdue, wantIDs: []string{"t3"}},
		{name: "priority", filter: "high priority", wantFilter: task.FilterPriority, wantIDs: []string{"t2", "t3"}},
		{name: "category", filter: "finance", wantFilter: task.FilterCategory, wantIDs: []string{"t3"}},
		{name: "all includes completed", filter: "", wantFilter: task.FilterAll, wantIDs: []string{"t1", "t2", "t3", "t4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.List(context.Background(), sc, task.ListInput{Filter: tt.filter})
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if out.Filter != tt.wantFilter {
				t.Errorf("Filter = %q, want %q", out.Filter, tt.wantFilter)
			}
			if len(out.Tasks) != len(tt.wantIDs) {
				t.Fatalf("tasks = %d, want %d", len(out.Tasks), len(tt.wantIDs))
			}
			got := map[string]bool{}
			for _, item := range out.Tasks {
				got[item.ID] = true
			}
			for _, id := range tt.wantIDs {
				if !got[id] {
					t.Errorf("missing task %q", id)
				}
			}
		})
	}
}
