package usecase

import (
	"context"
	"testing"
	"time"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/scheduler"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestOverlaps(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2024, time.January, 15, h, m, 0, 0, time.UTC)
	}
	entry := func(start, end time.Time) scheduler.Entry {
		return scheduler.Entry{Start: start, End: end}
	}

	tests := []struct {
		name string
		a, b scheduler.Entry
		want bool
	}{
		{
			name: "partial overlap",
			a:    entry(at(10, 0), at(11, 0)),
			b:    entry(at(10, 30), at(11, 30)),
			want: true,
		},
		{
			name: "containment",
			a:    entry(at(9, 0), at(12, 0)),
			b:    entry(at(10, 0), at(11, 0)),
			want: true,
		},
		{
			name: "identical intervals",
			a:    entry(at(10, 0), at(11, 0)),
			b:    entry(at(10, 0), at(11, 0)),
			want: true,
		},
		{
			name: "back to back is not a conflict",
			a:    entry(at(10, 0), at(11, 0)),
			b:    entry(at(11, 0), at(12, 0)),
			want: false,
		},
		{
			name: "disjoint",
			a:    entry(at(9, 0), at(10, 0)),
			b:    entry(at(14, 0), at(15, 0)),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("overlaps() = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckConflicts(t *testing.T) {
	now := time.Date(2024, time.January, 15, 8, 0, 0, 0, time.UTC)
	sc := model.Scope{OwnerID: "owner-1"}

	repo := &mockRepository{
		events: []model.ScheduledEvent{
			{
				ID:      "evt-1",
				OwnerID: "owner-1",
				Title:   "standup",
				Start:   time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC),
				End:     time.Date(2024, time.January, 15, 11, 0, 0, 0, time.UTC),
			},
		},
		tasks: []model.Task{
			{
				ID:               "task-1",
				OwnerID:          "owner-1",
				Title:            "review budget",
				DueDate:          date(2024, time.January, 15),
				DueTime:          "14:00",
				EstimatedMinutes: 60,
			},
		},
	}
	uc := newTestUseCase(repo, now)

	tests := []struct {
		name         string
		input        scheduler.CheckConflictsInput
		wantConflict bool
		wantExisting string
	}{
		{
			name: "overlapping event",
			input: scheduler.CheckConflictsInput{
				Date:            date(2024, time.January, 15),
				TimeOfDay:       "10:30",
				DurationMinutes: 60,
			},
			wantConflict: true,
			wantExisting: "evt-1",
		},
		{
			name: "overlapping timed task",
			input: scheduler.CheckConflictsInput{
				Date:            date(2024, time.January, 15),
				TimeOfDay:       "14:30",
				DurationMinutes: 30,
			},
			wantConflict: true,
			wantExisting: "task-1",
		},
		{
			name: "adjacent interval is free",
			input: scheduler.CheckConflictsInput{
				Date:            date(2024, time.January, 15),
				TimeOfDay:       "11:00",
				DurationMinutes: 60,
			},
			wantConflict: false,
		},
		{
			name: "default duration applied",
			input: scheduler.CheckConflictsInput{
				Date:      date(2024, time.January, 15),
				TimeOfDay: "10:45",
			},
			wantConflict: true,
			wantExisting: "evt-1",
		},
		{
			name:         "no date means no interval",
			input:        scheduler.CheckConflictsInput{TimeOfDay: "10:30"},
			wantConflict: false,
		},
		{
			name:         "no time of day means no interval",
			input:        scheduler.CheckConflictsInput{Date: date(2024, time.January, 15)},
			wantConflict: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.CheckConflicts(context.Background(), sc, tt.input)
			if err != nil {
				t.Fatalf("CheckConflicts() error = %v", err)
			}
			if out.HasConflicts != tt.wantConflict {
				t.Fatalf("HasConflicts = %v, want %v", out.HasConflicts, tt.wantConflict)
			}
			if tt.wantExisting != "" {
				if len(out.Conflicts) == 0 {
					t.Fatal("expected at least one conflict")
				}
				if got := out.Conflicts[0].Existing.ID; got != tt.wantExisting {
					t.Errorf("Existing.ID = %q, want %q", got, tt.wantExisting)
				}
			}
		})
	}
}

func TestCheckConflictsWestOfUTCTimezone(t *testing.T) {
	// Stored due dates decode as UTC midnight and HTTP dates parse the same
	// way. Both must be read as civil days: in New York a task on the 16th
	// still occupies the 16th, not the previous evening.
	now := time.Date(2024, time.January, 15, 8, 0, 0, 0, time.UTC)
	repo := &mockRepository{
		tasks: []model.Task{
			{
				ID:               "task-1",
				OwnerID:          "owner-1",
				Title:            "budget review",
				DueDate:          date(2024, time.January, 16),
				DueTime:          "14:00",
				EstimatedMinutes: 60,
			},
		},
	}
	uc := newTestUseCaseIn(repo, now, "America/New_York", 0)

	out, err := uc.CheckConflicts(context.Background(), model.Scope{OwnerID: "owner-1"}, scheduler.CheckConflictsInput{
		Date:            date(2024, time.January, 16),
		TimeOfDay:       "14:00",
		DurationMinutes: 60,
	})
	if err != nil {
		t.Fatalf("CheckConflicts() error = %v", err)
	}
	if !out.HasConflicts {
		t.Fatal("expected the identical slot to conflict")
	}
	if got := out.Conflicts[0].Existing.ID; got != "task-1" {
		t.Errorf("Existing.ID = %q, want task-1", got)
	}
	if d := out.Conflicts[0].Existing.Start.Day(); d != 16 {
		t.Errorf("existing entry resolved to day %d, want 16", d)
	}
}

func TestCheckConflictsIgnoresOtherOwners(t *testing.T) {
	now := time.Date(2024, time.January, 15, 8, 0, 0, 0, time.UTC)
	repo := &mockRepository{
		events: []model.ScheduledEvent{
			{
				ID:      "evt-other",
				OwnerID: "owner-2",
				Start:   time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC),
				End:     time.Date(2024, time.January, 15, 11, 0, 0, 0, time.UTC),
			},
		},
	}
	uc := newTestUseCase(repo, now)

	out, err := uc.CheckConflicts(context.Background(), model.Scope{OwnerID: "owner-1"}, scheduler.CheckConflictsInput{
		Date:            date(2024, time.January, 15),
		TimeOfDay:       "10:00",
		DurationMinutes: 60,
	})
	if err != nil {
		t.Fatalf("CheckConflicts() error = %v", err)
	}
	if out.HasConflicts {
		t.Errorf("expected no conflicts across owners, got %+v", out.Conflicts)
	}
}
