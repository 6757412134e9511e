package usecase

import (
	"context"
	"sort"
	"time"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/scheduler"
	repo "smart-scheduler/internal/task/repository"
)

// overlaps reports whether two half-open intervals intersect:
// startA < endB && startB < endA. Symmetric by construction.
func overlaps(a, b scheduler.Entry) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// CheckConflicts loads the owner's non-completed same-day entries and flags
// every one whose interval overlaps the candidate.
func (uc *implUseCase) CheckConflicts(ctx context.Context, sc model.Scope, input scheduler.CheckConflictsInput) (scheduler.CheckConflictsOutput, error) {
	// A candidate without a date or time cannot occupy an interval.
	if input.Date == nil || input.TimeOfDay == "" {
		return scheduler.CheckConflictsOutput{}, nil
	}

	duration := input.DurationMinutes
	if duration <= 0 {
		duration = scheduler.DefaultEntryMinutes
	}

	candidateTask := model.Task{DueDate: input.Date, DueTime: input.TimeOfDay, EstimatedMinutes: duration}
	start := candidateTask.DueInstant(uc.parser.Location())
	day := uc.parser.Day(*start)
	candidate := scheduler.Entry{
		Kind:  "task",
		Title: input.Title,
		Start: *start,
		End:   start.Add(time.Duration(duration) * time.Minute),
	}

	entries, err := uc.loadDayEntries(ctx, sc, day.Start, day.End)
	if err != nil {
		return scheduler.CheckConflictsOutput{}, err
	}

	var conflicts []scheduler.Conflict
	for _, e := range entries {
		if overlaps(candidate, e) {
			conflicts = append(conflicts, scheduler.Conflict{Candidate: candidate, Existing: e})
		}
	}
	return scheduler.CheckConflictsOutput{
		HasConflicts: len(conflicts) > 0,
		Conflicts:    conflicts,
	}, nil
}

// loadDayEntries collects the owner's time-bound entries inside [from, to):
// non-completed tasks with an explicit time-of-day plus all events
// overlapping the window. Sorted chronologically.
func (uc *implUseCase) loadDayEntries(ctx context.Context, sc model.Scope, from, to time.Time) ([]scheduler.Entry, error) {
	notCompleted := false
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		OwnerID:   sc.OwnerID,
		DueFrom:   &from,
		DueBefore: &to,
		Completed: &notCompleted,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.loadDayEntries ListTasks: %v", err)
		return nil, err
	}

	var entries []scheduler.Entry
	for _, t := range tasks {
		if t.DueTime == "" {
			continue // date-only tasks do not occupy a clock interval
		}
		start := t.DueInstant(uc.parser.Location())
		minutes := t.EstimatedMinutes
		if minutes <= 0 {
			minutes = scheduler.DefaultEntryMinutes
		}
		entries = append(entries, scheduler.Entry{
			ID:    t.ID,
			Kind:  "task",
			Title: t.Title,
			Start: *start,
			End:   start.Add(time.Duration(minutes) * time.Minute),
		})
	}

	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{
		OwnerID: sc.OwnerID,
		From:    from,
		To:      to,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.loadDayEntries ListEvents: %v", err)
		return nil, err
	}
	for _, e := range events {
		entries = append(entries, scheduler.Entry{
			ID:    e.ID,
			Kind:  "event",
			Title: e.Title,
			Start: e.Start,
			End:   e.End,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Start.Before(entries[j].Start) })
	return entries, nil
}
