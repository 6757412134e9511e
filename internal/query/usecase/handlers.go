package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/query"
	"smart-scheduler/internal/scheduler"
	repo "smart-scheduler/internal/task/repository"
	"smart-scheduler/pkg/timetext"
)

func (uc *implUseCase) handleListEvents(ctx context.Context, sc model.Scope, text string) (query.ProcessOutput, error) {
	window, label := uc.findWindow(text)
	entries, err := uc.loadEntries(ctx, sc, window.Start, window.End)
	if err != nil {
		return query.ProcessOutput{}, err
	}

	var message string
	switch n := len(entries); n {
	case 0:
		message = fmt.Sprintf("You have no appointments scheduled for %s.", label)
	case 1:
		message = fmt.Sprintf("You have 1 event %s", label)
	default:
		message = fmt.Sprintf("You have %d events %s", n, label)
	}
	return query.ProcessOutput{
		Message:     message,
		WindowStart: window.Start,
		WindowEnd:   window.End,
		Entries:     entries,
	}, nil
}

func (uc *implUseCase) handleFindConflicts(ctx context.Context, sc model.Scope, text string) (query.ProcessOutput, error) {
	window, label := uc.findWindow(text)
	entries, err := uc.loadEntries(ctx, sc, window.Start, window.End)
	if err != nil {
		return query.ProcessOutput{}, err
	}

	var conflicts []scheduler.Conflict
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if entries[i].Start.Before(entries[j].End) && entries[j].Start.Before(entries[i].End) {
				conflicts = append(conflicts, scheduler.Conflict{Candidate: entries[i], Existing: entries[j]})
			}
		}
	}

	var message string
	switch n := len(conflicts); n {
	case 0:
		message = fmt.Sprintf("No conflicts found %s.", label)
	case 1:
		message = fmt.Sprintf("Found 1 scheduling conflict %s", label)
	default:
		message = fmt.Sprintf("Found %d scheduling conflicts %s", n, label)
	}
	return query.ProcessOutput{
		Message:     message,
		WindowStart: window.Start,
		WindowEnd:   window.End,
		Entries:     entries,
		Conflicts:   conflicts,
	}, nil
}

func (uc *implUseCase) handleCheckAvailability(ctx context.Context, sc model.Scope, text string) (query.ProcessOutput, error) {
	window, label := uc.findWindow(text)
	from, to := window.Start, window.End

	// "am I free tomorrow at 2pm" asks about the clock time, not the whole
	// day. Narrow the window to the requested interval.
	if tc := uc.parser.Parse(text, uc.now()); tc.HasClock {
		minutes := timetext.ParseDurationMinutes(text, scheduler.DefaultEntryMinutes)
		from = tc.Start
		to = tc.Start.Add(time.Duration(minutes) * time.Minute)
		label = windowLabel(fmt.Sprintf("%s at %s", label, tc.Start.Format("3:04 PM")))
	}

	entries, err := uc.loadEntries(ctx, sc, from, to)
	if err != nil {
		return query.ProcessOutput{}, err
	}

	var message string
	switch n := len(entries); n {
	case 0:
		message = fmt.Sprintf("You're free %s", label)
	case 1:
		message = fmt.Sprintf("You have 1 commitment %s", label)
	default:
		message = fmt.Sprintf("You have %d commitments %s", n, label)
	}
	return query.ProcessOutput{
		Message:     message,
		WindowStart: from,
		WindowEnd:   to,
		Entries:     entries,
	}, nil
}

func (uc *implUseCase) handleFindMeetingTime(ctx context.Context, sc model.Scope, text string) (query.ProcessOutput, error) {
	duration := timetext.ParseDurationMinutes(text, query.DefaultMeetingMinutes)

	found, err := uc.scheduler.FindSlots(ctx, sc, scheduler.FindSlotsInput{
		DurationMinutes: duration,
		Window:          preferredWindowFromText(text),
		From:            uc.now(),
	})
	if err != nil {
		return query.ProcessOutput{}, err
	}

	if len(found.Slots) == 0 {
		return query.ProcessOutput{
			Message: fmt.Sprintf("No open %d-minute slot in the next %d days", duration, scheduler.DefaultHorizonDays),
		}, nil
	}
	slot := found.Slots[0]
	return query.ProcessOutput{
		Message: fmt.Sprintf("Found an open %d-minute slot on %s at %s",
			duration, slot.Start.Format("Monday, Jan 2"), slot.Start.Format("3:04 PM")),
		Slot: &slot,
	}, nil
}

func (uc *implUseCase) handleGetNextEvent(ctx context.Context, sc model.Scope) (query.ProcessOutput, error) {
	now := uc.now().In(uc.parser.Location())
	horizon := now.AddDate(0, 0, scheduler.DefaultHorizonDays)
	entries, err := uc.loadEntries(ctx, sc, uc.parser.Day(now).Start, horizon)
	if err != nil {
		return query.ProcessOutput{}, err
	}

	for _, e := range entries {
		if e.Start.After(now) {
			return query.ProcessOutput{
				Message: fmt.Sprintf("Your next event is %s on %s at %s",
					e.Title, e.Start.Format("Monday, Jan 2"), e.Start.Format("3:04 PM")),
				Entries: []scheduler.Entry{e},
			}, nil
		}
	}
	return query.ProcessOutput{Message: "You have no upcoming events"}, nil
}

// preferredWindowFromText maps a part-of-day word in the query onto a
// scheduler window.
func preferredWindowFromText(text string) scheduler.Window {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "morning"):
		return scheduler.WindowMorning
	case strings.Contains(lower, "afternoon"):
		return scheduler.WindowAfternoon
	case strings.Contains(lower, "evening"), strings.Contains(lower, "tonight"):
		return scheduler.WindowEvening
	default:
		return scheduler.WindowAny
	}
}

// loadEntries collects the owner's time-bound entries inside [from, to):
// non-completed tasks with an explicit time-of-day plus all events
// overlapping the window. Sorted chronologically.
func (uc *implUseCase) loadEntries(ctx context.Context, sc model.Scope, from, to time.Time) ([]scheduler.Entry, error) {
	notCompleted := false
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		OwnerID:   sc.OwnerID,
		DueFrom:   &from,
		DueBefore: &to,
		Completed: &notCompleted,
	})
	if err != nil {
		return nil, err
	}

	var entries []scheduler.Entry
	for _, t := range tasks {
		if t.DueTime == "" {
			continue
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
