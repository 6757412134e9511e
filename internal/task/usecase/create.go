package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/scheduler"
	"smart-scheduler/internal/task"
	repo "smart-scheduler/internal/task/repository"
	"smart-scheduler/pkg/recurrence"
	"smart-scheduler/pkg/textattr"
	"smart-scheduler/pkg/timetext"
)

// CreateFromText assembles a record from parser and extractor output,
// checks the candidate slot, and persists. The conflict check and insert
// run under the owner's lock to keep concurrent creations from
// double-booking a slot.
func (uc *implUseCase) CreateFromText(ctx context.Context, sc model.Scope, input task.CreateFromTextInput) (task.CreateFromTextOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return task.CreateFromTextOutput{}, task.ErrEmptyInput
	}

	now := uc.now()
	kind := detectKind(text)
	tc := uc.parser.Parse(text, now)

	dueDate, dueTime := dueFromContext(tc, uc.parser)
	estimated := textattr.DurationMinutes(text)

	var rule *recurrence.Rule
	if r, ok := timetext.DetectRecurrence(text); ok {
		rule = &r
	}

	var reminderAt *time.Time
	if due := (model.Task{DueDate: dueDate, DueTime: dueTime}).DueInstant(uc.parser.Location()); due != nil {
		reminderAt = textattr.Reminder(text, *due, now, uc.parser.Location())
	}

	opt := repo.CreateTaskOptions{
		ID:               uc.newID(),
		OwnerID:          sc.OwnerID,
		Title:            textattr.Title(text, kind),
		Description:      text,
		DueDate:          dueDate,
		DueTime:          dueTime,
		Priority:         textattr.Priority(text),
		Category:         textattr.Category(text),
		Location:         textattr.Location(text),
		EstimatedMinutes: estimated,
		Tags:             textattr.Tags(text),
		Channel:          input.Channel,
		Recurrence:       rule,
		ReminderAt:       reminderAt,
	}

	lock := uc.locks.forOwner(sc.OwnerID)
	lock.Lock()
	defer lock.Unlock()

	conflicts, err := uc.scheduler.CheckConflicts(ctx, sc, scheduler.CheckConflictsInput{
		Date:            dueDate,
		TimeOfDay:       dueTime,
		DurationMinutes: estimated,
		Title:           opt.Title,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateFromText CheckConflicts: %v", err)
		return task.CreateFromTextOutput{}, err
	}

	created, err := uc.repo.CreateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateFromText CreateTask: %v", err)
		return task.CreateFromTextOutput{}, err
	}

	out := task.CreateFromTextOutput{
		Task:      created,
		Message:   confirmation(kind, created.Title),
		Conflicts: conflicts.Conflicts,
	}

	// Schedule commands with a concrete interval also materialize a
	// calendar event.
	if kind == textattr.KindEvent && dueDate != nil && dueTime != "" {
		event, err := uc.createLinkedEvent(ctx, sc, created, input.Channel)
		if err != nil {
			return task.CreateFromTextOutput{}, err
		}
		out.Event = &event
	}
	return out, nil
}

func (uc *implUseCase) createLinkedEvent(ctx context.Context, sc model.Scope, t model.Task, channel model.Channel) (model.ScheduledEvent, error) {
	start := t.DueInstant(uc.parser.Location())
	minutes := t.EstimatedMinutes
	if minutes <= 0 {
		minutes = scheduler.DefaultEntryMinutes
	}
	event, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{
		ID:          uc.newID(),
		OwnerID:     sc.OwnerID,
		Title:       t.Title,
		Description: t.Description,
		Start:       *start,
		End:         start.Add(time.Duration(minutes) * time.Minute),
		Location:    t.Location,
		Channel:     channel,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.createLinkedEvent CreateEvent: %v", err)
		return model.ScheduledEvent{}, err
	}
	return event, nil
}

// detectKind picks the capture flavor from the command verb.
func detectKind(text string) textattr.Kind {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "remind me"), strings.Contains(lower, "reminder"):
		return textattr.KindReminder
	case strings.Contains(lower, "schedule"):
		return textattr.KindEvent
	default:
		return textattr.KindTask
	}
}

// dueFromContext splits a resolved TimeContext into the stored date and
// optional "HH:MM" time-of-day.
func dueFromContext(tc timetext.TimeContext, p *timetext.Parser) (*time.Time, string) {
	day := p.Day(tc.Start).Start
	if tc.HasClock {
		return &day, tc.Start.Format("15:04")
	}
	return &day, ""
}

func confirmation(kind textattr.Kind, title string) string {
	switch kind {
	case textattr.KindEvent:
		return fmt.Sprintf("Scheduled: %s", title)
	case textattr.KindReminder:
		return fmt.Sprintf("Reminder set: %s", title)
	default:
		return fmt.Sprintf("Added: %s", title)
	}
}
