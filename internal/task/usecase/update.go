package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/task"
	repo "smart-scheduler/internal/task/repository"
	"smart-scheduler/pkg/textattr"
	"smart-scheduler/pkg/timetext"
)

// UpdateFromText resolves the identifier and overlays every attribute the
// update text actually names onto the stored record. Absent attributes keep
// their current values.
func (uc *implUseCase) UpdateFromText(ctx context.Context, sc model.Scope, input task.UpdateFromTextInput) (task.UpdateFromTextOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return task.UpdateFromTextOutput{}, task.ErrEmptyInput
	}

	current, err := uc.resolve(ctx, sc, input.Identifier)
	if err != nil {
		return task.UpdateFromTextOutput{}, err
	}

	opt := mergeUpdates(current, text, uc.parser, uc.now())

	updated, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateFromText UpdateTask: %v", err)
		return task.UpdateFromTextOutput{}, err
	}
	if updated.ID == "" {
		return task.UpdateFromTextOutput{}, task.ErrTaskNotFound
	}

	return task.UpdateFromTextOutput{
		Task:    updated,
		Message: fmt.Sprintf("Updated: %s", updated.Title),
	}, nil
}

// mergeUpdates builds the full replacement row: current values overlaid with
// whatever the update text names.
func mergeUpdates(current model.Task, text string, p *timetext.Parser, now time.Time) repo.UpdateTaskOptions {
	opt := repo.UpdateTaskOptions{
		ID:               current.ID,
		OwnerID:          current.OwnerID,
		Title:            current.Title,
		Description:      current.Description,
		DueDate:          current.DueDate,
		DueTime:          current.DueTime,
		Priority:         current.Priority,
		Category:         current.Category,
		Location:         current.Location,
		EstimatedMinutes: current.EstimatedMinutes,
		Tags:             current.Tags,
		Completed:        current.Completed,
		CompletedAt:      current.CompletedAt,
		Recurrence:       current.Recurrence,
		NextDue:          current.NextDue,
		ReminderAt:       current.ReminderAt,
		Notes:            current.Notes,
	}

	tc := p.Parse(text, now)
	if tc.SourceText != "" {
		day := p.Day(tc.Start).Start
		opt.DueDate = &day
		if tc.HasClock {
			opt.DueTime = tc.Start.Format("15:04")
		} else {
			opt.DueTime = ""
		}
	}

	if priority, ok := textattr.PriorityFound(text); ok {
		opt.Priority = priority
	}
	if category, ok := textattr.CategoryFound(text); ok {
		opt.Category = category
	}
	if location := textattr.Location(text); location != "" {
		opt.Location = location
	}
	if minutes := textattr.DurationMinutes(text); minutes > 0 {
		opt.EstimatedMinutes = minutes
	}
	if tags := textattr.Tags(text); len(tags) > 0 {
		opt.Tags = tags
	}
	if due := (model.Task{DueDate: opt.DueDate, DueTime: opt.DueTime}).DueInstant(p.Location()); due != nil {
		if reminderAt := textattr.Reminder(text, *due, now, p.Location()); reminderAt != nil {
			opt.ReminderAt = reminderAt
		}
	}
	if rule, ok := timetext.DetectRecurrence(text); ok {
		opt.Recurrence = &rule
	}
	return opt
}
