package usecase

import (
	"context"
	"time"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/scheduler"
	repo "smart-scheduler/internal/task/repository"
)

// SuggestReschedule finds the next open slot for the task, preferring the
// same part of day the task currently occupies.
func (uc *implUseCase) SuggestReschedule(ctx context.Context, sc model.Scope, input scheduler.RescheduleInput) (scheduler.RescheduleOutput, error) {
	task, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{OwnerID: sc.OwnerID, ID: input.TaskID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SuggestReschedule GetOneTask: %v", err)
		return scheduler.RescheduleOutput{}, err
	}
	if task.ID == "" {
		return scheduler.RescheduleOutput{}, scheduler.ErrTaskNotFound
	}

	window := preferredWindow(task, uc.parser.Location())
	duration := task.EstimatedMinutes
	if duration <= 0 {
		duration = scheduler.DefaultEntryMinutes
	}

	found, err := uc.FindSlots(ctx, sc, scheduler.FindSlotsInput{
		DurationMinutes: duration,
		Window:          window,
		From:            uc.now(),
	})
	if err != nil {
		return scheduler.RescheduleOutput{}, err
	}

	out := scheduler.RescheduleOutput{Task: task, Window: window}
	if len(found.Slots) > 0 {
		out.Suggestion = &found.Slots[0]
	}
	return out, nil
}

// preferredWindow maps the task's current clock time onto a day window.
// Tasks without a time of day default to the morning.
func preferredWindow(task model.Task, loc *time.Location) scheduler.Window {
	start := task.DueInstant(loc)
	if start == nil {
		return scheduler.WindowMorning
	}
	switch h := start.Hour(); {
	case h < 12:
		return scheduler.WindowMorning
	case h < 18:
		return scheduler.WindowAfternoon
	default:
		return scheduler.WindowEvening
	}
}
