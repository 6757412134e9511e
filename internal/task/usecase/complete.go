package usecase

import (
	"context"
	"fmt"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/task"
	repo "smart-scheduler/internal/task/repository"
	"smart-scheduler/pkg/recurrence"
)

// Complete marks the resolved task completed. A recurring task additionally
// spawns a new instance at the next computed occurrence; the completed
// instance keeps its own due date and rule for history.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, input task.CompleteInput) (task.CompleteOutput, error) {
	current, err := uc.resolve(ctx, sc, input.Identifier)
	if err != nil {
		return task.CompleteOutput{}, err
	}

	now := uc.now()
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
		Completed:        true,
		CompletedAt:      &now,
		Recurrence:       current.Recurrence,
		NextDue:          current.NextDue,
		ReminderAt:       current.ReminderAt,
		Notes:            current.Notes,
	}

	completed, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete UpdateTask: %v", err)
		return task.CompleteOutput{}, err
	}
	if completed.ID == "" {
		return task.CompleteOutput{}, task.ErrTaskNotFound
	}

	out := task.CompleteOutput{
		Task:    completed,
		Message: fmt.Sprintf("Completed: %s", completed.Title),
	}

	if completed.IsRecurring() {
		next, err := uc.materializeNext(ctx, sc, completed)
		if err != nil {
			return task.CompleteOutput{}, err
		}
		out.Next = &next
	}
	return out, nil
}

// materializeNext creates the recurring task's next instance as a new
// record.
func (uc *implUseCase) materializeNext(ctx context.Context, sc model.Scope, completed model.Task) (model.Task, error) {
	due := completed.DueInstant(uc.parser.Location())
	if due == nil {
		anchor := uc.now().In(uc.parser.Location())
		due = &anchor
	}

	nextDue := recurrence.Next(*completed.Recurrence, *due)
	nextDay := uc.parser.Day(nextDue).Start

	dueTime := completed.DueTime
	if completed.Recurrence.TimeOfDay != "" {
		dueTime = completed.Recurrence.TimeOfDay
	}

	next, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		ID:               uc.newID(),
		OwnerID:          sc.OwnerID,
		Title:            completed.Title,
		Description:      completed.Description,
		DueDate:          &nextDay,
		DueTime:          dueTime,
		Priority:         completed.Priority,
		Category:         completed.Category,
		Location:         completed.Location,
		EstimatedMinutes: completed.EstimatedMinutes,
		Tags:             completed.Tags,
		Channel:          completed.Channel,
		Recurrence:       completed.Recurrence,
		NextDue:          &nextDue,
		Notes:            completed.Notes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.materializeNext CreateTask: %v", err)
		return model.Task{}, err
	}
	return next, nil
}
