package usecase

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/task"
	repo "smart-scheduler/internal/task/repository"
)

// rePositional matches "task 2" style references to the Nth-oldest
// incomplete task.
var rePositional = regexp.MustCompile(`(?i)^task (\d+)$`)

// resolve finds a task through the fallback chain: exact id, exact title
// among incomplete items, partial title match, then positional reference.
// The first strategy that yields a row wins.
func (uc *implUseCase) resolve(ctx context.Context, sc model.Scope, identifier string) (model.Task, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	notCompleted := false

	found, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{OwnerID: sc.OwnerID, ID: identifier})
	if err != nil {
		uc.l.Errorf(ctx, "uc.resolve GetOneTask by id: %v", err)
		return model.Task{}, err
	}
	if found.ID != "" {
		return found, nil
	}

	found, err = uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{
		OwnerID:    sc.OwnerID,
		TitleExact: identifier,
		Completed:  &notCompleted,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.resolve GetOneTask by title: %v", err)
		return model.Task{}, err
	}
	if found.ID != "" {
		return found, nil
	}

	// Substring match; ties resolve to the oldest row.
	matches, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		OwnerID:   sc.OwnerID,
		TitleLike: identifier,
		Completed: &notCompleted,
		Limit:     1,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.resolve ListTasks partial: %v", err)
		return model.Task{}, err
	}
	if len(matches) > 0 {
		return matches[0], nil
	}

	if m := rePositional.FindStringSubmatch(identifier); m != nil {
		n, _ := strconv.Atoi(m[1])
		if n > 0 {
			ordered, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
				OwnerID:   sc.OwnerID,
				Completed: &notCompleted,
				Limit:     n,
			})
			if err != nil {
				uc.l.Errorf(ctx, "uc.resolve ListTasks positional: %v", err)
				return model.Task{}, err
			}
			if len(ordered) >= n {
				return ordered[n-1], nil
			}
		}
	}

	return model.Task{}, task.ErrTaskNotFound
}
