package usecase

import (
	"context"
	"strings"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/task"
	repo "smart-scheduler/internal/task/repository"
	"smart-scheduler/pkg/textattr"
)

// filterKeywords is the ordered task-filter classification table. Unmatched
// text defaults to all.
var filterKeywords = []struct {
	filter   task.Filter
	keywords []string
}{
	{task.FilterToday, []string{"today", "tonight"}},
	{task.FilterTomorrow, []string{"tomorrow"}},
	{task.FilterWeek, []string{"this week", "week"}},
	{task.FilterOverdue, []string{"overdue", "late", "past due"}},
	{task.FilterPriority, []string{"urgent", "important", "priority", "high"}},
}

// classifyFilter routes listing text into a fixed set of filters. Category
// words are checked after the named windows so "work due today" lists by
// day, not category.
func classifyFilter(text string) (task.Filter, string) {
	lower := strings.ToLower(text)
	for _, row := range filterKeywords {
		for _, kw := range row.keywords {
			if strings.Contains(lower, kw) {
				return row.filter, ""
			}
		}
	}
	if category, ok := textattr.CategoryFound(lower); ok {
		return task.FilterCategory, category
	}
	return task.FilterAll, ""
}

// List returns the owner's non-completed tasks under the classified filter.
// The all filter includes completed tasks for history.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	filter, category := classifyFilter(input.Filter)

	notCompleted := false
	opt := repo.ListTasksOptions{OwnerID: sc.OwnerID, Completed: &notCompleted}
	now := uc.now().In(uc.parser.Location())

	switch filter {
	case task.FilterToday:
		day := uc.parser.Today(now).Start
		opt.DueOn = &day
	case task.FilterTomorrow:
		day := uc.parser.Tomorrow(now).Start
		opt.DueOn = &day
	case task.FilterWeek:
		week := uc.parser.ThisWeek(now)
		opt.DueFrom = &week.Start
		opt.DueBefore = &week.End
	case task.FilterOverdue:
		day := uc.parser.Today(now).Start
		opt.DueBefore = &day
	case task.FilterCategory:
		opt.Category = category
	case task.FilterPriority:
		opt.MaxPriority = 2
		opt.OrderBy = "priority ASC, created_at ASC"
	default:
		opt.Completed = nil
	}

	tasks, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}
	return task.ListOutput{Filter: filter, Tasks: tasks}, nil
}
