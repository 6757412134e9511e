package sqlite

import (
	"fmt"
	"strings"

	repo "smart-scheduler/internal/task/repository"
)

// buildGetOneQuery builds the WHERE clause + args for GetOneTask.
// All non-zero fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.OwnerID != "" {
		conditions = append(conditions, "owner_id = ?")
		args = append(args, opt.OwnerID)
	}
	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.TitleExact != "" {
		conditions = append(conditions, "title = ? COLLATE NOCASE")
		args = append(args, opt.TitleExact)
	}
	if opt.Completed != nil {
		conditions = append(conditions, "completed = ?")
		args = append(args, *opt.Completed)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for
// ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any

	if opt.OwnerID != "" {
		conditions = append(conditions, "owner_id = ?")
		args = append(args, opt.OwnerID)
	}
	if opt.DueOn != nil {
		conditions = append(conditions, "due_date = ?")
		args = append(args, opt.DueOn.Format(dayFormat))
	}
	if opt.DueFrom != nil {
		conditions = append(conditions, "due_date >= ?")
		args = append(args, opt.DueFrom.Format(dayFormat))
	}
	if opt.DueBefore != nil {
		conditions = append(conditions, "due_date < ?")
		args = append(args, opt.DueBefore.Format(dayFormat))
	}
	if opt.Completed != nil {
		conditions = append(conditions, "completed = ?")
		args = append(args, *opt.Completed)
	}
	if opt.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, opt.Category)
	}
	if opt.MaxPriority > 0 {
		conditions = append(conditions, "priority <= ?")
		args = append(args, opt.MaxPriority)
	}
	if opt.TitleLike != "" {
		conditions = append(conditions, "title LIKE ? COLLATE NOCASE")
		args = append(args, "%"+opt.TitleLike+"%")
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "created_at ASC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	if opt.Limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, opt.Limit)
	}
	if opt.Offset > 0 {
		parts = append(parts, "OFFSET ?")
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
