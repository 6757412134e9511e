package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"smart-scheduler/internal/model"
	repo "smart-scheduler/internal/task/repository"
	"smart-scheduler/pkg/recurrence"
)

const taskColumns = `id, owner_id, title, description, due_date, due_time,
	priority, category, location, estimated_minutes, tags, completed,
	completed_at, channel, recurrence, next_due, reminder_at, notes,
	created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t           model.Task
		dueDate     sql.NullString
		completedAt sql.NullString
		nextDue     sql.NullString
		reminderAt  sql.NullString
		tags        string
		channel     string
		rule        string
		createdAt   string
		updatedAt   string
	)
	err := row.Scan(
		&t.ID, &t.OwnerID, &t.Title, &t.Description, &dueDate, &t.DueTime,
		&t.Priority, &t.Category, &t.Location, &t.EstimatedMinutes, &tags,
		&t.Completed, &completedAt, &channel, &rule, &nextDue, &reminderAt,
		&t.Notes, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	t.DueDate = decodeDay(dueDate)
	t.CompletedAt = decodeInstant(completedAt)
	t.NextDue = decodeInstant(nextDue)
	t.ReminderAt = decodeInstant(reminderAt)
	t.Tags = decodeList(tags)
	t.Channel = model.Channel(channel)
	if r, ok := recurrence.Decode(rule); ok {
		t.Recurrence = &r
	}
	if at, err := time.Parse(time.RFC3339, createdAt); err == nil {
		t.CreatedAt = at
	}
	if at, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		t.UpdatedAt = at
	}
	return t, nil
}

// CreateTask inserts a new task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (id, owner_id, title, description, due_date, due_time,
			priority, category, location, estimated_minutes, tags, completed,
			completed_at, channel, recurrence, next_due, reminder_at, notes,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, NULL, ?, ?, ?, ?, ?, ?, ?)`

	rule := ""
	if opt.Recurrence != nil {
		rule = recurrence.Encode(*opt.Recurrence)
	}
	now := time.Now().UTC().Format(time.RFC3339)

	_, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.OwnerID, opt.Title, opt.Description,
		encodeDay(opt.DueDate), opt.DueTime,
		opt.Priority, opt.Category, opt.Location, opt.EstimatedMinutes,
		encodeList(opt.Tags), string(opt.Channel), rule,
		encodeInstant(opt.NextDue), encodeInstant(opt.ReminderAt), opt.Notes,
		now, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return r.getByID(ctx, opt.OwnerID, opt.ID)
}

func (r *implRepository) getByID(ctx context.Context, ownerID, id string) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE owner_id = ? AND id = ?`, taskColumns)
	t, err := scanTask(r.db.QueryRowContext(ctx, query, ownerID, id))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("getByID"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// GetOneTask retrieves a single task by the provided filters (AND
// condition). Returns a zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s ORDER BY created_at ASC LIMIT 1`, taskColumns, mods)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns tasks matching the filters, ordered and paged.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks %s`, taskColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// UpdateTask writes the full merged row and returns the updated entity.
// Returns a zero-value Task when the row does not exist.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	const query = `
		UPDATE tasks
		SET title = ?, description = ?, due_date = ?, due_time = ?,
			priority = ?, category = ?, location = ?, estimated_minutes = ?,
			tags = ?, completed = ?, completed_at = ?, recurrence = ?,
			next_due = ?, reminder_at = ?, notes = ?, updated_at = ?
		WHERE owner_id = ? AND id = ?`

	rule := ""
	if opt.Recurrence != nil {
		rule = recurrence.Encode(*opt.Recurrence)
	}

	res, err := r.db.ExecContext(ctx, query,
		opt.Title, opt.Description, encodeDay(opt.DueDate), opt.DueTime,
		opt.Priority, opt.Category, opt.Location, opt.EstimatedMinutes,
		encodeList(opt.Tags), opt.Completed, encodeInstant(opt.CompletedAt),
		rule, encodeInstant(opt.NextDue), encodeInstant(opt.ReminderAt),
		opt.Notes, time.Now().UTC().Format(time.RFC3339),
		opt.OwnerID, opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Task{}, nil
	}
	return r.getByID(ctx, opt.OwnerID, opt.ID)
}
