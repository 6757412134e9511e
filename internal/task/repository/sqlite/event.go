package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"smart-scheduler/internal/model"
	repo "smart-scheduler/internal/task/repository"
)

const eventColumns = `id, owner_id, title, description, start_at, end_at,
	location, attendees, provider_id, channel, created_at, updated_at`

func scanEvent(row rowScanner) (model.ScheduledEvent, error) {
	var (
		e         model.ScheduledEvent
		startAt   string
		endAt     string
		attendees string
		channel   string
		createdAt string
		updatedAt string
	)
	err := row.Scan(
		&e.ID, &e.OwnerID, &e.Title, &e.Description, &startAt, &endAt,
		&e.Location, &attendees, &e.ProviderID, &channel, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.ScheduledEvent{}, err
	}

	if at, err := time.Parse(time.RFC3339, startAt); err == nil {
		e.Start = at
	}
	if at, err := time.Parse(time.RFC3339, endAt); err == nil {
		e.End = at
	}
	e.Attendees = decodeList(attendees)
	e.Channel = model.Channel(channel)
	if at, err := time.Parse(time.RFC3339, createdAt); err == nil {
		e.CreatedAt = at
	}
	if at, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		e.UpdatedAt = at
	}
	return e, nil
}

// CreateEvent inserts a new event row and returns the created entity.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.ScheduledEvent, error) {
	const query = `
		INSERT INTO events (id, owner_id, title, description, start_at, end_at,
			location, attendees, provider_id, channel, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.OwnerID, opt.Title, opt.Description,
		opt.Start.UTC().Format(time.RFC3339), opt.End.UTC().Format(time.RFC3339),
		opt.Location, encodeList(opt.Attendees), opt.ProviderID,
		string(opt.Channel), now, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.ScheduledEvent{}, repo.ErrFailedToInsert
	}
	return r.getEventByID(ctx, opt.OwnerID, opt.ID)
}

func (r *implRepository) getEventByID(ctx context.Context, ownerID, id string) (model.ScheduledEvent, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE owner_id = ? AND id = ?`, eventColumns)
	e, err := scanEvent(r.db.QueryRowContext(ctx, query, ownerID, id))
	if err == sql.ErrNoRows {
		return model.ScheduledEvent{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("getEventByID"), err)
		return model.ScheduledEvent{}, repo.ErrFailedToGet
	}
	return e, nil
}

// ListEvents returns events overlapping [From, To), chronological order.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.ScheduledEvent, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM events
		 WHERE owner_id = ? AND start_at < ? AND end_at > ?
		 ORDER BY start_at ASC`, eventColumns)
	args := []any{
		opt.OwnerID,
		opt.To.UTC().Format(time.RFC3339),
		opt.From.UTC().Format(time.RFC3339),
	}
	if opt.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var events []model.ScheduledEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// UpsertProviderEvent inserts the event or refreshes the existing row with
// the same (owner_id, provider_id). Reports whether a new row was created.
func (r *implRepository) UpsertProviderEvent(ctx context.Context, opt repo.CreateEventOptions) (model.ScheduledEvent, bool, error) {
	existingID := ""
	if opt.ProviderID != "" {
		err := r.db.QueryRowContext(ctx,
			`SELECT id FROM events WHERE owner_id = ? AND provider_id = ?`,
			opt.OwnerID, opt.ProviderID,
		).Scan(&existingID)
		if err != nil && err != sql.ErrNoRows {
			r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertProviderEvent"), err)
			return model.ScheduledEvent{}, false, repo.ErrFailedToGet
		}
	}

	if existingID == "" {
		e, err := r.CreateEvent(ctx, opt)
		return e, err == nil, err
	}

	const query = `
		UPDATE events
		SET title = ?, description = ?, start_at = ?, end_at = ?,
			location = ?, attendees = ?, updated_at = ?
		WHERE owner_id = ? AND id = ?`
	_, err := r.db.ExecContext(ctx, query,
		opt.Title, opt.Description,
		opt.Start.UTC().Format(time.RFC3339), opt.End.UTC().Format(time.RFC3339),
		opt.Location, encodeList(opt.Attendees),
		time.Now().UTC().Format(time.RFC3339),
		opt.OwnerID, existingID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertProviderEvent"), err)
		return model.ScheduledEvent{}, false, repo.ErrFailedToUpdate
	}
	e, err := r.getEventByID(ctx, opt.OwnerID, existingID)
	return e, false, err
}
