package sqlite

import (
	"context"
	"time"

	repo "smart-scheduler/internal/task/repository"
)

// InsertQueryLog appends one processed query. Callers treat failures as
// best-effort; the error is still returned so they can log it.
func (r *implRepository) InsertQueryLog(ctx context.Context, opt repo.InsertQueryLogOptions) error {
	const query = `
		INSERT INTO query_log (owner_id, query, intent, created_at)
		VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		opt.OwnerID, opt.Query, opt.Intent,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertQueryLog"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}
