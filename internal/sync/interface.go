package sync

import (
	"context"

	"smart-scheduler/internal/model"
)

// Service pulls events from an external calendar provider into the local
// store.
type Service interface {
	// PullCalendar fetches upcoming provider events and upserts them,
	// deduplicated by provider id.
	PullCalendar(ctx context.Context, sc model.Scope, input PullInput) (PullOutput, error)
}
