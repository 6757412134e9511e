package scheduler

import (
	"context"

	"smart-scheduler/internal/model"
)

// UseCase is the conflict-detection and free-slot-search surface.
type UseCase interface {
	// CheckConflicts flags existing same-day entries that overlap the
	// candidate interval. Candidates without a date or time trivially
	// report no conflicts.
	CheckConflicts(ctx context.Context, sc model.Scope, input CheckConflictsInput) (CheckConflictsOutput, error)

	// FindSlots searches a bounded horizon for open intervals of at least
	// the requested duration, chronological order.
	FindSlots(ctx context.Context, sc model.Scope, input FindSlotsInput) (FindSlotsOutput, error)

	// SuggestReschedule proposes the next open slot for an existing task,
	// preserving its original time-of-day preference.
	SuggestReschedule(ctx context.Context, sc model.Scope, input RescheduleInput) (RescheduleOutput, error)

	// Overview aggregates one day's committed time and entries.
	Overview(ctx context.Context, sc model.Scope, input OverviewInput) (OverviewOutput, error)
}
