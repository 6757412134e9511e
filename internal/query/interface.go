package query

import (
	"context"

	"smart-scheduler/internal/model"
)

// UseCase defines the business logic interface for the query domain.
type UseCase interface {
	// Process classifies the free-text query, runs the matching intent
	// handler, and returns a structured result with a human-readable
	// summary sentence.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)
}
