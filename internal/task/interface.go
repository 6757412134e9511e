package task

import (
	"context"

	"smart-scheduler/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// CreateFromText parses raw text into a task, reminder, or scheduled
	// event, checks the candidate slot for conflicts, and persists it.
	CreateFromText(ctx context.Context, sc model.Scope, input CreateFromTextInput) (CreateFromTextOutput, error)

	// UpdateFromText resolves the identifier and applies the attributes
	// found in the update text onto the existing record.
	UpdateFromText(ctx context.Context, sc model.Scope, input UpdateFromTextInput) (UpdateFromTextOutput, error)

	// Complete marks the resolved task completed. Recurring tasks spawn a
	// new instance at the next computed occurrence; the completed instance
	// keeps its own due date and rule.
	Complete(ctx context.Context, sc model.Scope, input CompleteInput) (CompleteOutput, error)

	// List returns the owner's tasks under a named or free-text filter.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
}
