package usecase

import (
	"context"
	"strings"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/query"
	repo "smart-scheduler/internal/task/repository"
)

// Process runs the single classify → handle → format dispatch step.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input query.ProcessInput) (query.ProcessOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return query.ProcessOutput{}, query.ErrEmptyQuery
	}

	intent := classifyIntent(text)

	var (
		out query.ProcessOutput
		err error
	)
	switch intent {
	case query.IntentFindConflicts:
		out, err = uc.handleFindConflicts(ctx, sc, text)
	case query.IntentCheckAvail:
		out, err = uc.handleCheckAvailability(ctx, sc, text)
	case query.IntentFindMeetingTime:
		out, err = uc.handleFindMeetingTime(ctx, sc, text)
	case query.IntentGetNextEvent:
		out, err = uc.handleGetNextEvent(ctx, sc)
	default:
		out, err = uc.handleListEvents(ctx, sc, text)
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Process intent %s: %v", intent, err)
		return query.ProcessOutput{}, err
	}
	out.Intent = intent

	// Analytics logging is best-effort and never aborts the response.
	if logErr := uc.repo.InsertQueryLog(ctx, repo.InsertQueryLogOptions{
		OwnerID: sc.OwnerID,
		Query:   text,
		Intent:  string(intent),
	}); logErr != nil {
		uc.l.Warnf(ctx, "uc.Process InsertQueryLog: %v", logErr)
	}

	return out, nil
}
