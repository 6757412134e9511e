package usecase

import (
	"context"
	"time"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/scheduler"
)

// Overview summarizes the owner's committed time for one calendar day.
func (uc *implUseCase) Overview(ctx context.Context, sc model.Scope, input scheduler.OverviewInput) (scheduler.OverviewOutput, error) {
	day := uc.parser.Day(uc.now())
	if !input.Date.IsZero() {
		// The date names a civil day, whatever zone it was parsed in.
		d := input.Date
		day = uc.parser.Day(time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, uc.parser.Location()))
	}

	entries, err := uc.loadDayEntries(ctx, sc, day.Start, day.End)
	if err != nil {
		return scheduler.OverviewOutput{}, err
	}

	out := scheduler.OverviewOutput{Date: day.Start, Entries: entries}
	for i, e := range entries {
		out.CommittedMinutes += int(e.End.Sub(e.Start).Minutes())
		if i == 0 {
			start := e.Start
			out.EarliestStart = &start
		}
		if i == len(entries)-1 {
			start := e.Start
			out.LatestStart = &start
		}
	}
	return out, nil
}
