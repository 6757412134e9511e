package sync

import (
	"context"
	"fmt"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/task/repository"
	"smart-scheduler/pkg/gcalendar"
)

// PullCalendar fetches provider events inside the horizon and upserts them
// locally, keyed by provider id. Events without a usable interval are
// skipped.
func (s *implService) PullCalendar(ctx context.Context, sc model.Scope, input PullInput) (PullOutput, error) {
	days := input.HorizonDays
	if days <= 0 {
		days = DefaultPullDays
	}

	from := s.now()
	events, err := s.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: s.calendarID,
		TimeMin:    from,
		TimeMax:    from.AddDate(0, 0, days),
	})
	if err != nil {
		return PullOutput{}, fmt.Errorf("sync: list provider events: %w", err)
	}

	var out PullOutput
	for _, ev := range events {
		if ev.ID == "" || ev.StartTime.IsZero() || ev.EndTime.IsZero() {
			continue
		}
		out.Fetched++

		_, created, err := s.repo.UpsertProviderEvent(ctx, repository.CreateEventOptions{
			ID:          s.newID(),
			OwnerID:     sc.OwnerID,
			Title:       ev.Summary,
			Description: ev.Description,
			Start:       ev.StartTime,
			End:         ev.EndTime,
			Location:    ev.Location,
			ProviderID:  ev.ID,
			Channel:     model.ChannelSync,
		})
		if err != nil {
			return out, fmt.Errorf("sync: upsert event %s: %w", ev.ID, err)
		}
		if created {
			out.Created++
		} else {
			out.Updated++
		}
	}

	s.l.Infof(ctx, "sync: pulled %d events for %s (%d created, %d updated)",
		out.Fetched, sc.OwnerID, out.Created, out.Updated)
	return out, nil
}
