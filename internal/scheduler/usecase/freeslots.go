package usecase

import (
	"context"
	"time"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/scheduler"
)

// FindSlots searches day by day from input.From across the horizon for open
// intervals of at least input.DurationMinutes inside the preferred window.
func (uc *implUseCase) FindSlots(ctx context.Context, sc model.Scope, input scheduler.FindSlotsInput) (scheduler.FindSlotsOutput, error) {
	if input.DurationMinutes <= 0 {
		return scheduler.FindSlotsOutput{}, scheduler.ErrInvalidDuration
	}

	from := input.From
	if from.IsZero() {
		from = uc.now()
	}
	from = from.In(uc.parser.Location())

	days := input.HorizonDays
	if days <= 0 {
		days = uc.horizonDays
	}
	rangeEnd := uc.parser.Day(from).Start.AddDate(0, 0, days)

	entries, err := uc.loadDayEntries(ctx, sc, uc.parser.Day(from).Start, rangeEnd)
	if err != nil {
		return scheduler.FindSlotsOutput{}, err
	}

	slots := findFreeSlots(entries, from, rangeEnd, input.DurationMinutes, input.Window, input.AvoidWeekends, uc.parser.Location())
	return scheduler.FindSlotsOutput{Slots: slots}, nil
}

// findFreeSlots walks [from, rangeEnd) day by day, advancing an
// hour-granularity cursor through the preferred window past each existing
// entry, and emits every gap long enough for the requested duration.
// entries must be sorted by start. Results are chronological.
func findFreeSlots(entries []scheduler.Entry, from, rangeEnd time.Time, durationMinutes int, window scheduler.Window, avoidWeekends bool, loc *time.Location) []scheduler.FreeSlot {
	startHour, endHour := window.Hours()
	need := time.Duration(durationMinutes) * time.Minute

	var slots []scheduler.FreeSlot
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)

	for ; day.Before(rangeEnd); day = day.AddDate(0, 0, 1) {
		if avoidWeekends && (day.Weekday() == time.Saturday || day.Weekday() == time.Sunday) {
			continue
		}

		windowStart := day.Add(time.Duration(startHour) * time.Hour)
		windowEnd := day.Add(time.Duration(endHour) * time.Hour)

		cursor := windowStart
		if from.After(cursor) {
			cursor = ceilHour(from)
		}
		if !cursor.Before(windowEnd) {
			continue
		}

		for _, e := range entries {
			if !e.End.After(cursor) || !e.Start.Before(windowEnd) {
				continue
			}
			if gap := e.Start.Sub(cursor); gap >= need {
				slots = append(slots, newSlot(cursor, e.Start))
			}
			if e.End.After(cursor) {
				cursor = ceilHour(e.End)
			}
			if !cursor.Before(windowEnd) {
				break
			}
		}

		if cursor.Before(windowEnd) && windowEnd.Sub(cursor) >= need {
			slots = append(slots, newSlot(cursor, windowEnd))
		}
	}
	return slots
}

func newSlot(start, end time.Time) scheduler.FreeSlot {
	return scheduler.FreeSlot{
		Start:           start,
		End:             end,
		DurationMinutes: int(end.Sub(start) / time.Minute),
	}
}

// ceilHour rounds t up to the next full hour unless already on one.
func ceilHour(t time.Time) time.Time {
	truncated := t.Truncate(time.Hour)
	if truncated.Equal(t) {
		return t
	}
	return truncated.Add(time.Hour)
}
