package http

import (
	"errors"
	"time"

	"smart-scheduler/internal/scheduler"
	"smart-scheduler/pkg/response"
)

var (
	errBadDate = errors.New("date must be formatted as YYYY-MM-DD")
	errBadTime = errors.New("time must be formatted as HH:MM")
)

// --- Request DTOs ---

type conflictsReq struct {
	Date     string `form:"date"`     // YYYY-MM-DD
	Time     string `form:"time"`     // HH:MM
	Duration int    `form:"duration"` // minutes
	Title    string `form:"title"`
}

func (r conflictsReq) toInput() (scheduler.CheckConflictsInput, error) {
	input := scheduler.CheckConflictsInput{
		DurationMinutes: r.Duration,
		Title:           r.Title,
	}
	if r.Date != "" {
		d, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			return input, errBadDate
		}
		input.Date = &d
	}
	if r.Time != "" {
		clock, err := time.Parse("15:04", r.Time)
		if err != nil {
			return input, errBadTime
		}
		// Re-format so "9:00" reaches the engine zero-padded.
		input.TimeOfDay = clock.Format("15:04")
	}
	return input, nil
}

type slotsReq struct {
	Duration      int    `form:"duration"` // minutes
	Window        string `form:"window"`   // morning|afternoon|evening
	HorizonDays   int    `form:"horizon_days"`
	AvoidWeekends bool   `form:"avoid_weekends"`
}

func (r slotsReq) toInput() scheduler.FindSlotsInput {
	return scheduler.FindSlotsInput{
		DurationMinutes: r.Duration,
		Window:          scheduler.Window(r.Window),
		HorizonDays:     r.HorizonDays,
		AvoidWeekends:   r.AvoidWeekends,
	}
}

type overviewReq struct {
	Date string `form:"date"` // YYYY-MM-DD; empty means today
}

func (r overviewReq) toInput() (scheduler.OverviewInput, error) {
	var input scheduler.OverviewInput
	if r.Date != "" {
		d, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			return input, errBadDate
		}
		input.Date = d
	}
	return input, nil
}

// --- Response DTOs ---

type entryResp struct {
	ID    string    `json:"id"`
	Kind  string    `json:"kind"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func newEntryResp(e scheduler.Entry) entryResp {
	return entryResp{
		ID:    e.ID,
		Kind:  e.Kind,
		Title: e.Title,
		Start: e.Start,
		End:   e.End,
	}
}

type conflictResp struct {
	Candidate entryResp `json:"candidate"`
	Existing  entryResp `json:"existing"`
}

type conflictsResp struct {
	HasConflicts bool           `json:"has_conflicts"`
	Conflicts    []conflictResp `json:"conflicts"`
}

func newConflictsResp(out scheduler.CheckConflictsOutput) conflictsResp {
	conflicts := make([]conflictResp, len(out.Conflicts))
	for i, cf := range out.Conflicts {
		conflicts[i] = conflictResp{
			Candidate: newEntryResp(cf.Candidate),
			Existing:  newEntryResp(cf.Existing),
		}
	}
	return conflictsResp{
		HasConflicts: out.HasConflicts,
		Conflicts:    conflicts,
	}
}

type slotResp struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
}

func newSlotResp(s scheduler.FreeSlot) slotResp {
	return slotResp{
		Start:           s.Start,
		End:             s.End,
		DurationMinutes: s.DurationMinutes,
	}
}

type slotsResp struct {
	Slots []slotResp `json:"slots"`
	Total int        `json:"total"`
}

func newSlotsResp(out scheduler.FindSlotsOutput) slotsResp {
	slots := make([]slotResp, len(out.Slots))
	for i, s := range out.Slots {
		slots[i] = newSlotResp(s)
	}
	return slotsResp{
		Slots: slots,
		Total: len(slots),
	}
}

type rescheduleResp struct {
	TaskID     string    `json:"task_id"`
	Title      string    `json:"title"`
	Window     string    `json:"window"`
	Suggestion *slotResp `json:"suggestion,omitempty"`
}

func newRescheduleResp(out scheduler.RescheduleOutput) rescheduleResp {
	resp := rescheduleResp{
		TaskID: out.Task.ID,
		Title:  out.Task.Title,
		Window: string(out.Window),
	}
	if out.Suggestion != nil {
		slot := newSlotResp(*out.Suggestion)
		resp.Suggestion = &slot
	}
	return resp
}

type overviewResp struct {
	Date             response.Date `json:"date"` // YYYY-MM-DD
	Entries          []entryResp   `json:"entries"`
	CommittedMinutes int           `json:"committed_minutes"`
	EarliestStart    *time.Time    `json:"earliest_start,omitempty"`
	LatestStart      *time.Time    `json:"latest_start,omitempty"`
}

func newOverviewResp(out scheduler.OverviewOutput) overviewResp {
	entries := make([]entryResp, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = newEntryResp(e)
	}
	return overviewResp{
		Date:             response.Date(out.Date),
		Entries:          entries,
		CommittedMinutes: out.CommittedMinutes,
		EarliestStart:    out.EarliestStart,
		LatestStart:      out.LatestStart,
	}
}
