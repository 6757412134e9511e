package http

import (
	"time"

	"smart-scheduler/internal/query"
	"smart-scheduler/internal/scheduler"
)

// --- Request DTOs ---

type processReq struct {
	Text string `json:"text" binding:"required,min=1,max=1000"`
}

func (r processReq) toInput() query.ProcessInput {
	return query.ProcessInput{Text: r.Text}
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

type slotResp struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
}

type processResp struct {
	Intent      string         `json:"intent"`
	Message     string         `json:"message"`
	WindowStart time.Time      `json:"window_start"`
	WindowEnd   time.Time      `json:"window_end"`
	Entries     []entryResp    `json:"entries,omitempty"`
	Conflicts   []conflictResp `json:"conflicts,omitempty"`
	Slot        *slotResp      `json:"slot,omitempty"`
}

func newProcessResp(out query.ProcessOutput) processResp {
	resp := processResp{
		Intent:      string(out.Intent),
		Message:     out.Message,
		WindowStart: out.WindowStart,
		WindowEnd:   out.WindowEnd,
	}
	for _, e := range out.Entries {
		resp.Entries = append(resp.Entries, newEntryResp(e))
	}
	for _, cf := range out.Conflicts {
		resp.Conflicts = append(resp.Conflicts, conflictResp{
			Candidate: newEntryResp(cf.Candidate),
			Existing:  newEntryResp(cf.Existing),
		})
	}
	if out.Slot != nil {
		resp.Slot = &slotResp{
			Start:           out.Slot.Start,
			End:             out.Slot.End,
			DurationMinutes: out.Slot.DurationMinutes,
		}
	}
	return resp
}
