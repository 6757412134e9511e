package http

import (
	"github.com/gin-gonic/gin"

	"smart-scheduler/internal/middleware"
	"smart-scheduler/internal/scheduler"
	"smart-scheduler/pkg/response"
)

// Conflicts godoc
// @Summary     Check a candidate slot for conflicts
// @Description Flags existing same-day entries that overlap the candidate interval. Candidates without a date or time report no conflicts.
// @Tags        Schedule
// @Produce     json
// @Param       X-Owner-ID header string true  "Owner identifier"
// @Param       date       query  string false "Candidate day (YYYY-MM-DD)"
// @Param       time       query  string false "Candidate start (HH:MM)"
// @Param       duration   query  int    false "Candidate length in minutes (default: 30)"
// @Param       title      query  string false "Candidate label"
// @Success     200 {object} conflictsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/conflicts [GET]
func (h *handler) Conflicts(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req conflictsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CheckConflicts(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "scheduler.delivery.http.Conflicts: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newConflictsResp(output))
}

// Slots godoc
// @Summary     Find free slots
// @Description Searches the horizon for open intervals of at least the requested duration, in chronological order.
// @Tags        Schedule
// @Produce     json
// @Param       X-Owner-ID     header string true  "Owner identifier"
// @Param       duration       query  int    true  "Required length in minutes"
// @Param       window         query  string false "Preferred part of day (morning/afternoon/evening)"
// @Param       horizon_days   query  int    false "Days to search (default: 7)"
// @Param       avoid_weekends query  bool   false "Skip Saturday and Sunday"
// @Success     200 {object} slotsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/slots [GET]
func (h *handler) Slots(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req slotsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.FindSlots(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "scheduler.delivery.http.Slots: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSlotsResp(output))
}

// Reschedule godoc
// @Summary     Suggest a reschedule slot
// @Description Proposes the next open slot for an existing task, preserving its original time-of-day preference.
// @Tags        Schedule
// @Produce     json
// @Param       X-Owner-ID header string true "Owner identifier"
// @Param       id         path   string true "Task ID"
// @Success     200 {object} rescheduleResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/tasks/{id}/reschedule [POST]
func (h *handler) Reschedule(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	if id == "" {
		response.Error(c, scheduler.ErrTaskNotFound, nil)
		return
	}

	output, err := h.uc.SuggestReschedule(ctx, sc, scheduler.RescheduleInput{TaskID: id})
	if err != nil {
		h.l.Errorf(ctx, "scheduler.delivery.http.Reschedule: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newRescheduleResp(output))
}

// Overview godoc
// @Summary     One-day schedule overview
// @Description Aggregates one day's entries, committed minutes, and earliest/latest start.
// @Tags        Schedule
// @Produce     json
// @Param       X-Owner-ID header string true  "Owner identifier"
// @Param       date       query  string false "Day to summarize (YYYY-MM-DD, default: today)"
// @Success     200 {object} overviewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/overview [GET]
func (h *handler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req overviewReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Overview(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "scheduler.delivery.http.Overview: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newOverviewResp(output))
}
