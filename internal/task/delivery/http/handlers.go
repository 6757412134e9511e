package http

import (
	"github.com/gin-gonic/gin"

	"smart-scheduler/internal/middleware"
	"smart-scheduler/internal/model"
	"smart-scheduler/pkg/response"
)

// Create godoc
// @Summary     Create a task from natural language
// @Description Parses free text into a task, reminder, or scheduled event and persists it. Conflicting entries are reported but never block the create.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header string    true "Owner identifier"
// @Param       body       body   createReq true "Raw text to capture"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateFromText(ctx, sc, req.toInput(model.ChannelAPI))
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns the owner's tasks under a named or free-text filter (today, tomorrow, week, overdue, urgent, a category, or all).
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header string true  "Owner identifier"
// @Param       filter     query  string false "Filter text (default: all)"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListResp(output))
}

// Update godoc
// @Summary     Update a task from natural language
// @Description Resolves the identifier (id, exact title, partial title, or "task N") and applies the attributes found in the update text.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header string    true "Owner identifier"
// @Param       ident      path   string    true "Task id, title, or position"
// @Param       body       body   updateReq true "Update text"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{ident} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateFromText(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newUpdateResp(output))
}

// Complete godoc
// @Summary     Complete a task
// @Description Marks the resolved task completed. Recurring tasks spawn a fresh instance at the next occurrence.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header string true "Owner identifier"
// @Param       ident      path   string true "Task id, title, or position"
// @Success     200 {object} completeResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{ident}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCompleteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Complete(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.Complete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newCompleteResp(output))
}
