package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-scheduler/internal/middleware"
	"smart-scheduler/internal/query"
	"smart-scheduler/pkg/response"
)

// Process godoc
// @Summary     Answer a natural language schedule question
// @Description Classifies the query (list events, find conflicts, check availability, find meeting time, next event) and returns the structured answer.
// @Tags        Query
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header string     true "Owner identifier"
// @Param       body       body   processReq true "Question text"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/query [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Process(ctx, sc, req.toInput())
	if err != nil {
		if errors.Is(err, query.ErrEmptyQuery) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "query.delivery.http.Process: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newProcessResp(output))
}
