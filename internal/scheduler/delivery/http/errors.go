package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-scheduler/internal/scheduler"
	"smart-scheduler/pkg/response"
)

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheduler.ErrTaskNotFound):
		response.NotFound(c)
	case errors.Is(err, scheduler.ErrInvalidDuration):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
