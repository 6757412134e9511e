package http

import (
	"github.com/gin-gonic/gin"

	"smart-scheduler/internal/scheduler"
	"smart-scheduler/pkg/log"
)

// Handler is the public interface for the scheduler HTTP delivery layer.
type Handler interface {
	Conflicts(c *gin.Context)
	Slots(c *gin.Context)
	Reschedule(c *gin.Context)
	Overview(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc scheduler.UseCase
}

// New creates a new HTTP handler for the scheduler domain.
func New(l log.Logger, uc scheduler.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
