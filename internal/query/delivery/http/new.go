package http

import (
	"github.com/gin-gonic/gin"

	"smart-scheduler/internal/query"
	"smart-scheduler/pkg/log"
)

// Handler is the public interface for the query HTTP delivery layer.
type Handler interface {
	Process(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc query.UseCase
}

// New creates a new HTTP handler for the query domain.
func New(l log.Logger, uc query.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
