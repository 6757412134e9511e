package http

import (
	"github.com/gin-gonic/gin"

	"smart-scheduler/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require an owner scope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Auth(), h.Create)
		tasks.GET("", mw.Auth(), h.List)
		tasks.PUT("/:ident", mw.Auth(), h.Update)
		tasks.POST("/:ident/complete", mw.Auth(), h.Complete)
	}
}
