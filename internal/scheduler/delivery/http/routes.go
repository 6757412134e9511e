package http

import (
	"github.com/gin-gonic/gin"

	"smart-scheduler/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require an owner scope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	schedule := rg.Group("/schedule")
	{
		schedule.GET("/conflicts", mw.Auth(), h.Conflicts)
		schedule.GET("/slots", mw.Auth(), h.Slots)
		schedule.GET("/overview", mw.Auth(), h.Overview)
		schedule.POST("/tasks/:id/reschedule", mw.Auth(), h.Reschedule)
	}
}
