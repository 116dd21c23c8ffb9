package http

import (
	"github.com/gin-gonic/gin"

	"smarttaskai/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All task routes require an authenticated user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", mw.Auth(), h.List)
		tasks.POST("", mw.Auth(), h.Create)
		tasks.PUT("/:id", mw.Auth(), h.Update)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
		tasks.POST("/:id/toggle", mw.Auth(), h.Toggle)
		tasks.POST("/:id/subtasks/:subtaskId/toggle", mw.Auth(), h.ToggleSubtask)
	}
}
