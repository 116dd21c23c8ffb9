package http

import (
	"github.com/gin-gonic/gin"

	"smarttaskai/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Model-backed routes are rate limited per user; create-from-response
// only touches the store.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	assistant := rg.Group("/assistant")
	{
		assistant.POST("/suggest", mw.Auth(), mw.RateLimit(), h.Suggest)
		assistant.POST("/insights", mw.Auth(), mw.RateLimit(), h.Insights)
		assistant.POST("/tasks", mw.Auth(), h.CreateTask)
	}
}
